// Package y2019 solves Advent of Code 2019.
package y2019

import (
	"embed"

	"github.com/adventsolutions/aoc"
)

//go:embed *.go
var source embed.FS

type Solver struct {
	*aoc.Puzzle
}

// Year returns a fresh registration of the 2019 puzzles.
func Year() aoc.Year {
	return aoc.Year{Year: 2019, Source: source, Solver: &Solver{}}
}
