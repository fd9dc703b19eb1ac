// Package y2023 solves Advent of Code 2023.
package y2023

import (
	"embed"

	"github.com/adventsolutions/aoc"
)

//go:embed *.go
var source embed.FS

type Solver struct {
	*aoc.Puzzle
}

// Year returns a fresh registration of the 2023 puzzles.
func Year() aoc.Year {
	return aoc.Year{Year: 2023, Source: source, Solver: &Solver{}}
}
