// Package y2021 solves Advent of Code 2021.
package y2021

import (
	"embed"

	"github.com/adventsolutions/aoc"
)

//go:embed *.go
var source embed.FS

type Solver struct {
	*aoc.Puzzle
}

// Year returns a fresh registration of the 2021 puzzles.
func Year() aoc.Year {
	return aoc.Year{Year: 2021, Source: source, Solver: &Solver{}}
}

// parseInts parses one integer per non-blank line.
func parseInts(in []byte) ([]int, error) {
	var out []int
	for i, line := range aoc.Lines(in) {
		if line == "" {
			continue
		}
		v, err := aoc.Int(line)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		out = append(out, v)
	}
	return out, nil
}
