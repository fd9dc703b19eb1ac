package y2019

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

func fuel(mass int) int { return mass/3 - 2 }

// totalFuel includes the fuel needed to carry the fuel itself.
func totalFuel(mass int) int {
	total := 0
	for f := fuel(mass); f > 0; f = fuel(f) {
		total += f
	}
	return total
}

func parseMasses(in []byte) ([]int, error) {
	var masses []int
	for i, line := range aoc.Lines(in) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := aoc.Int(line)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		masses = append(masses, m)
	}
	return masses, nil
}

func (s Solver) sumFuel(f func(int) int) (any, error) {
	masses, err := aoc.Parsed(s.Puzzle, parseMasses)
	if err != nil {
		return nil, err
	}
	return aoc.Fold(masses, func(acc, m int) int { return acc + f(m) }, 0), nil
}

/*
want=34241

12
14
1969
100756
*/
func (s Solver) D1p1() (any, error) {
	return s.sumFuel(fuel)
}

// want=51316
func (s Solver) D1p2() (any, error) {
	return s.sumFuel(totalFuel)
}
