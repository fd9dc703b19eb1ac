package y2021

import "github.com/adventsolutions/aoc"

func countIncreases(xs []int) int {
	n := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1] {
			n++
		}
	}
	return n
}

// windowSums returns the sums of every run of w consecutive values.
func windowSums(xs []int, w int) []int {
	if len(xs) < w {
		return nil
	}
	out := make([]int, 0, len(xs)-w+1)
	for i := 0; i+w <= len(xs); i++ {
		out = append(out, aoc.Sum(xs[i:i+w]...))
	}
	return out
}

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s Solver) D1p1() (any, error) {
	depths, err := aoc.Parsed(s.Puzzle, parseInts)
	if err != nil {
		return nil, err
	}
	return countIncreases(depths), nil
}

// want=5
func (s Solver) D1p2() (any, error) {
	depths, err := aoc.Parsed(s.Puzzle, parseInts)
	if err != nil {
		return nil, err
	}
	return countIncreases(windowSums(depths, 3)), nil
}
