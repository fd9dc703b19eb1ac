package y2023

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i]. Spelled digits may overlap,
// so "eightwo" has digits at 0 and 4.
func digitAt(line string, i int, words bool) (int, bool) {
	if d, ok := aoc.Digit(line[i]); ok {
		return d, true
	}
	if !words {
		return 0, false
	}
	for n, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// calibration combines the first and last digit of line.
func calibration(line string, words bool) (int, bool) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s Solver) D1p1() any {
	sum := 0
	s.ForLines(func(line string) {
		// Lines without digits count as zero.
		v, _ := calibration(line, false)
		sum += v
	})
	return sum
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s Solver) D1p2() (any, error) {
	sum := 0
	for i, line := range s.Lines() {
		if line == "" {
			continue
		}
		v, ok := calibration(line, true)
		if !ok {
			return nil, aoc.LineError(i, line, aoc.Malformedf("no digit"))
		}
		sum += v
	}
	return sum, nil
}
