package y2021

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

// report is a diagnostic report of equally wide binary numbers.
type report struct {
	width  int
	values []int64
}

func parseReport(in []byte) (report, error) {
	var r report
	for i, line := range aoc.Lines(in) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.width == 0 {
			r.width = len(line)
		} else if len(line) != r.width {
			return report{}, aoc.LineError(i, line, aoc.Malformedf("width %d, want %d", len(line), r.width))
		}
		if strings.Trim(line, "01") != "" {
			return report{}, aoc.LineError(i, line, aoc.Malformedf("not a binary number"))
		}
		v, err := aoc.ParseBinary(line)
		if err != nil {
			return report{}, aoc.LineError(i, line, err)
		}
		r.values = append(r.values, v)
	}
	if len(r.values) == 0 {
		return report{}, aoc.Malformedf("empty report")
	}
	return r, nil
}

func onesAt(values []int64, bit int) int {
	n := 0
	for _, v := range values {
		if v>>bit&1 == 1 {
			n++
		}
	}
	return n
}

// power returns the gamma and epsilon rates: the most and least common bit
// in each position.
func (r report) power() (gamma, epsilon int64) {
	for bit := r.width - 1; bit >= 0; bit-- {
		gamma <<= 1
		if onesAt(r.values, bit)*2 > len(r.values) {
			gamma |= 1
		}
	}
	mask := int64(1)<<r.width - 1
	return gamma, ^gamma & mask
}

// rating filters the values bit by bit, from the most significant, keeping
// those whose bit matches the one chosen by keepOnes until one remains. A
// filter that would drop every value is skipped.
func (r report) rating(keepOnes func(ones, total int) bool) int64 {
	vals := r.values
	for bit := r.width - 1; bit >= 0 && len(vals) > 1; bit-- {
		want := int64(0)
		if keepOnes(onesAt(vals, bit), len(vals)) {
			want = 1
		}
		var next []int64
		for _, v := range vals {
			if v>>bit&1 == want {
				next = append(next, v)
			}
		}
		// All values share this bit.
		if len(next) == 0 {
			continue
		}
		vals = next
	}
	return vals[0]
}

func oxygen(ones, total int) bool { return ones*2 >= total }

func co2(ones, total int) bool { return ones*2 < total }

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s Solver) D3p1() (any, error) {
	r, err := aoc.Parsed(s.Puzzle, parseReport)
	if err != nil {
		return nil, err
	}
	gamma, epsilon := r.power()
	s.Debugf("gamma %d epsilon %d", gamma, epsilon)
	return gamma * epsilon, nil
}

// want=230
func (s Solver) D3p2() (any, error) {
	r, err := aoc.Parsed(s.Puzzle, parseReport)
	if err != nil {
		return nil, err
	}
	return r.rating(oxygen) * r.rating(co2), nil
}
