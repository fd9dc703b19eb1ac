package y2019

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adventsolutions/aoc"
)

// Wire is the path of a wire from the central port, one segment per step.
type Wire []aoc.Segment

// ParseWire parses steps such as "R8,U5,L5,D3".
func ParseWire(line string) (Wire, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, aoc.Malformedf("empty wire")
	}
	var w Wire
	var pos aoc.Pt
	for i, step := range strings.Split(line, ",") {
		if step == "" {
			return nil, aoc.Malformedf("step %d is empty", i+1)
		}
		dir, ok := aoc.ParseDirection(step[0])
		if !ok {
			return nil, aoc.Malformedf("step %d %q: bad direction %q", i+1, step, step[0])
		}
		n, err := strconv.Atoi(step[1:])
		if err != nil || n < 0 {
			return nil, aoc.Malformedf("step %d %q: bad length", i+1, step)
		}
		next := pos.Add(dir.Delta().Scale(n))
		w = append(w, aoc.Segment{A: pos, B: next})
		pos = next
	}
	return w, nil
}

func parseWires(in []byte) ([]Wire, error) {
	var wires []Wire
	for i, line := range aoc.Lines(in) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w, err := ParseWire(line)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		wires = append(wires, w)
	}
	if len(wires) < 2 {
		return nil, aoc.Malformedf("got %d wires, want at least 2", len(wires))
	}
	return wires, nil
}

// Crossing is a point where two wires meet away from the central port.
type Crossing struct {
	Pt aoc.Pt
	// Steps is the combined number of steps both wires take to reach Pt.
	Steps int
}

// Crossings returns every point where a and b meet, excluding the origin.
func Crossings(a, b Wire) []Crossing {
	var out []Crossing
	var origin aoc.Pt
	da := 0
	for _, sa := range a {
		db := 0
		for _, sb := range b {
			for _, p := range sa.Intersect(sb) {
				if p == origin {
					continue
				}
				out = append(out, Crossing{
					Pt:    p,
					Steps: da + sa.A.MDist(p) + db + sb.A.MDist(p),
				})
			}
			db += sb.Len()
		}
		da += sa.Len()
	}
	return out
}

var errNoCrossing = errors.New("wires never cross")

// closest returns the smallest score of any crossing between any two wires.
func closest(wires []Wire, score func(Crossing) int) (int, error) {
	best := -1
	for i, a := range wires {
		for _, b := range wires[i+1:] {
			for _, c := range Crossings(a, b) {
				if v := score(c); best < 0 || v < best {
					best = v
				}
			}
		}
	}
	if best < 0 {
		return 0, errNoCrossing
	}
	return best, nil
}

func (s Solver) closestCrossing(score func(Crossing) int) (any, error) {
	wires, err := aoc.Parsed(s.Puzzle, parseWires)
	if err != nil {
		return nil, err
	}
	v, err := closest(wires, score)
	if err != nil {
		return nil, fmt.Errorf("%d wires: %w", len(wires), err)
	}
	s.Debugf("closest crossing score %d", v)
	return v, nil
}

/*
want=6

R8,U5,L5,D3
U7,R6,D4,L4
*/
func (s Solver) D3p1() (any, error) {
	var origin aoc.Pt
	return s.closestCrossing(func(c Crossing) int { return c.Pt.MDist(origin) })
}

// want=30
func (s Solver) D3p2() (any, error) {
	return s.closestCrossing(func(c Crossing) int { return c.Steps })
}
