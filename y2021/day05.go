package y2021

import (
	"github.com/adventsolutions/aoc"
)

func parseVents(in []byte) ([]aoc.Segment, error) {
	var vents []aoc.Segment
	for i, line := range aoc.Lines(in) {
		if line == "" {
			continue
		}
		seg, err := aoc.ParseSegment(line)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		if !seg.Straight() {
			return nil, aoc.LineError(i, line, aoc.Malformedf("line is neither axis-aligned nor diagonal"))
		}
		vents = append(vents, seg)
	}
	return vents, nil
}

// overlaps counts the points covered by at least two vents.
func overlaps(vents []aoc.Segment) int {
	seen := make(map[aoc.Pt]bool)
	for i, a := range vents {
		for _, b := range vents[i+1:] {
			for _, p := range a.Intersect(b) {
				seen[p] = true
			}
		}
	}
	return len(seen)
}

/*
want=5

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func (s Solver) D5p1() (any, error) {
	vents, err := aoc.Parsed(s.Puzzle, parseVents)
	if err != nil {
		return nil, err
	}
	var straight []aoc.Segment
	for _, v := range vents {
		if v.Horizontal() || v.Vertical() {
			straight = append(straight, v)
		}
	}
	return overlaps(straight), nil
}

// want=12
func (s Solver) D5p2() (any, error) {
	vents, err := aoc.Parsed(s.Puzzle, parseVents)
	if err != nil {
		return nil, err
	}
	return overlaps(vents), nil
}
