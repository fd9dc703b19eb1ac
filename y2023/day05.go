package y2023

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/adventsolutions/aoc"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

func (iv Interval) String() string {
	if iv.End <= iv.Start {
		return "empty"
	}
	return fmt.Sprintf("%d-%d", iv.Start, iv.End-1)
}

// mergeIntervals sorts ivs and joins overlapping or touching intervals.
// Empty intervals are dropped.
func mergeIntervals(ivs []Interval) []Interval {
	ivs = slices.DeleteFunc(slices.Clone(ivs), func(iv Interval) bool { return iv.End <= iv.Start })
	slices.SortFunc(ivs, func(a, b Interval) int { return a.Start - b.Start })
	var out []Interval
	for _, iv := range ivs {
		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}

type rangeEntry struct {
	dst, src, n int
}

// RangeMap maps source numbers onto destination numbers. Numbers outside
// every entry map to themselves.
type RangeMap struct {
	From, To string
	entries  []rangeEntry // sorted by src
}

// Remap maps every interval through m, splitting at entry boundaries.
func (m RangeMap) Remap(ivs []Interval) []Interval {
	var out []Interval
	for _, iv := range ivs {
		cur := iv.Start
		for _, e := range m.entries {
			if cur >= iv.End {
				break
			}
			if e.src+e.n <= cur {
				continue
			}
			if e.src >= iv.End {
				break
			}
			if cur < e.src {
				out = append(out, Interval{cur, e.src})
				cur = e.src
			}
			end := min(iv.End, e.src+e.n)
			off := e.dst - e.src
			out = append(out, Interval{cur + off, end + off})
			cur = end
		}
		if cur < iv.End {
			out = append(out, Interval{cur, iv.End})
		}
	}
	return mergeIntervals(out)
}

// Lookup maps a single number through m.
func (m RangeMap) Lookup(n int) int {
	return m.Remap([]Interval{{n, n + 1}})[0].Start
}

type almanac struct {
	seeds []int
	maps  []RangeMap
}

// location maps a seed through every map.
func (a almanac) location(seed int) int {
	for _, m := range a.maps {
		seed = m.Lookup(seed)
	}
	return seed
}

// locations maps seed intervals through every map.
func (a almanac) locations(ivs []Interval) []Interval {
	ivs = mergeIntervals(ivs)
	for _, m := range a.maps {
		ivs = m.Remap(ivs)
	}
	return ivs
}

// seedRanges reads the seeds as start and length pairs.
func (a almanac) seedRanges() ([]Interval, error) {
	if len(a.seeds)%2 != 0 {
		return nil, aoc.Malformedf("odd number of seed values (%d)", len(a.seeds))
	}
	var ivs []Interval
	for i := 0; i < len(a.seeds); i += 2 {
		ivs = append(ivs, Interval{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	return ivs, nil
}

var mapHeaderRx = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

func parseAlmanac(in []byte) (almanac, error) {
	blocks := aoc.Paragraphs(aoc.Lines(in))
	if len(blocks) == 0 {
		return almanac{}, aoc.Malformedf("empty almanac")
	}
	if len(blocks[0]) != 1 {
		return almanac{}, aoc.Malformedf("seeds line must be followed by a blank line")
	}
	seeds, err := aoc.TrimPrefix(blocks[0][0], "seeds:")
	if err != nil {
		return almanac{}, &aoc.ParseError{Line: 1, Text: blocks[0][0], Err: err}
	}
	a := almanac{}
	if a.seeds, err = aoc.Fields(seeds); err != nil {
		return almanac{}, &aoc.ParseError{Line: 1, Text: blocks[0][0], Err: err}
	}
	for _, block := range blocks[1:] {
		m := mapHeaderRx.FindStringSubmatch(strings.TrimSpace(block[0]))
		if m == nil {
			return almanac{}, &aoc.ParseError{Text: block[0], Err: aoc.Malformedf("expected a map header")}
		}
		rm := RangeMap{From: m[1], To: m[2]}
		want := "seed"
		if n := len(a.maps); n > 0 {
			want = a.maps[n-1].To
		}
		if rm.From != want {
			return almanac{}, &aoc.ParseError{Text: block[0], Err: aoc.Malformedf("map from %q, want %q", rm.From, want)}
		}
		for _, line := range block[1:] {
			nums, err := aoc.Fields(line)
			if err != nil {
				return almanac{}, &aoc.ParseError{Text: line, Err: err}
			}
			if len(nums) != 3 {
				return almanac{}, &aoc.ParseError{Text: line, Err: aoc.Malformedf("got %d numbers, want 3", len(nums))}
			}
			rm.entries = append(rm.entries, rangeEntry{dst: nums[0], src: nums[1], n: nums[2]})
		}
		slices.SortFunc(rm.entries, func(x, y rangeEntry) int { return x.src - y.src })
		a.maps = append(a.maps, rm)
	}
	if n := len(a.maps); n == 0 || a.maps[n-1].To != "location" {
		return almanac{}, aoc.Malformedf("maps do not end at location")
	}
	return a, nil
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s Solver) D5p1() (any, error) {
	a, err := aoc.Parsed(s.Puzzle, parseAlmanac)
	if err != nil {
		return nil, err
	}
	if len(a.seeds) == 0 {
		return nil, aoc.Malformedf("no seeds")
	}
	lowest := a.location(a.seeds[0])
	for _, seed := range a.seeds[1:] {
		lowest = min(lowest, a.location(seed))
	}
	return lowest, nil
}

// want=46
func (s Solver) D5p2() (any, error) {
	a, err := aoc.Parsed(s.Puzzle, parseAlmanac)
	if err != nil {
		return nil, err
	}
	seeds, err := a.seedRanges()
	if err != nil {
		return nil, err
	}
	locs := a.locations(seeds)
	if len(locs) == 0 {
		return nil, aoc.Malformedf("no seed ranges")
	}
	s.Debugf("locations %v", locs)
	return locs[0].Start, nil
}
