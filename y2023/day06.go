package y2023

import (
	"math"
	"strconv"
	"strings"

	"github.com/adventsolutions/aoc"
)

type race struct {
	time, record int
}

func (r race) beats(hold int) bool {
	return hold*(r.time-hold) > r.record
}

// waysToWin counts the hold times that beat the record. Holding h
// milliseconds travels h*(t-h), so the winning holds lie strictly between the
// roots of h^2 - t*h + record.
func waysToWin(r race) int {
	hi, lo, ok := aoc.SolveQuad(1.0, -float64(r.time), float64(r.record))
	if !ok {
		return 0
	}
	first := max(0, int(math.Floor(lo)))
	last := min(r.time, int(math.Ceil(hi)))
	// Nudge past floating point error.
	for first <= last && !r.beats(first) {
		first++
	}
	for first > 0 && r.beats(first-1) {
		first--
	}
	for last >= first && !r.beats(last) {
		last--
	}
	for last < r.time && r.beats(last+1) {
		last++
	}
	if first > last {
		return 0
	}
	return last - first + 1
}

func parseRaces(in []byte) ([]race, error) {
	lines := aoc.Lines(in)
	if len(lines) < 2 {
		return nil, aoc.Malformedf("want Time and Distance lines, got %d lines", len(lines))
	}
	ts, err := aoc.TrimPrefix(lines[0], "Time:")
	if err != nil {
		return nil, aoc.LineError(0, lines[0], err)
	}
	ds, err := aoc.TrimPrefix(lines[1], "Distance:")
	if err != nil {
		return nil, aoc.LineError(1, lines[1], err)
	}
	times, err := aoc.Fields(ts)
	if err != nil {
		return nil, aoc.LineError(0, lines[0], err)
	}
	dists, err := aoc.Fields(ds)
	if err != nil {
		return nil, aoc.LineError(1, lines[1], err)
	}
	if len(times) != len(dists) {
		return nil, aoc.Malformedf("%d times but %d distances", len(times), len(dists))
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], record: dists[i]}
	}
	return races, nil
}

// kerned reads the races as one race whose digits were split by bad
// kerning.
func kerned(races []race) (race, error) {
	var t, d strings.Builder
	for _, r := range races {
		t.WriteString(strconv.Itoa(r.time))
		d.WriteString(strconv.Itoa(r.record))
	}
	var r race
	var err error
	if r.time, err = aoc.Int(t.String()); err != nil {
		return race{}, err
	}
	if r.record, err = aoc.Int(d.String()); err != nil {
		return race{}, err
	}
	return r, nil
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s Solver) D6p1() (any, error) {
	races, err := aoc.Parsed(s.Puzzle, parseRaces)
	if err != nil {
		return nil, err
	}
	return aoc.Fold(races, func(acc int, r race) int { return acc * waysToWin(r) }, 1), nil
}

// want=71503
func (s Solver) D6p2() (any, error) {
	races, err := aoc.Parsed(s.Puzzle, parseRaces)
	if err != nil {
		return nil, err
	}
	r, err := kerned(races)
	if err != nil {
		return nil, err
	}
	s.Debugf("kerned race %+v", r)
	return waysToWin(r), nil
}
