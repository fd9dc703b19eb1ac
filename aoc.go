// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from bradfitz/aoc)
//
// A contest year is a struct embedding *Puzzle whose methods are named
// D{day}p{part}. Sample inputs and answers live in the doc comments of those
// methods:
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//	func (s Solver) D1p1() any { ... }
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
)

// ErrSampleMismatch is returned by Run when a part disagrees with the answer
// recorded in its sample.
var ErrSampleMismatch = errors.New("sample mismatch")

// Year is a registered contest year.
type Year struct {
	Year int
	// Source holds the Go files of the solver; their doc comments carry the
	// samples.
	Source fs.FS
	// Solver is a pointer to a struct embedding *Puzzle.
	Solver any
}

// Options control a Run.
type Options struct {
	Day        int    // 0 runs every registered day
	Part       string // empty runs every part
	OnlySample bool
	SkipSample bool

	// Input is an explicit input path, or "-" for standard input. When
	// empty, DefaultInputPath(InputDir, year, day) is used.
	Input    string
	InputDir string
	Stdin    *os.File

	Logger   *slog.Logger
	Reporter Reporter
}

// Result is the outcome of running one part.
type Result struct {
	Year   int
	Day    int
	Part   string
	Sample bool
	Got    any
	Want   string // only set for samples
	Took   time.Duration
	Err    error
}

// OK reports whether the part ran without error and, for samples, produced
// the wanted answer.
func (r Result) OK() bool {
	if r.Err != nil {
		return false
	}
	return !r.Sample || fmt.Sprint(r.Got) == r.Want
}

// Reporter receives progress from Run.
type Reporter interface {
	StartDay(year, day int)
	Report(Result)
}

// TextReporter writes plain progress lines to W.
type TextReporter struct {
	W io.Writer
}

func (r TextReporter) StartDay(year, day int) {
	fmt.Fprintln(r.W, "Running", year, "day", day)
}

func (r TextReporter) Report(res Result) {
	switch {
	case res.Err != nil:
		fmt.Fprintf(r.W, "part %s: error: %v\n", res.Part, res.Err)
	case res.Sample && !res.OK():
		fmt.Fprintf(r.W, "part %s: %v ❌; want %v\n", res.Part, res.Got, res.Want)
	case res.Sample:
		fmt.Fprintf(r.W, "part %s sample: %v ✅ (%v)\n", res.Part, res.Got, res.Took.Round(time.Microsecond))
	default:
		fmt.Fprintf(r.W, "part %s: %v (took %v)\n", res.Part, res.Got, res.Took.Round(time.Microsecond))
	}
}

// Puzzle is embedded by solvers and gives the parts access to their input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
	cache   map[cacheKey]any
	log     *slog.Logger
}

// Year returns the contest year being solved.
func (p *Puzzle) Year() int { return p.year }

// Day returns the day being solved.
func (p *Puzzle) Day() int { return p.day.day }

// Input returns the sample input in sample mode and the puzzle input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	return Lines(p.Input())
}

// Scanner returns a line scanner over the input.
func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	for y, line := range p.Lines() {
		onLine(y, line)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf logs at debug level while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if !p.SampleMode {
		return
	}
	p.log.Debug(fmt.Sprintf(format, args...), "year", p.year, "day", p.day.day, "part", p.solver.Part)
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// attach points the Puzzle field of the solver at p. Parts are bound to the
// solver struct, so every later change to *p is visible to them.
func attach(slvr any, p *Puzzle) error {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	f := v.Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
	return nil
}

// extractMethods finds the methods named D{day}p{part} on the solver. They
// must have the signature func() any or func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		var fn func() (any, error)
		switch m := v.Method(i).Interface().(type) {
		case func() any:
			fn = func() (any, error) { return m(), nil }
		case func() (any, error):
			fn = m
		default:
			return nil, fmt.Errorf("method %s has signature %T; want func() any or func() (any, error)", mn, m)
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// DayParts describes one registered day.
type DayParts struct {
	Day     int
	Parts   []string
	Samples int // parts carrying a sample
}

// Describe lists the registered days of y in ascending order.
func Describe(y Year) ([]DayParts, error) {
	samples, err := extractSamples(y.Source)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(y.Solver)
	if err != nil {
		return nil, err
	}
	var out []DayParts
	for _, d := range sortedDays(days) {
		dp := DayParts{Day: d.day}
		for _, ps := range d.parts {
			dp.Parts = append(dp.Parts, ps.Part)
			if _, ok := samples[ps.Name]; ok {
				dp.Samples++
			}
		}
		out = append(out, dp)
	}
	return out, nil
}

func sortedDays(days map[int]day) []day {
	nums := maps.Keys(days)
	slices.Sort(nums)
	out := make([]day, 0, len(nums))
	for _, n := range nums {
		out = append(out, days[n])
	}
	return out
}

type runner struct {
	year Year
	opts Options
	p    *Puzzle
	days map[int]day
}

func newRunner(y Year, opts Options) (*runner, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Reporter == nil {
		opts.Reporter = TextReporter{W: os.Stdout}
	}
	samples, err := extractSamples(y.Source)
	if err != nil {
		return nil, fmt.Errorf("%d: %w", y.Year, err)
	}
	p := &Puzzle{
		year:    y.Year,
		samples: samples,
		cache:   make(map[cacheKey]any),
		log:     opts.Logger,
	}
	if err := attach(y.Solver, p); err != nil {
		return nil, err
	}
	days, err := extractMethods(y.Solver)
	if err != nil {
		return nil, err
	}
	return &runner{year: y, opts: opts, p: p, days: days}, nil
}

// selected returns the days picked by the options.
func (r *runner) selected() ([]day, error) {
	if r.opts.Day == 0 {
		if r.opts.Input != "" {
			return nil, fmt.Errorf("input %q given without selecting a day", r.opts.Input)
		}
		return sortedDays(r.days), nil
	}
	d, ok := r.days[r.opts.Day]
	if !ok {
		return nil, fmt.Errorf("no day %d in %d", r.opts.Day, r.year.Year)
	}
	return []day{d}, nil
}

func (r *runner) runPart(ps partSolver, sampleMode bool) Result {
	p := r.p
	p.solver = ps
	p.SampleMode = sampleMode
	res := Result{
		Year:   p.year,
		Day:    p.day.day,
		Part:   ps.Part,
		Sample: sampleMode,
	}
	if sampleMode {
		res.Want = p.samples[ps.Name].want
	}
	t0 := time.Now()
	got, err := ps.fn()
	res.Took = time.Since(t0)
	res.Got = got
	if err != nil {
		res.Err = fmt.Errorf("day %d part %s: %w", p.day.day, ps.Part, err)
	}
	return res
}

func (r *runner) runDay(ctx context.Context, d day) error {
	p := r.p
	p.day = d
	p.input = nil
	r.opts.Reporter.StartDay(p.year, d.day)
	for _, ps := range d.parts {
		if r.opts.Part != "" && ps.Part != r.opts.Part {
			continue
		}
		for _, sm := range []bool{true, false} {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !sm && r.opts.OnlySample {
				continue
			} else if sm && r.opts.SkipSample {
				continue
			}
			if sm {
				if _, ok := p.samples[ps.Name]; !ok {
					r.opts.Logger.Debug("no sample", "day", d.day, "part", ps.Part)
					continue
				}
			} else if p.input == nil {
				// Prime the input.
				in, err := readInput(r.opts, p.year, d.day)
				if err != nil {
					return fmt.Errorf("day %d: %w", d.day, err)
				}
				p.input = in
			}
			res := r.runPart(ps, sm)
			r.opts.Reporter.Report(res)
			if res.Err != nil {
				return res.Err
			}
			if !res.OK() {
				return fmt.Errorf("day %d part %s: %w: got %v, want %v", d.day, ps.Part, ErrSampleMismatch, res.Got, res.Want)
			}
		}
	}
	return nil
}

// Run solves the selected days of y, checking samples first. It stops at the
// first error or sample mismatch.
func Run(ctx context.Context, y Year, opts Options) error {
	r, err := newRunner(y, opts)
	if err != nil {
		return err
	}
	days, err := r.selected()
	if err != nil {
		return err
	}
	for _, d := range days {
		if err := r.runDay(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// CheckSamples runs every part of y that carries a sample and returns the
// results without stopping at failures.
func CheckSamples(y Year) ([]Result, error) {
	r, err := newRunner(y, Options{})
	if err != nil {
		return nil, err
	}
	var out []Result
	for _, d := range sortedDays(r.days) {
		r.p.day = d
		for _, ps := range d.parts {
			if _, ok := r.p.samples[ps.Name]; !ok {
				continue
			}
			out = append(out, r.runPart(ps, true))
		}
	}
	return out, nil
}
