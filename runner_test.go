package aoc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

// sumSolver adds the numbers of its input. Its samples come from
// sumSource.
type sumSolver struct {
	*Puzzle
	calls map[string]int
}

func (s sumSolver) sum() (int, error) {
	nums, err := Parsed(s.Puzzle, func(in []byte) ([]int, error) {
		s.calls["parse"]++
		return Ints(Lines(in)...)
	})
	if err != nil {
		return 0, err
	}
	return Sum(nums...), nil
}

func (s sumSolver) D1p1() (any, error) { return s.sum() }

func (s sumSolver) D1p2() any {
	v, _ := s.sum()
	return v * 2
}

func (s sumSolver) D2p1() (any, error) {
	return nil, errors.New("boom")
}

const sumSource = `package fake

/*
want=6

1
2
3
*/
func (s sumSolver) D1p1() (any, error)

// want=12
func (s sumSolver) D1p2() any
`

func newSumYear(t *testing.T) (Year, *sumSolver) {
	t.Helper()
	s := &sumSolver{calls: map[string]int{}}
	return Year{
		Year:   2000,
		Source: fstest.MapFS{"fake.go": {Data: []byte(sumSource)}},
		Solver: s,
	}, s
}

func writeInput(t *testing.T, dir string, year, day int, content string) {
	t.Helper()
	p := DefaultInputPath(dir, year, day)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	y, s := newSumYear(t)
	dir := t.TempDir()
	writeInput(t, dir, 2000, 1, "10\n20\n")

	var out bytes.Buffer
	err := Run(context.Background(), y, Options{Day: 1, InputDir: dir, Reporter: TextReporter{W: &out}})
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Running 2000 day 1\n",
		"part 1 sample: 6 ✅",
		"part 1: 30 (took",
		"part 2 sample: 12 ✅",
		"part 2: 60 (took",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	// One parse for the sample and one for the real input.
	if s.calls["parse"] != 2 {
		t.Errorf("parsed %d times; want 2", s.calls["parse"])
	}
}

func TestRunPartError(t *testing.T) {
	y, _ := newSumYear(t)
	dir := t.TempDir()
	writeInput(t, dir, 2000, 2, "")
	err := Run(context.Background(), y, Options{Day: 2, InputDir: dir, Reporter: TextReporter{W: &bytes.Buffer{}}})
	if err == nil || err.Error() != "day 2 part 1: boom" {
		t.Errorf("Run = %v; want day 2 part 1: boom", err)
	}
}

func TestRunSampleMismatch(t *testing.T) {
	y, _ := newSumYear(t)
	y.Source = fstest.MapFS{"fake.go": {Data: []byte(strings.Replace(sumSource, "want=6", "want=7", 1))}}
	err := Run(context.Background(), y, Options{Day: 1, OnlySample: true, Reporter: TextReporter{W: &bytes.Buffer{}}})
	if !errors.Is(err, ErrSampleMismatch) {
		t.Errorf("Run = %v; want ErrSampleMismatch", err)
	}
}

func TestRunSelection(t *testing.T) {
	y, _ := newSumYear(t)
	ctx := context.Background()
	quiet := TextReporter{W: &bytes.Buffer{}}

	if err := Run(ctx, y, Options{Day: 3, Reporter: quiet}); err == nil {
		t.Error("Run succeeded for a missing day")
	}
	if err := Run(ctx, y, Options{Input: "in.txt", Reporter: quiet}); err == nil {
		t.Error("Run succeeded with an input for every day")
	}

	var out bytes.Buffer
	err := Run(ctx, y, Options{Day: 1, Part: "2", OnlySample: true, Reporter: TextReporter{W: &out}})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "part 1") || !strings.Contains(out.String(), "part 2 sample: 12") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunExplicitInput(t *testing.T) {
	y, _ := newSumYear(t)
	p := filepath.Join(t.TempDir(), "custom.txt")
	if err := os.WriteFile(p, []byte("4\n5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err := Run(context.Background(), y, Options{Day: 1, Part: "1", SkipSample: true, Input: p, Reporter: TextReporter{W: &out}})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); strings.Contains(got, "sample") || !strings.Contains(got, "part 1: 9 (took") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestRunCanceled(t *testing.T) {
	y, _ := newSumYear(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, y, Options{Day: 1, OnlySample: true, Reporter: TextReporter{W: &bytes.Buffer{}}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v; want context.Canceled", err)
	}
}

func TestCheckSamples(t *testing.T) {
	y, _ := newSumYear(t)
	results, err := CheckSamples(y)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results; want 2", len(results))
	}
	for _, r := range results {
		if !r.OK() {
			t.Errorf("day %d part %s: got %v, want %v (err %v)", r.Day, r.Part, r.Got, r.Want, r.Err)
		}
	}
}

func TestDescribe(t *testing.T) {
	y, _ := newSumYear(t)
	days, err := Describe(y)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 || days[0].Day != 1 || days[1].Day != 2 {
		t.Fatalf("Describe = %+v", days)
	}
	if days[0].Samples != 2 || days[1].Samples != 0 || len(days[0].Parts) != 2 {
		t.Errorf("Describe = %+v", days)
	}
}

type badSignature struct {
	*Puzzle
}

func (badSignature) D1p1() int { return 0 }

type noPuzzle struct{}

func (noPuzzle) D1p1() any { return 0 }

func TestRunRejectsBadSolvers(t *testing.T) {
	quiet := TextReporter{W: &bytes.Buffer{}}
	for _, slvr := range []any{&badSignature{}, &noPuzzle{}, badSignature{}} {
		if err := Run(context.Background(), Year{Year: 2000, Solver: slvr}, Options{Reporter: quiet}); err == nil {
			t.Errorf("Run(%T) succeeded", slvr)
		}
	}
}
