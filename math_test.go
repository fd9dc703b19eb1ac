package aoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolveQuad(t *testing.T) {
	// x^2 - 7x + 9 < 0 for the race of 7ms with a 9mm record.
	r1, r2, ok := SolveQuad(1, -7, 9)
	if !ok || r1 < 5.3 || r1 > 5.31 || r2 < 1.69 || r2 > 1.7 {
		t.Errorf("SolveQuad = %v, %v, %v", r1, r2, ok)
	}
	if _, _, ok := SolveQuad(1, 0, 1); ok {
		t.Error("SolveQuad found real roots of x^2+1")
	}
}

func TestLCM(t *testing.T) {
	if got := LCM(4, 6, 10); got != 60 {
		t.Errorf("LCM = %d", got)
	}
	if got := LCM(0, 0); got != 0 {
		t.Errorf("LCM(0, 0) = %d", got)
	}
}

func TestInts(t *testing.T) {
	got, err := Fields(" 7  15 -30 ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{7, 15, -30}, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if _, err := Ints("1", "x"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Ints = %v; want ErrMalformed", err)
	}
	if v, err := ParseBinary("10110"); err != nil || v != 22 {
		t.Errorf("ParseBinary = %v, %v", v, err)
	}
	if _, err := ParseBinary("102"); !errors.Is(err, ErrMalformed) {
		t.Errorf("ParseBinary = %v; want ErrMalformed", err)
	}
}

func TestTrimPrefix(t *testing.T) {
	if s, err := TrimPrefix("Game 12", "Game "); err != nil || s != "12" {
		t.Errorf("TrimPrefix = %q, %v", s, err)
	}
	if _, err := TrimPrefix("Card 1", "Game "); !errors.Is(err, ErrMalformed) {
		t.Errorf("TrimPrefix = %v; want ErrMalformed", err)
	}
}

func TestParallel(t *testing.T) {
	in := []int{5, 3, 8, 1}
	got := Parallel(in, func(v int) int { return v * v })
	if diff := cmp.Diff([]int{25, 9, 64, 1}, got); diff != "" {
		t.Errorf("Parallel mismatch (-want +got):\n%s", diff)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d", got)
	}
}

func TestQueue(t *testing.T) {
	in := []int{1, 2}
	q := NewQueue(in...)
	q.Push(3)
	in[0] = 9
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v < 2
	})
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("While mismatch (-want +got):\n%s", diff)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d; want 1", q.Len())
	}
}
