package aoc

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the byte and whether it is a digit.
func Digit(b byte) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return int(b - '0'), true
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// larger first for positive a. ok is false when there are no real roots.
func SolveQuad[T Number](a, b, c T) (r1, r2 float64, ok bool) {
	d := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if d < 0 {
		return 0, 0, false
	}
	d = math.Sqrt(d)
	a2 := 2 * float64(a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, true
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		g := GCD(result, v)
		if g == 0 {
			return 0
		}
		result = result / g * v
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// ParseBinary parses a binary string.
func ParseBinary(in string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return v, nil
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return v, nil
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Fields returns the ints of the whitespace separated fields of s.
func Fields(s string) ([]int, error) {
	return Ints(strings.Fields(s)...)
}

// TrimPrefix removes prefix from s and fails when s lacks it.
func TrimPrefix(s, prefix string) (string, error) {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", Malformedf("missing %q prefix in %q", prefix, s)
	}
	return s1, nil
}

// MustGet returns v, panicking when err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel maps f over in using one goroutine per element. The output keeps
// the order of the input.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
