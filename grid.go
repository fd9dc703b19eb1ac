package aoc

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a byte grid from lines, which must all have the same
// length.
func ParseGrid(lines []string) (Grid[byte], error) {
	g := make(Grid[byte], len(lines))
	for y, l := range lines {
		if y > 0 && len(l) != len(lines[0]) {
			return nil, LineError(y, l, fmt.Errorf("%w: width %d, want %d", ErrMalformed, len(l), len(lines[0])))
		}
		g[y] = []byte(l)
	}
	return g, nil
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a structural hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Direction is a compass direction on a grid where Y grows downwards.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ParseDirection maps U, R, D and L to a Direction.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case 'U':
		return Up, true
	case 'R':
		return Right, true
	case 'D':
		return Down, true
	case 'L':
		return Left, true
	}
	return 0, false
}

// Delta returns the unit step of d.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// ForNeighbors calls f with the eight points around p until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
