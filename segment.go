package aoc

import (
	"fmt"
	"strings"
)

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// ParsePt parses "x,y".
func ParsePt(s string) (Pt, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Pt{}, Malformedf("point %q lacks a comma", s)
	}
	x, err := Int(xs)
	if err != nil {
		return Pt{}, err
	}
	y, err := Int(ys)
	if err != nil {
		return Pt{}, err
	}
	return Pt{x, y}, nil
}

// ParseSegment parses "x1,y1 -> x2,y2".
func ParseSegment(s string) (Segment, error) {
	as, bs, ok := strings.Cut(s, "->")
	if !ok {
		return Segment{}, Malformedf("segment %q lacks an arrow", s)
	}
	a, err := ParsePt(strings.TrimSpace(as))
	if err != nil {
		return Segment{}, err
	}
	b, err := ParsePt(strings.TrimSpace(bs))
	if err != nil {
		return Segment{}, err
	}
	return Segment{a, b}, nil
}

func (s Segment) String() string {
	return fmt.Sprintf("%v -> %v", s.A, s.B)
}

func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y }

func (s Segment) Vertical() bool { return s.A.X == s.B.X }

// Diagonal reports whether s runs at 45 degrees.
func (s Segment) Diagonal() bool {
	return s.A != s.B && AbsDiff(s.A.X, s.B.X) == AbsDiff(s.A.Y, s.B.Y)
}

// Straight reports whether s is horizontal, vertical or diagonal, the shapes
// Points and Intersect support.
func (s Segment) Straight() bool {
	return s.Horizontal() || s.Vertical() || s.Diagonal()
}

// Len returns the number of unit steps from A to B.
func (s Segment) Len() int {
	return max(AbsDiff(s.A.X, s.B.X), AbsDiff(s.A.Y, s.B.Y))
}

// Points returns every point from A to B inclusive, in order.
func (s Segment) Points() []Pt {
	pts := make([]Pt, 0, s.Len()+1)
	p := s.A
	pts = append(pts, p)
	for p != s.B {
		p = p.Toward(s.B)
		pts = append(pts, p)
	}
	return pts
}

func (s Segment) bounds() (lo, hi Pt) {
	lo = Pt{min(s.A.X, s.B.X), min(s.A.Y, s.B.Y)}
	hi = Pt{max(s.A.X, s.B.X), max(s.A.Y, s.B.Y)}
	return lo, hi
}

// Contains reports whether p lies on s.
func (s Segment) Contains(p Pt) bool {
	lo, hi := s.bounds()
	if p.X < lo.X || p.X > hi.X || p.Y < lo.Y || p.Y > hi.Y {
		return false
	}
	d := s.B.Sub(s.A)
	e := p.Sub(s.A)
	return d.X*e.Y-d.Y*e.X == 0
}

// Intersect returns the points shared by s and o, walking the shorter of the
// two. Collinear overlaps yield every shared point.
func (s Segment) Intersect(o Segment) []Pt {
	slo, shi := s.bounds()
	olo, ohi := o.bounds()
	if shi.X < olo.X || ohi.X < slo.X || shi.Y < olo.Y || ohi.Y < slo.Y {
		return nil
	}
	if s.Len() > o.Len() {
		s, o = o, s
	}
	var out []Pt
	for _, p := range s.Points() {
		if o.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
