package y2019

import (
	"errors"
	"testing"

	"github.com/adventsolutions/aoc"
	"github.com/adventsolutions/aoc/aoctest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	aoctest.Samples(t, Year())
}

func TestFuel(t *testing.T) {
	tests := []struct {
		mass, fuel, total int
	}{
		{12, 2, 2},
		{14, 2, 2},
		{1969, 654, 966},
		{100756, 33583, 50346},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fuel, fuel(tt.mass), "fuel(%d)", tt.mass)
		assert.Equal(t, tt.total, totalFuel(tt.mass), "totalFuel(%d)", tt.mass)
	}
}

func TestParseMassesError(t *testing.T) {
	_, err := parseMasses([]byte("12\nabc\n"))
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.ErrorIs(t, err, aoc.ErrMalformed)
}

func TestMachine(t *testing.T) {
	tests := []struct {
		prog string
		want []int
	}{
		{"1,0,0,0,99", []int{2, 0, 0, 0, 99}},
		{"2,3,0,3,99", []int{2, 3, 0, 6, 99}},
		{"2,4,4,5,99,0", []int{2, 4, 4, 5, 99, 9801}},
		{"1,1,1,4,99,5,6,0,99", []int{30, 1, 1, 4, 2, 5, 6, 0, 99}},
		{"1,9,10,3,2,3,11,0,99,30,40,50", []int{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
	}
	for _, tt := range tests {
		prog, err := ParseProgram([]byte(tt.prog))
		require.NoError(t, err)
		m := NewMachine(prog)
		require.NoError(t, m.Run(), tt.prog)
		if diff := cmp.Diff(tt.want, m.Mem); diff != "" {
			t.Errorf("%s: memory mismatch (-want +got):\n%s", tt.prog, diff)
		}
	}
}

func TestMachineHaltPC(t *testing.T) {
	m := NewMachine(aoc.MustGet(ParseProgram([]byte("1,9,10,3,2,3,11,0,99,30,40,50"))))
	require.NoError(t, m.Run())
	assert.Equal(t, 8, m.PC)
}

func TestMachineDoesNotMutateProgram(t *testing.T) {
	prog := []int{1, 0, 0, 0, 99}
	require.NoError(t, NewMachine(prog).Run())
	assert.Equal(t, []int{1, 0, 0, 0, 99}, prog)
}

func TestMachineErrors(t *testing.T) {
	tests := []struct {
		name string
		prog []int
		is   error
	}{
		{"unknown opcode", []int{3, 0, 0, 0, 99}, ErrUnknownOpcode},
		{"operand out of range", []int{1, 50, 0, 0, 99}, nil},
		{"store out of range", []int{1, 0, 0, 50, 99}, nil},
		{"truncated instruction", []int{1, 0}, nil},
		{"runs off the end", []int{1, 0, 0, 0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMachine(tt.prog).Run()
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestParseProgramErrors(t *testing.T) {
	for _, in := range []string{"", "  \n", "1,x,3", "1,,2"} {
		_, err := ParseProgram([]byte(in))
		assert.Error(t, err, "%q", in)
	}
}

func TestFindNounVerb(t *testing.T) {
	// mem[0] = mem[noun] + mem[verb]; cells 5.. hold 100..
	prog := []int{1, 0, 0, 0, 99}
	for i := 0; i < 100; i++ {
		prog = append(prog, 100+i)
	}
	noun, verb, err := findNounVerb(prog, 249)
	require.NoError(t, err)
	// Noun 2 reads back the verb itself: 77 + mem[77] = 77 + 172.
	assert.Equal(t, 2, noun)
	assert.Equal(t, 77, verb)

	_, _, err = findNounVerb(prog, -1)
	assert.Error(t, err)
}

func TestWires(t *testing.T) {
	tests := []struct {
		a, b          string
		dist, steps int
	}{
		{"R8,U5,L5,D3", "U7,R6,D4,L4", 6, 30},
		{"R75,D30,R83,U83,L12,D49,R71,U7,L72", "U62,R66,U55,R34,D71,R55,D58,R83", 159, 610},
		{"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51", "U98,R91,D20,R16,D67,R40,U7,R15,U6,R7", 135, 410},
	}
	var origin aoc.Pt
	for _, tt := range tests {
		a, err := ParseWire(tt.a)
		require.NoError(t, err)
		b, err := ParseWire(tt.b)
		require.NoError(t, err)
		wires := []Wire{a, b}
		dist, err := closest(wires, func(c Crossing) int { return c.Pt.MDist(origin) })
		require.NoError(t, err)
		assert.Equal(t, tt.dist, dist)
		steps, err := closest(wires, func(c Crossing) int { return c.Steps })
		require.NoError(t, err)
		assert.Equal(t, tt.steps, steps)
	}
}

func TestCrossings(t *testing.T) {
	a := aoc.MustGet(ParseWire("R8,U5,L5,D3"))
	b := aoc.MustGet(ParseWire("U7,R6,D4,L4"))
	got := Crossings(a, b)
	want := []Crossing{
		{Pt: aoc.Pt{X: 6, Y: -5}, Steps: 30},
		{Pt: aoc.Pt{X: 3, Y: -3}, Steps: 40},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Crossings mismatch (-want +got):\n%s", diff)
	}
}

func TestWireErrors(t *testing.T) {
	for _, in := range []string{"", "X5", "R", "R-1", "R5,,U2", "Rx"} {
		_, err := ParseWire(in)
		assert.ErrorIs(t, err, aoc.ErrMalformed, "%q", in)
	}
	_, err := parseWires([]byte("R8,U5\n"))
	assert.Error(t, err)

	wires, err := parseWires([]byte("R2\nL2\n"))
	require.NoError(t, err)
	_, err = closest(wires, func(c Crossing) int { return c.Steps })
	assert.ErrorIs(t, err, errNoCrossing)
}
