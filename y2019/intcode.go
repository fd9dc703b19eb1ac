package y2019

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/adventsolutions/aoc"
)

const (
	opAdd  = 1
	opMul  = 2
	opHalt = 99
)

// ErrUnknownOpcode is returned when the machine fetches an opcode it does not
// implement.
var ErrUnknownOpcode = errors.New("unknown opcode")

// ParseProgram parses a comma separated Intcode program.
func ParseProgram(in []byte) ([]int, error) {
	s := strings.TrimSpace(string(in))
	if s == "" {
		return nil, aoc.Malformedf("empty program")
	}
	fields := strings.Split(s, ",")
	prog := make([]int, len(fields))
	for i, f := range fields {
		v, err := aoc.Int(f)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		prog[i] = v
	}
	return prog, nil
}

// Machine is an Intcode computer with position-mode add and multiply.
type Machine struct {
	Mem []int
	PC  int
}

// NewMachine returns a machine running a copy of prog.
func NewMachine(prog []int) *Machine {
	return &Machine{Mem: slices.Clone(prog)}
}

func (m *Machine) addr(a int) error {
	if a < 0 || a >= len(m.Mem) {
		return fmt.Errorf("address %d out of range [0,%d)", a, len(m.Mem))
	}
	return nil
}

func (m *Machine) load(a int) (int, error) {
	if err := m.addr(a); err != nil {
		return 0, err
	}
	return m.Mem[a], nil
}

// Step executes one instruction and reports whether the machine halted.
func (m *Machine) Step() (halted bool, err error) {
	op, err := m.load(m.PC)
	if err != nil {
		return false, fmt.Errorf("pc %d: fetch: %w", m.PC, err)
	}
	switch op {
	case opHalt:
		return true, nil
	case opAdd, opMul:
	default:
		return false, fmt.Errorf("pc %d: %w %d", m.PC, ErrUnknownOpcode, op)
	}
	var args [3]int
	for i := range args {
		if args[i], err = m.load(m.PC + 1 + i); err != nil {
			return false, fmt.Errorf("pc %d: operand %d: %w", m.PC, i+1, err)
		}
	}
	a, err := m.load(args[0])
	if err != nil {
		return false, fmt.Errorf("pc %d: %w", m.PC, err)
	}
	b, err := m.load(args[1])
	if err != nil {
		return false, fmt.Errorf("pc %d: %w", m.PC, err)
	}
	if err := m.addr(args[2]); err != nil {
		return false, fmt.Errorf("pc %d: store: %w", m.PC, err)
	}
	if op == opAdd {
		m.Mem[args[2]] = a + b
	} else {
		m.Mem[args[2]] = a * b
	}
	m.PC += 4
	return false, nil
}

// Run steps until the machine halts or fails.
func (m *Machine) Run() error {
	for {
		halted, err := m.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// RunWith runs prog with noun and verb stored at addresses 1 and 2 and
// returns the value left at address 0.
func RunWith(prog []int, noun, verb int) (int, error) {
	if len(prog) < 3 {
		return 0, aoc.Malformedf("program of length %d has no noun and verb", len(prog))
	}
	m := NewMachine(prog)
	m.Mem[1], m.Mem[2] = noun, verb
	if err := m.Run(); err != nil {
		return 0, err
	}
	return m.Mem[0], nil
}
