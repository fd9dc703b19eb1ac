package y2019

import (
	"fmt"

	"github.com/adventsolutions/aoc"
)

const gravityAssistTarget = 19690720

/*
want=3500

1,9,10,3,2,3,11,0,99,30,40,50
*/
func (s Solver) D2p1() (any, error) {
	prog, err := aoc.Parsed(s.Puzzle, ParseProgram)
	if err != nil {
		return nil, err
	}
	if s.SampleMode {
		// The sample has no "1202 program alarm" state to restore.
		m := NewMachine(prog)
		if err := m.Run(); err != nil {
			return nil, err
		}
		return m.Mem[0], nil
	}
	return RunWith(prog, 12, 2)
}

// findNounVerb returns the smallest noun and verb, each in [0,100), for
// which prog leaves target at address 0.
func findNounVerb(prog []int, target int) (noun, verb int, err error) {
	nouns := make([]int, 100)
	for i := range nouns {
		nouns[i] = i
	}
	verbs := aoc.Parallel(nouns, func(noun int) int {
		for verb := 0; verb < 100; verb++ {
			// A program that faults for this pair is simply not a match.
			if v, err := RunWith(prog, noun, verb); err == nil && v == target {
				return verb
			}
		}
		return -1
	})
	for noun, verb := range verbs {
		if verb >= 0 {
			return noun, verb, nil
		}
	}
	return 0, 0, fmt.Errorf("no noun and verb produce %d", target)
}

func (s Solver) D2p2() (any, error) {
	prog, err := aoc.Parsed(s.Puzzle, ParseProgram)
	if err != nil {
		return nil, err
	}
	noun, verb, err := findNounVerb(prog, gravityAssistTarget)
	if err != nil {
		return nil, err
	}
	return 100*noun + verb, nil
}
