package y2021

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

type command struct {
	dir string
	n   int
}

func parseCommands(in []byte) ([]command, error) {
	var cmds []command
	for i, line := range aoc.Lines(in) {
		if line == "" {
			continue
		}
		dir, arg, ok := strings.Cut(line, " ")
		if !ok {
			return nil, aoc.LineError(i, line, aoc.Malformedf("want \"<direction> <units>\""))
		}
		switch dir {
		case "forward", "down", "up":
		default:
			return nil, aoc.LineError(i, line, aoc.Malformedf("unknown direction %q", dir))
		}
		n, err := aoc.Int(arg)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		cmds = append(cmds, command{dir, n})
	}
	return cmds, nil
}

// dive returns the horizontal position and depth after cmds. With aim, up and
// down steer instead of moving.
func dive(cmds []command, aim bool) aoc.Pt {
	var pos aoc.Pt
	a := 0
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			pos.X += c.n
			if aim {
				pos.Y += a * c.n
			}
		case "down":
			if aim {
				a += c.n
			} else {
				pos.Y += c.n
			}
		case "up":
			if aim {
				a -= c.n
			} else {
				pos.Y -= c.n
			}
		}
	}
	return pos
}

func (s Solver) navigate(aim bool) (any, error) {
	cmds, err := aoc.Parsed(s.Puzzle, parseCommands)
	if err != nil {
		return nil, err
	}
	pos := dive(cmds, aim)
	s.Debugf("final position %v", pos)
	return pos.X * pos.Y, nil
}

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s Solver) D2p1() (any, error) {
	return s.navigate(false)
}

// want=900
func (s Solver) D2p2() (any, error) {
	return s.navigate(true)
}
