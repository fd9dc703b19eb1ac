package y2023

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/adventsolutions/aoc"
	"golang.org/x/exp/maps"
)

type network struct {
	instructions string
	nodes        map[string][2]string // left, right
}

var nodeRx = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

func parseNetwork(in []byte) (network, error) {
	lines := aoc.Lines(in)
	if len(lines) == 0 {
		return network{}, aoc.Malformedf("empty input")
	}
	n := network{
		instructions: strings.TrimSpace(lines[0]),
		nodes:        make(map[string][2]string),
	}
	if n.instructions == "" || strings.Trim(n.instructions, "LR") != "" {
		return network{}, aoc.LineError(0, lines[0], aoc.Malformedf("instructions must be L or R"))
	}
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := nodeRx.FindStringSubmatch(line)
		if m == nil {
			return network{}, aoc.LineError(i+1, line, aoc.Malformedf("want \"AAA = (BBB, CCC)\""))
		}
		n.nodes[m[1]] = [2]string{m[2], m[3]}
	}
	return n, nil
}

// steps follows the instructions from start until done reports true. A walk
// that outlasts every (node, instruction) state is stuck in a cycle.
func (n network) steps(start string, done func(string) bool) (int, error) {
	limit := len(n.instructions) * (len(n.nodes) + 1)
	cur := start
	i := 0
	for ; !done(cur); i++ {
		if i > limit {
			return 0, fmt.Errorf("no path from %s", start)
		}
		next, ok := n.nodes[cur]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", cur)
		}
		if n.instructions[i%len(n.instructions)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return i, nil
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s Solver) D8p1() (any, error) {
	n, err := aoc.Parsed(s.Puzzle, parseNetwork)
	if err != nil {
		return nil, err
	}
	if _, ok := n.nodes["AAA"]; !ok {
		return nil, aoc.Malformedf("no AAA node")
	}
	return n.steps("AAA", func(node string) bool { return node == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s Solver) D8p2() (any, error) {
	n, err := aoc.Parsed(s.Puzzle, parseNetwork)
	if err != nil {
		return nil, err
	}
	starts := slices.DeleteFunc(maps.Keys(n.nodes), func(node string) bool {
		return !strings.HasSuffix(node, "A")
	})
	if len(starts) == 0 {
		return nil, aoc.Malformedf("no start nodes")
	}
	slices.Sort(starts)
	atEnd := func(node string) bool { return strings.HasSuffix(node, "Z") }
	cycles := make([]int, len(starts))
	for i, start := range starts {
		if cycles[i], err = n.steps(start, atEnd); err != nil {
			return nil, err
		}
		s.Debugf("%s reaches an end after %d steps", start, cycles[i])
	}
	return aoc.LCM(cycles...), nil
}
