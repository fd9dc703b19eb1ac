package y2023

import (
	"github.com/adventsolutions/aoc"
)

// partNumber is a number in the engine schematic together with the symbols
// around it.
type partNumber struct {
	value   int
	symbols []aoc.Pt
}

func isSymbol(b byte) bool {
	_, digit := aoc.Digit(b)
	return !digit && b != '.'
}

// partNumbers scans the schematic row by row for numbers and the symbols
// touching them, diagonals included.
func partNumbers(g aoc.Grid[byte]) []partNumber {
	var out []partNumber
	for y, row := range g {
		for x := 0; x < len(row); {
			if _, ok := aoc.Digit(row[x]); !ok {
				x++
				continue
			}
			var pn partNumber
			seen := make(map[aoc.Pt]bool)
			for ; x < len(row); x++ {
				d, ok := aoc.Digit(row[x])
				if !ok {
					break
				}
				pn.value = pn.value*10 + d
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(n aoc.Pt) bool {
					if b, ok := g.AtOk(n); ok && isSymbol(b) && !seen[n] {
						seen[n] = true
						pn.symbols = append(pn.symbols, n)
					}
					return true
				})
			}
			out = append(out, pn)
		}
	}
	return out
}

type schematic struct {
	grid    aoc.Grid[byte]
	numbers []partNumber
}

func parseEngine(in []byte) (schematic, error) {
	g, err := aoc.ParseGrid(aoc.Lines(in))
	if err != nil {
		return schematic{}, err
	}
	return schematic{grid: g, numbers: partNumbers(g)}, nil
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s Solver) D3p1() (any, error) {
	sch, err := aoc.Parsed(s.Puzzle, parseEngine)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, pn := range sch.numbers {
		if len(pn.symbols) > 0 {
			sum += pn.value
		}
	}
	return sum, nil
}

// want=467835
func (s Solver) D3p2() (any, error) {
	sch, err := aoc.Parsed(s.Puzzle, parseEngine)
	if err != nil {
		return nil, err
	}
	gears := make(map[aoc.Pt][]int)
	for _, pn := range sch.numbers {
		for _, p := range pn.symbols {
			if sch.grid.At(p) == '*' {
				gears[p] = append(gears[p], pn.value)
			}
		}
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum, nil
}
