package y2021

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

type bingo struct {
	draws  []int
	boards []aoc.Grid[int]
}

func parseBingo(in []byte) (bingo, error) {
	blocks := aoc.Paragraphs(aoc.Lines(in))
	if len(blocks) == 0 {
		return bingo{}, aoc.Malformedf("empty input")
	}
	if len(blocks[0]) != 1 {
		return bingo{}, aoc.Malformedf("draw line must be followed by a blank line")
	}
	draws, err := aoc.Ints(strings.Split(blocks[0][0], ",")...)
	if err != nil {
		return bingo{}, aoc.LineError(0, blocks[0][0], err)
	}
	g := bingo{draws: draws}
	for bi, block := range blocks[1:] {
		board := make(aoc.Grid[int], 0, len(block))
		for _, row := range block {
			nums, err := aoc.Fields(row)
			if err != nil {
				return bingo{}, &aoc.ParseError{Text: row, Err: err}
			}
			if len(nums) != len(block) {
				return bingo{}, &aoc.ParseError{Text: row, Err: aoc.Malformedf("board %d: %d numbers in a row of a %d-row board", bi+1, len(nums), len(block))}
			}
			board = append(board, nums)
		}
		g.boards = append(g.boards, board)
	}
	if len(g.boards) == 0 {
		return bingo{}, aoc.Malformedf("no boards")
	}
	return g, nil
}

// complete reports whether any row of m is fully marked.
func complete(m aoc.Grid[bool]) bool {
	for _, row := range m {
		all := true
		for _, v := range row {
			all = all && v
		}
		if all {
			return true
		}
	}
	return false
}

func unmarkedSum(board aoc.Grid[int], marked aoc.Grid[bool]) int {
	sum := 0
	for y, row := range board {
		for x, v := range row {
			if !marked[y][x] {
				sum += v
			}
		}
	}
	return sum
}

// play draws numbers until every board has won and returns the scores in the
// order the boards won.
func play(g bingo) []int {
	marks := make([]aoc.Grid[bool], len(g.boards))
	for i, b := range g.boards {
		size := b.Size()
		marks[i] = aoc.MakeGrid[bool](size.X, size.Y)
	}
	won := make([]bool, len(g.boards))
	var scores []int
	q := aoc.NewQueue(g.draws...)
	q.While(func(n int) bool {
		for i, b := range g.boards {
			if won[i] {
				continue
			}
			for y, row := range b {
				for x, v := range row {
					if v == n {
						marks[i][y][x] = true
					}
				}
			}
			if complete(marks[i]) || complete(marks[i].Transpose()) {
				won[i] = true
				scores = append(scores, unmarkedSum(b, marks[i])*n)
			}
		}
		return len(scores) < len(g.boards)
	})
	return scores
}

func (s Solver) bingoScores() ([]int, error) {
	g, err := aoc.Parsed(s.Puzzle, parseBingo)
	if err != nil {
		return nil, err
	}
	scores := play(g)
	if len(scores) == 0 {
		return nil, aoc.Malformedf("no board wins after %d draws", len(g.draws))
	}
	return scores, nil
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
*/
func (s Solver) D4p1() (any, error) {
	scores, err := s.bingoScores()
	if err != nil {
		return nil, err
	}
	return scores[0], nil
}

// want=1924
func (s Solver) D4p2() (any, error) {
	scores, err := s.bingoScores()
	if err != nil {
		return nil, err
	}
	return scores[len(scores)-1], nil
}
