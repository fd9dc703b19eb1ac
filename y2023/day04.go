package y2023

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

type card struct {
	id      int
	matches int
}

func parseCard(line string) (card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return card{}, aoc.Malformedf("missing ':'")
	}
	ids, err := aoc.TrimPrefix(head, "Card")
	if err != nil {
		return card{}, err
	}
	id, err := aoc.Int(ids)
	if err != nil {
		return card{}, err
	}
	winning, have, ok := strings.Cut(body, "|")
	if !ok {
		return card{}, aoc.Malformedf("missing '|'")
	}
	wn, err := aoc.Fields(winning)
	if err != nil {
		return card{}, err
	}
	hn, err := aoc.Fields(have)
	if err != nil {
		return card{}, err
	}
	win := make(map[int]bool, len(wn))
	for _, n := range wn {
		win[n] = true
	}
	c := card{id: id}
	for _, n := range hn {
		if win[n] {
			c.matches++
		}
	}
	return c, nil
}

func parseCards(in []byte) ([]card, error) {
	var cards []card
	for i, line := range aoc.Lines(in) {
		if line == "" {
			continue
		}
		c, err := parseCard(line)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// copies returns how many of each card are held once winning cards hand out
// copies of the cards below them.
func copies(cards []card) []int {
	n := make([]int, len(cards))
	for i := range n {
		n[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches && j < len(cards); j++ {
			n[j] += n[i]
		}
	}
	return n
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s Solver) D4p1() (any, error) {
	cards, err := aoc.Parsed(s.Puzzle, parseCards)
	if err != nil {
		return nil, err
	}
	points := 0
	for _, c := range cards {
		if c.matches > 0 {
			points += 1 << (c.matches - 1)
		}
	}
	return points, nil
}

// want=30
func (s Solver) D4p2() (any, error) {
	cards, err := aoc.Parsed(s.Puzzle, parseCards)
	if err != nil {
		return nil, err
	}
	return aoc.Sum(copies(cards)...), nil
}
