package y2023

import (
	"slices"
	"strings"

	"github.com/adventsolutions/aoc"
)

const cardOrder = "23456789TJQKA"

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	cards string
	bid   int
}

// classify returns the type of the hand. With jokers, J cards join whichever
// group makes the strongest type.
func classify(cards string, jokers bool) handType {
	var counts [len(cardOrder)]int
	wild := 0
	for i := 0; i < len(cards); i++ {
		if jokers && cards[i] == 'J' {
			wild++
			continue
		}
		counts[strings.IndexByte(cardOrder, cards[i])]++
	}
	groups := slices.DeleteFunc(counts[:], func(n int) bool { return n == 0 })
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild
	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func strength(c byte, jokers bool) int {
	if jokers && c == 'J' {
		return -1
	}
	return strings.IndexByte(cardOrder, c)
}

func compareHands(a, b hand, jokers bool) int {
	if ta, tb := classify(a.cards, jokers), classify(b.cards, jokers); ta != tb {
		return int(ta) - int(tb)
	}
	for i := 0; i < len(a.cards); i++ {
		if sa, sb := strength(a.cards[i], jokers), strength(b.cards[i], jokers); sa != sb {
			return sa - sb
		}
	}
	return 0
}

// winnings ranks the hands from weakest to strongest and sums rank*bid.
func winnings(hands []hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b hand) int { return compareHands(a, b, jokers) })
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.bid
	}
	return total
}

func parseHands(in []byte) ([]hand, error) {
	var hands []hand
	for i, line := range aoc.Lines(in) {
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, aoc.LineError(i, line, aoc.Malformedf("want \"<cards> <bid>\""))
		}
		if len(f[0]) != 5 || strings.Trim(f[0], cardOrder) != "" {
			return nil, aoc.LineError(i, line, aoc.Malformedf("bad hand %q", f[0]))
		}
		bid, err := aoc.Int(f[1])
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		hands = append(hands, hand{cards: f[0], bid: bid})
	}
	return hands, nil
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s Solver) D7p1() (any, error) {
	hands, err := aoc.Parsed(s.Puzzle, parseHands)
	if err != nil {
		return nil, err
	}
	return winnings(hands, false), nil
}

// want=5905
func (s Solver) D7p2() (any, error) {
	hands, err := aoc.Parsed(s.Puzzle, parseHands)
	if err != nil {
		return nil, err
	}
	return winnings(hands, true), nil
}
