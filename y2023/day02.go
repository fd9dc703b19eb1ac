package y2023

import (
	"strings"

	"github.com/adventsolutions/aoc"
)

// cubes counts cubes of each color.
type cubes struct {
	red, green, blue int
}

func (c cubes) fits(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) union(o cubes) cubes {
	return cubes{max(c.red, o.red), max(c.green, o.green), max(c.blue, o.blue)}
}

func (c cubes) power() int { return c.red * c.green * c.blue }

type game struct {
	id      int
	reveals []cubes
}

// minimal returns the fewest cubes that make every reveal possible.
func (g game) minimal() cubes {
	return aoc.Fold(g.reveals, cubes.union, cubes{})
}

func parseReveal(s string) (cubes, error) {
	var c cubes
	for _, part := range strings.Split(s, ",") {
		ns, color, ok := strings.Cut(strings.TrimSpace(part), " ")
		if !ok {
			return cubes{}, aoc.Malformedf("reveal %q: want \"<count> <color>\"", part)
		}
		n, err := aoc.Int(ns)
		if err != nil {
			return cubes{}, err
		}
		switch color {
		case "red":
			c.red += n
		case "green":
			c.green += n
		case "blue":
			c.blue += n
		default:
			return cubes{}, aoc.Malformedf("unknown color %q", color)
		}
	}
	return c, nil
}

func parseGame(line string) (game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return game{}, aoc.Malformedf("missing ':'")
	}
	ids, err := aoc.TrimPrefix(head, "Game ")
	if err != nil {
		return game{}, err
	}
	id, err := aoc.Int(ids)
	if err != nil {
		return game{}, err
	}
	g := game{id: id}
	for _, r := range strings.Split(body, ";") {
		c, err := parseReveal(r)
		if err != nil {
			return game{}, err
		}
		g.reveals = append(g.reveals, c)
	}
	return g, nil
}

func parseGames(in []byte) ([]game, error) {
	var games []game
	for i, line := range aoc.Lines(in) {
		if line == "" {
			continue
		}
		g, err := parseGame(line)
		if err != nil {
			return nil, aoc.LineError(i, line, err)
		}
		games = append(games, g)
	}
	return games, nil
}

var bag = cubes{red: 12, green: 13, blue: 14}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s Solver) D2p1() (any, error) {
	games, err := aoc.Parsed(s.Puzzle, parseGames)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		if g.minimal().fits(bag) {
			sum += g.id
		}
	}
	return sum, nil
}

// want=2286
func (s Solver) D2p2() (any, error) {
	games, err := aoc.Parsed(s.Puzzle, parseGames)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		sum += g.minimal().power()
	}
	return sum, nil
}
