// Package day02 checks which cube games are possible with a given bag.
package day02

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Cube Conundrum"

const Example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

// cubes holds counts in the order red, green, blue.
type cubes [3]int

var bag = cubes{12, 13, 14}

type game struct {
	id  int
	max cubes
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	games, err := parse(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, g := range games {
		if g.max[0] <= bag[0] && g.max[1] <= bag[1] && g.max[2] <= bag[2] {
			total += g.id
		}
	}
	return aoc.Itoa(total), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	games, err := parse(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, g := range games {
		total += g.max[0] * g.max[1] * g.max[2]
	}
	return aoc.Itoa(total), nil
}

func parse(input string) ([]game, error) {
	var games []game
	for _, line := range aoc.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("day02: %w", err)
		}
		games = append(games, g)
	}
	return games, nil
}

// parseGame keeps only the per-colour maxima across the revealed subsets.
func parseGame(line string) (game, error) {
	var g game
	head, sets, ok := strings.Cut(line, ":")
	if !ok {
		return g, fmt.Errorf("missing ':' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(head, "Game")))
	if err != nil {
		return g, fmt.Errorf("bad game id in %q", head)
	}
	g.id = id
	for _, set := range strings.Split(sets, ";") {
		for _, draw := range strings.Split(set, ",") {
			f := strings.Fields(draw)
			if len(f) != 2 {
				return g, fmt.Errorf("bad draw %q", draw)
			}
			n, err := strconv.Atoi(f[0])
			if err != nil {
				return g, fmt.Errorf("bad count in %q", draw)
			}
			var idx int
			switch f[1] {
			case "red":
				idx = 0
			case "green":
				idx = 1
			case "blue":
				idx = 2
			default:
				return g, fmt.Errorf("unknown colour %q", f[1])
			}
			g.max[idx] = max(g.max[idx], n)
		}
	}
	return g, nil
}
