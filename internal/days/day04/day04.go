// Package day04 scores scratchcards.
package day04

import (
	"context"
	"fmt"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Scratchcards"

const Example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	matches, err := parse(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, m := range matches {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}
	return aoc.Itoa(total), nil
}

// Part2 counts cards once every win has copied the following cards.
func (Solver) Part2(_ context.Context, input string) (string, error) {
	matches, err := parse(input)
	if err != nil {
		return "", err
	}
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return aoc.Itoa(total), nil
}

// parse returns the number of winning numbers held on each card.
func parse(input string) ([]int, error) {
	var out []int
	for _, line := range aoc.Lines(input) {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("day04: missing ':' in %q", line)
		}
		win, have, ok := strings.Cut(body, "|")
		if !ok {
			return nil, fmt.Errorf("day04: missing '|' in %q", line)
		}
		winning, err := aoc.Ints(win)
		if err != nil {
			return nil, fmt.Errorf("day04: %w", err)
		}
		given, err := aoc.Ints(have)
		if err != nil {
			return nil, fmt.Errorf("day04: %w", err)
		}
		set := make(map[int]bool, len(winning))
		for _, n := range winning {
			set[n] = true
		}
		m := 0
		for _, n := range given {
			if set[n] {
				m++
			}
		}
		out = append(out, m)
	}
	return out, nil
}
