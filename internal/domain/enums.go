package domain

import (
	"fmt"
	"strings"
)

// Part selects which half of a day's puzzle to solve.
type Part int

const (
	Part1 Part = iota + 1
	Part2
)

func (p Part) String() string {
	switch p {
	case Part1:
		return "part1"
	case Part2:
		return "part2"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}

// ParsePart accepts "1", "2", "part1" and "part2" in any case.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "part1":
		return Part1, nil
	case "2", "part2":
		return Part2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
	}
}
