// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Camel Cards"

const Example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeKind
	fullHouse
	fourKind
	fiveKind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

type hand struct {
	cards string
	bid   int
	kind  handType
	ranks [5]int
}

// classify derives the type from the two largest card counts. With jokers
// set, every J joins the largest group.
func classify(cards string, jokers bool) handType {
	counts := map[rune]int{}
	for _, c := range cards {
		counts[c]++
	}
	j := 0
	if jokers {
		j = counts['J']
		delete(counts, 'J')
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += j
	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}
	switch {
	case groups[0] == 5:
		return fiveKind
	case groups[0] == 4:
		return fourKind
	case groups[0] == 3 && second == 2:
		return fullHouse
	case groups[0] == 3:
		return threeKind
	case groups[0] == 2 && second == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func parse(input string, jokers bool) ([]hand, error) {
	strength := order
	if jokers {
		strength = jokerOrder
	}
	var hands []hand
	for _, line := range aoc.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 5 {
			return nil, fmt.Errorf("day07: bad hand %q", line)
		}
		bid, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("day07: bad bid in %q", line)
		}
		h := hand{cards: f[0], bid: bid, kind: classify(f[0], jokers)}
		for i := range 5 {
			r := strings.IndexByte(strength, f[0][i])
			if r < 0 {
				return nil, fmt.Errorf("day07: unknown card %q in %q", f[0][i], line)
			}
			h.ranks[i] = r
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func winnings(hands []hand) int {
	slices.SortFunc(hands, func(a, b hand) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		return slices.Compare(a.ranks[:], b.ranks[:])
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	hands, err := parse(input, false)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(winnings(hands)), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	hands, err := parse(input, true)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(winnings(hands)), nil
}
