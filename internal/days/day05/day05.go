// Package day05 pushes seed numbers and seed ranges through a chain of
// almanac maps.
package day05

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "If You Give A Seed A Fertilizer"

const Example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// interval is the half-open range [lo, hi).
type interval struct{ lo, hi int }

// rule shifts every value of src by delta.
type rule struct {
	src   interval
	delta int
}

// layer is one almanac map; values no rule covers pass through unchanged.
type layer []rule

func (l layer) apply(v int) int {
	for _, r := range l {
		if v >= r.src.lo && v < r.src.hi {
			return v + r.delta
		}
	}
	return v
}

// applyRanges splits each interval on the rule boundaries it crosses and
// shifts the covered pieces. Uncovered pieces pass through.
func (l layer) applyRanges(in []interval) []interval {
	var out []interval
	pending := slices.Clone(in)
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		mapped := false
		for _, r := range l {
			lo, hi := max(cur.lo, r.src.lo), min(cur.hi, r.src.hi)
			if lo >= hi {
				continue
			}
			out = append(out, interval{lo + r.delta, hi + r.delta})
			if cur.lo < lo {
				pending = append(pending, interval{cur.lo, lo})
			}
			if hi < cur.hi {
				pending = append(pending, interval{hi, cur.hi})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, cur)
		}
	}
	return out
}

type almanac struct {
	seeds  []int
	layers []layer
}

func parse(input string) (almanac, error) {
	var a almanac
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return a, fmt.Errorf("day05: empty almanac")
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(blocks[0]), "seeds:")
	if !ok {
		return a, fmt.Errorf("day05: missing seeds line")
	}
	seeds, err := aoc.Ints(rest)
	if err != nil {
		return a, fmt.Errorf("day05: seeds: %w", err)
	}
	a.seeds = seeds
	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		var l layer
		for _, line := range lines[1:] {
			nums, err := aoc.Ints(line)
			if err != nil {
				return a, fmt.Errorf("day05: %s: %w", lines[0], err)
			}
			if len(nums) != 3 {
				return a, fmt.Errorf("day05: %s: want 3 numbers in %q", lines[0], line)
			}
			dst, src, n := nums[0], nums[1], nums[2]
			l = append(l, rule{src: interval{src, src + n}, delta: dst - src})
		}
		a.layers = append(a.layers, l)
	}
	return a, nil
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	a, err := parse(input)
	if err != nil {
		return "", err
	}
	if len(a.seeds) == 0 {
		return "", fmt.Errorf("day05: no seeds")
	}
	best := 0
	for i, s := range a.seeds {
		for _, l := range a.layers {
			s = l.apply(s)
		}
		if i == 0 || s < best {
			best = s
		}
	}
	return aoc.Itoa(best), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	a, err := parse(input)
	if err != nil {
		return "", err
	}
	if len(a.seeds) == 0 || len(a.seeds)%2 != 0 {
		return "", fmt.Errorf("day05: seeds must come in start/length pairs")
	}
	var ranges []interval
	for i := 0; i < len(a.seeds); i += 2 {
		if a.seeds[i+1] > 0 {
			ranges = append(ranges, interval{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
		}
	}
	for _, l := range a.layers {
		ranges = l.applyRanges(ranges)
	}
	if len(ranges) == 0 {
		return "", fmt.Errorf("day05: no seeds")
	}
	best := ranges[0].lo
	for _, r := range ranges[1:] {
		best = min(best, r.lo)
	}
	return aoc.Itoa(best), nil
}
