// Package day06 counts winning button-hold times for boat races.
package day06

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Wait For It"

const Example = `Time:      7  15   30
Distance:  9  40  200
`

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	times, dists, err := parse(input, false)
	if err != nil {
		return "", err
	}
	if len(times) != len(dists) {
		return "", fmt.Errorf("day06: %d times but %d distances", len(times), len(dists))
	}
	product := 1
	for i := range times {
		product *= waysToWin(times[i], dists[i])
	}
	return aoc.Itoa(product), nil
}

// Part2 reads each line as one number with the spaces removed.
func (Solver) Part2(_ context.Context, input string) (string, error) {
	times, dists, err := parse(input, true)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(waysToWin(times[0], dists[0])), nil
}

// waysToWin counts integer holds h in (0, t) with h*(t-h) > d.
// The float roots of h^2 - t*h + d = 0 are nudged until they are exact.
func waysToWin(t, d int) int {
	disc := float64(t)*float64(t) - 4*float64(d)
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := int(math.Floor((float64(t)-sq)/2)) + 1
	hi := int(math.Ceil((float64(t)+sq)/2)) - 1
	wins := func(h int) bool { return h*(t-h) > d }
	for lo > 0 && wins(lo-1) {
		lo--
	}
	for lo <= hi && !wins(lo) {
		lo++
	}
	for hi < t && wins(hi+1) {
		hi++
	}
	for hi >= lo && !wins(hi) {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func parse(input string, joined bool) (times, dists []int, err error) {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("day06: want 2 lines, got %d", len(lines))
	}
	read := func(line, prefix string) ([]int, error) {
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			return nil, fmt.Errorf("day06: line %q lacks %q", line, prefix)
		}
		if joined {
			n, err := strconv.Atoi(strings.Join(strings.Fields(rest), ""))
			if err != nil {
				return nil, fmt.Errorf("day06: %w", err)
			}
			return []int{n}, nil
		}
		return aoc.Ints(rest)
	}
	if times, err = read(lines[0], "Time:"); err != nil {
		return nil, nil, err
	}
	if dists, err = read(lines[1], "Distance:"); err != nil {
		return nil, nil, err
	}
	if len(times) == 0 {
		return nil, nil, fmt.Errorf("day06: no races")
	}
	return times, dists, nil
}
