// Package day09 extrapolates sequences by repeated differencing.
package day09

import (
	"context"
	"fmt"

	"svw.info/advent/internal/aoc"
)

const Title = "Mirage Maintenance"

const Example = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

// differences returns the successive difference rows of seq, stopping at
// the first all-zero row (inclusive).
func differences(seq []int) [][]int {
	rows := [][]int{seq}
	cur := seq
	for len(cur) > 0 && !allZero(cur) {
		next := make([]int, len(cur)-1)
		for i := range next {
			next[i] = cur[i+1] - cur[i]
		}
		rows = append(rows, next)
		cur = next
	}
	return rows
}

func allZero(s []int) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

func next(seq []int) int {
	v := 0
	for _, row := range differences(seq) {
		if len(row) > 0 {
			v += row[len(row)-1]
		}
	}
	return v
}

func prev(seq []int) int {
	rows := differences(seq)
	v := 0
	for i := len(rows) - 1; i >= 0; i-- {
		if len(rows[i]) > 0 {
			v = rows[i][0] - v
		}
	}
	return v
}

func solve(input string, extrapolate func([]int) int) (string, error) {
	total := 0
	for _, line := range aoc.Lines(input) {
		seq, err := aoc.Ints(line)
		if err != nil {
			return "", fmt.Errorf("day09: %w", err)
		}
		total += extrapolate(seq)
	}
	return aoc.Itoa(total), nil
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	return solve(input, next)
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	return solve(input, prev)
}
