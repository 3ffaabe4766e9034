// Package day01 recovers calibration values hidden in lines of text.
package day01

import (
	"context"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Trebuchet?!"

const Example = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	return aoc.Itoa(sum(input, false)), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	return aoc.Itoa(sum(input, true)), nil
}

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func sum(input string, spelled bool) int {
	total := 0
	for _, line := range aoc.Lines(input) {
		first, last, ok := digits(line, spelled)
		if ok {
			total += first*10 + last
		}
	}
	return total
}

// digits scans line left to right. Spelled digits may overlap ("eightwo").
func digits(line string, spelled bool) (first, last int, ok bool) {
	for i := 0; i < len(line); i++ {
		d := -1
		if c := line[i]; c >= '0' && c <= '9' {
			d = int(c - '0')
		} else if spelled {
			for n, w := range words {
				if strings.HasPrefix(line[i:], w) {
					d = n
					break
				}
			}
		}
		if d < 0 {
			continue
		}
		if !ok {
			first, ok = d, true
		}
		last = d
	}
	return first, last, ok
}
