// Package aoc holds the small parsing and number helpers the day solvers share.
package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines trims surrounding whitespace from s and splits it into lines.
// Carriage returns are dropped.
func Lines(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r", ""))
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}

// Blocks splits s into paragraphs separated by blank lines.
func Blocks(s string) []string {
	var blocks []string
	var cur []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r", ""), "\n") {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, strings.Join(cur, "\n"))
	}
	return blocks
}

// Ints parses every whitespace-separated field of s.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", f)
		}
		out[i] = n
	}
	return out, nil
}

// IntsSep parses fields of s separated by sep, trimming spaces around each.
func IntsSep(s, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", p)
		}
		out[i] = n
	}
	return out, nil
}

// Grid splits s into rows of bytes. All rows must have equal width.
func Grid(s string) ([][]byte, error) {
	lines := Lines(s)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	g := make([][]byte, len(lines))
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("row %d has width %d, want %d", i, len(line), len(lines[0]))
		}
		g[i] = []byte(line)
	}
	return g, nil
}

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b; LCM(0, x) is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return absInt(a / GCD(a, b) * b)
}

func absInt[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Itoa renders any integer answer.
func Itoa[T constraints.Integer](n T) string {
	return strconv.FormatInt(int64(n), 10)
}
