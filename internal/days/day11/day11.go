// Package day11 measures galaxy distances in an expanding universe.
package day11

import (
	"context"
	"fmt"

	"svw.info/advent/internal/aoc"
)

const Title = "Cosmic Expansion"

const Example = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	n, err := SumDistances(input, 2)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(n), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	n, err := SumDistances(input, 1_000_000)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(n), nil
}

// SumDistances sums Manhattan distances over all galaxy pairs after every
// empty row and column has been replaced by factor copies of itself.
func SumDistances(input string, factor int) (int, error) {
	g, err := aoc.Grid(input)
	if err != nil {
		return 0, fmt.Errorf("day11: %w", err)
	}
	rowUsed := make([]bool, len(g))
	colUsed := make([]bool, len(g[0]))
	type galaxy struct{ r, c int }
	var galaxies []galaxy
	for r, row := range g {
		for c, b := range row {
			switch b {
			case '#':
				galaxies = append(galaxies, galaxy{r, c})
				rowUsed[r], colUsed[c] = true, true
			case '.':
			default:
				return 0, fmt.Errorf("day11: unexpected %q at row %d col %d", b, r, c)
			}
		}
	}
	// Prefix counts turn "empty lines between a and b" into one subtraction.
	expand := func(used []bool) []int {
		pos := make([]int, len(used))
		off := 0
		for i, u := range used {
			pos[i] = i + off
			if !u {
				off += factor - 1
			}
		}
		return pos
	}
	rowPos, colPos := expand(rowUsed), expand(colUsed)
	total := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			total += aoc.Abs(rowPos[a.r]-rowPos[b.r]) + aoc.Abs(colPos[a.c]-colPos[b.c])
		}
	}
	return total, nil
}
