// Package day03 reads part numbers and gear ratios from an engine schematic.
package day03

import (
	"context"

	"svw.info/advent/internal/aoc"
)

const Title = "Gear Ratios"

const Example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

type number struct {
	row, col, width int
	value           int
}

type symbol struct {
	row, col int
	char     byte
}

type schematic struct {
	numbers []number
	symbols []symbol
}

// adjacent reports whether s touches n, diagonals included.
func (s symbol) adjacent(n number) bool {
	return s.row >= n.row-1 && s.row <= n.row+1 &&
		s.col >= n.col-1 && s.col <= n.col+n.width
}

func parse(input string) schematic {
	var sc schematic
	for row, line := range aoc.Lines(input) {
		for col := 0; col < len(line); {
			c := line[col]
			switch {
			case c >= '0' && c <= '9':
				n := number{row: row, col: col}
				for col < len(line) && line[col] >= '0' && line[col] <= '9' {
					n.value = n.value*10 + int(line[col]-'0')
					col++
				}
				n.width = col - n.col
				sc.numbers = append(sc.numbers, n)
				continue
			case c != '.':
				sc.symbols = append(sc.symbols, symbol{row: row, col: col, char: c})
			}
			col++
		}
	}
	return sc
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	sc := parse(input)
	total := 0
	for _, n := range sc.numbers {
		for _, s := range sc.symbols {
			if s.adjacent(n) {
				total += n.value
				break
			}
		}
	}
	return aoc.Itoa(total), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	sc := parse(input)
	total := 0
	for _, s := range sc.symbols {
		if s.char != '*' {
			continue
		}
		var parts []int
		for _, n := range sc.numbers {
			if s.adjacent(n) {
				parts = append(parts, n.value)
			}
		}
		if len(parts) == 2 {
			total += parts[0] * parts[1]
		}
	}
	return aoc.Itoa(total), nil
}
