// Package day10 follows the pipe loop through a maze.
package day10

import (
	"context"
	"fmt"

	"svw.info/advent/internal/aoc"
)

const Title = "Pipe Maze"

const Example = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

type dir int

const (
	north dir = iota
	east
	south
	west
)

var step = [4][2]int{north: {-1, 0}, east: {0, 1}, south: {1, 0}, west: {0, -1}}

func (d dir) opposite() dir { return (d + 2) % 4 }

// pipes maps each pipe tile to the two directions it connects.
var pipes = map[byte][2]dir{
	'|': {north, south},
	'-': {east, west},
	'L': {north, east},
	'J': {north, west},
	'7': {south, west},
	'F': {south, east},
}

type point struct{ r, c int }

type maze struct {
	grid  [][]byte
	start point
}

func (m *maze) at(p point) (byte, bool) {
	if p.r < 0 || p.r >= len(m.grid) || p.c < 0 || p.c >= len(m.grid[p.r]) {
		return 0, false
	}
	return m.grid[p.r][p.c], true
}

func (m *maze) connects(p point, d dir) bool {
	c, ok := m.at(p)
	if !ok {
		return false
	}
	conn, ok := pipes[c]
	return ok && (conn[0] == d || conn[1] == d)
}

func parse(input string) (*maze, error) {
	g, err := aoc.Grid(input)
	if err != nil {
		return nil, fmt.Errorf("day10: %w", err)
	}
	m := &maze{grid: g, start: point{-1, -1}}
	for r, row := range g {
		for c, b := range row {
			if b == 'S' {
				if m.start.r >= 0 {
					return nil, fmt.Errorf("day10: more than one start")
				}
				m.start = point{r, c}
			}
		}
	}
	if m.start.r < 0 {
		return nil, fmt.Errorf("day10: no start tile")
	}
	return m, nil
}

// loop returns the tiles of the loop through S in walking order.
func (m *maze) loop() ([]point, error) {
	var exits []dir
	for d := north; d <= west; d++ {
		n := point{m.start.r + step[d][0], m.start.c + step[d][1]}
		if m.connects(n, d.opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return nil, fmt.Errorf("day10: start has %d connecting pipes, want 2", len(exits))
	}
	path := []point{m.start}
	p, d := m.start, exits[0]
	for {
		p = point{p.r + step[d][0], p.c + step[d][1]}
		if p == m.start {
			return path, nil
		}
		c, _ := m.at(p)
		conn, ok := pipes[c]
		if !ok {
			return nil, fmt.Errorf("day10: loop broken at row %d col %d", p.r, p.c)
		}
		switch d.opposite() {
		case conn[0]:
			d = conn[1]
		case conn[1]:
			d = conn[0]
		default:
			return nil, fmt.Errorf("day10: loop broken at row %d col %d", p.r, p.c)
		}
		path = append(path, p)
		if len(path) > len(m.grid)*len(m.grid[0]) {
			return nil, fmt.Errorf("day10: loop does not close")
		}
	}
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	path, err := m.loop()
	if err != nil {
		return "", err
	}
	return aoc.Itoa(len(path) / 2), nil
}

// Part2 counts enclosed tiles with the shoelace area and Pick's theorem:
// interior = area - boundary/2 + 1.
func (Solver) Part2(_ context.Context, input string) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	path, err := m.loop()
	if err != nil {
		return "", err
	}
	area2 := 0
	for i, p := range path {
		q := path[(i+1)%len(path)]
		area2 += p.c*q.r - q.c*p.r
	}
	area2 = aoc.Abs(area2)
	return aoc.Itoa((area2-len(path))/2 + 1), nil
}
