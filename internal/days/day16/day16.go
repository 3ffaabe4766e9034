// Package day16 traces light beams through a grid of mirrors and splitters.
package day16

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"svw.info/advent/internal/aoc"
)

const Title = "The Floor Will Be Lava"

const Example = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

type dir uint8

const (
	up dir = 1 << iota
	down
	left
	right
)

type beam struct {
	r, c int
	d    dir
}

func (b beam) move(d dir) beam {
	switch d {
	case up:
		b.r--
	case down:
		b.r++
	case left:
		b.c--
	case right:
		b.c++
	}
	b.d = d
	return b
}

// turn returns the outgoing directions of a beam heading d into tile.
func turn(tile byte, d dir) []dir {
	switch tile {
	case '/':
		switch d {
		case right:
			return []dir{up}
		case left:
			return []dir{down}
		case up:
			return []dir{right}
		default:
			return []dir{left}
		}
	case '\\':
		switch d {
		case right:
			return []dir{down}
		case left:
			return []dir{up}
		case up:
			return []dir{left}
		default:
			return []dir{right}
		}
	case '|':
		if d == left || d == right {
			return []dir{up, down}
		}
	case '-':
		if d == up || d == down {
			return []dir{left, right}
		}
	}
	return []dir{d}
}

type contraption [][]byte

func parse(input string) (contraption, error) {
	g, err := aoc.Grid(input)
	if err != nil {
		return nil, fmt.Errorf("day16: %w", err)
	}
	for r, row := range g {
		for c, b := range row {
			switch b {
			case '.', '/', '\\', '|', '-':
			default:
				return nil, fmt.Errorf("day16: unexpected %q at row %d col %d", b, r, c)
			}
		}
	}
	return g, nil
}

// energize counts tiles a beam entering at start passes through. Seen
// (tile, direction) states are not revisited, so mirror loops terminate.
func (g contraption) energize(start beam) int {
	h, w := len(g), len(g[0])
	seen := make([]dir, h*w)
	stack := []beam{start}
	count := 0
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.r < 0 || b.r >= h || b.c < 0 || b.c >= w {
			continue
		}
		i := b.r*w + b.c
		if seen[i]&b.d != 0 {
			continue
		}
		if seen[i] == 0 {
			count++
		}
		seen[i] |= b.d
		for _, d := range turn(g[b.r][b.c], b.d) {
			stack = append(stack, b.move(d))
		}
	}
	return count
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	g, err := parse(input)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(g.energize(beam{0, 0, right})), nil
}

// Part2 tries every edge entry point. Entries are independent, so they run
// on a bounded pool of goroutines.
func (Solver) Part2(ctx context.Context, input string) (string, error) {
	g, err := parse(input)
	if err != nil {
		return "", err
	}
	h, w := len(g), len(g[0])
	var starts []beam
	for r := 0; r < h; r++ {
		starts = append(starts, beam{r, 0, right}, beam{r, w - 1, left})
	}
	for c := 0; c < w; c++ {
		starts = append(starts, beam{0, c, down}, beam{h - 1, c, up})
	}

	var (
		mu   sync.Mutex
		best int
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, s := range starts {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			n := g.energize(s)
			mu.Lock()
			best = max(best, n)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}
	return aoc.Itoa(best), nil
}
