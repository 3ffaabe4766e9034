// Package day08 walks a left/right node network.
package day08

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"svw.info/advent/internal/aoc"
)

const Title = "Haunted Wasteland"

const Example = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

type network struct {
	turns string
	nodes map[string][2]string
}

func parse(input string) (*network, error) {
	lines := aoc.Lines(input)
	if len(lines) < 2 {
		return nil, fmt.Errorf("day08: want instructions and nodes")
	}
	n := &network{turns: strings.TrimSpace(lines[0]), nodes: make(map[string][2]string)}
	if n.turns == "" || strings.Trim(n.turns, "LR") != "" {
		return nil, fmt.Errorf("day08: bad instructions %q", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("day08: bad node %q", line)
		}
		rest = strings.Trim(strings.TrimSpace(rest), "()")
		l, r, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, fmt.Errorf("day08: bad node %q", line)
		}
		n.nodes[strings.TrimSpace(name)] = [2]string{strings.TrimSpace(l), strings.TrimSpace(r)}
	}
	return n, nil
}

// walk counts steps from start until done holds. It gives up once every
// (node, instruction) state could have been visited.
func (n *network) walk(ctx context.Context, start string, done func(string) bool) (int, error) {
	limit := len(n.turns)*len(n.nodes) + 1
	pos := start
	for step := 0; step <= limit; step++ {
		if done(pos) {
			return step, nil
		}
		if step%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		next, ok := n.nodes[pos]
		if !ok {
			return 0, fmt.Errorf("day08: unknown node %q", pos)
		}
		if n.turns[step%len(n.turns)] == 'L' {
			pos = next[0]
		} else {
			pos = next[1]
		}
	}
	return 0, fmt.Errorf("day08: %s never reaches a target", start)
}

type Solver struct{}

func (Solver) Part1(ctx context.Context, input string) (string, error) {
	n, err := parse(input)
	if err != nil {
		return "", err
	}
	if _, ok := n.nodes["AAA"]; !ok {
		return "", fmt.Errorf("day08: no AAA node")
	}
	steps, err := n.walk(ctx, "AAA", func(p string) bool { return p == "ZZZ" })
	if err != nil {
		return "", err
	}
	return aoc.Itoa(steps), nil
}

// Part2 walks every ..A node at once. Each ghost runs in its own goroutine
// over the shared read-only network and the cycle lengths are combined by LCM.
func (Solver) Part2(ctx context.Context, input string) (string, error) {
	n, err := parse(input)
	if err != nil {
		return "", err
	}
	var starts []string
	for name := range n.nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return "", fmt.Errorf("day08: no start nodes")
	}
	slices.Sort(starts)

	cycles := make([]int, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	for i, start := range starts {
		g.Go(func() error {
			steps, err := n.walk(gctx, start, func(p string) bool { return strings.HasSuffix(p, "Z") })
			if err != nil {
				return err
			}
			cycles[i] = steps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	total := cycles[0]
	for _, c := range cycles[1:] {
		total = aoc.LCM(total, c)
	}
	return aoc.Itoa(total), nil
}
