// Package day24 intersects hailstone trajectories.
package day24

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Never Tell Me The Odds"

const Example = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
`

// Test area of the real puzzle, inclusive on both ends.
const (
	areaMin = 200_000_000_000_000
	areaMax = 400_000_000_000_000
)

type vec [3]int

type stone struct {
	p, v vec
}

func parse(input string) ([]stone, error) {
	var stones []stone
	for _, line := range aoc.Lines(input) {
		l, r, ok := strings.Cut(line, "@")
		if !ok {
			return nil, fmt.Errorf("day24: missing '@' in %q", line)
		}
		p, err := aoc.IntsSep(l, ",")
		if err != nil || len(p) != 3 {
			return nil, fmt.Errorf("day24: bad position in %q", line)
		}
		v, err := aoc.IntsSep(r, ",")
		if err != nil || len(v) != 3 {
			return nil, fmt.Errorf("day24: bad velocity in %q", line)
		}
		stones = append(stones, stone{vec{p[0], p[1], p[2]}, vec{v[0], v[1], v[2]}})
	}
	return stones, nil
}

// crossXY returns where the XY paths of a and b cross and the time each
// stone reaches that point. ok is false for parallel paths.
func crossXY(a, b stone) (x, y, ta, tb float64, ok bool) {
	ax, ay := float64(a.p[0]), float64(a.p[1])
	adx, ady := float64(a.v[0]), float64(a.v[1])
	bx, by := float64(b.p[0]), float64(b.p[1])
	bdx, bdy := float64(b.v[0]), float64(b.v[1])

	det := bdx*ady - adx*bdy
	if det == 0 {
		return 0, 0, 0, 0, false
	}
	ta = (bdx*(by-ay) - bdy*(bx-ax)) / det
	tb = (adx*(by-ay) - ady*(bx-ax)) / det
	return ax + adx*ta, ay + ady*ta, ta, tb, true
}

// countCrossings counts pairs whose future XY paths cross inside [lo, hi]².
func countCrossings(stones []stone, lo, hi float64) int {
	n := 0
	for i := range stones {
		for j := i + 1; j < len(stones); j++ {
			x, y, ta, tb, ok := crossXY(stones[i], stones[j])
			if !ok || ta <= 0 || tb <= 0 {
				continue
			}
			if x >= lo && x <= hi && y >= lo && y <= hi {
				n++
			}
		}
	}
	return n
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	stones, err := parse(input)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(countCrossings(stones, areaMin, areaMax)), nil
}

// Part2 finds the rock that hits every stone. For each stone i,
// (P - p_i) × (V - v_i) = 0. Subtracting the equations of two stones cancels
// the non-linear P × V term, leaving three linear equations in P and V:
//
//	P × (v_j - v_i) + (p_j - p_i) × V = p_j × v_j - p_i × v_i
//
// Two pairs that share a stone give a 6×6 system, solved exactly over the
// rationals.
func (Solver) Part2(ctx context.Context, input string) (string, error) {
	stones, err := parse(input)
	if err != nil {
		return "", err
	}
	if len(stones) < 3 {
		return "", fmt.Errorf("day24: need at least 3 hailstones, got %d", len(stones))
	}
	for k := 2; k < len(stones); k++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for j := 1; j < k; j++ {
			sol, ok := solveRock(stones[0], stones[j], stones[k])
			if !ok {
				continue
			}
			sum := new(big.Rat).Add(sol[0], sol[1])
			sum.Add(sum, sol[2])
			if !sum.IsInt() {
				continue
			}
			return sum.Num().String(), nil
		}
	}
	return "", fmt.Errorf("day24: no rock trajectory found")
}

func cross(a, b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func sub(a, b vec) vec { return vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// rows appends the three equations contributed by stones i and j. Unknown
// order is X, Y, Z, VX, VY, VZ.
func rows(m [][]*big.Rat, si, sj stone) [][]*big.Rat {
	dv := sub(sj.v, si.v)
	dp := sub(sj.p, si.p)
	ci := cross(si.p, si.v)
	cj := cross(sj.p, sj.v)
	coeffs := [3][7]int{
		{0, dv[2], -dv[1], 0, -dp[2], dp[1], 0},
		{-dv[2], 0, dv[0], dp[2], 0, -dp[0], 0},
		{dv[1], -dv[0], 0, -dp[1], dp[0], 0, 0},
	}
	for i := range coeffs {
		coeffs[i][6] = cj[i] - ci[i]
		row := make([]*big.Rat, 7)
		for k, c := range coeffs[i] {
			row[k] = new(big.Rat).SetInt64(int64(c))
		}
		m = append(m, row)
	}
	return m
}

func solveRock(a, b, c stone) ([]*big.Rat, bool) {
	m := rows(nil, a, b)
	m = rows(m, a, c)
	return gauss(m)
}

// gauss solves the augmented n×(n+1) system m in place. ok is false when
// the system is singular.
func gauss(m [][]*big.Rat) ([]*big.Rat, bool) {
	n := len(m)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if m[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := 0; r < n; r++ {
			if r == col || m[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(m[r][col], m[col][col])
			for k := col; k <= n; k++ {
				t := new(big.Rat).Mul(f, m[col][k])
				m[r][k] = new(big.Rat).Sub(m[r][k], t)
			}
		}
	}
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat).Quo(m[i][n], m[i][i])
	}
	return out, true
}
