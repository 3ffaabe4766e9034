package day05

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "35", got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "46", got)
}

func TestApplyRangesSplits(t *testing.T) {
	l := layer{{src: interval{10, 20}, delta: 100}}
	got := l.applyRanges([]interval{{5, 25}})
	slices.SortFunc(got, func(a, b interval) int { return a.lo - b.lo })
	assert.Equal(t, []interval{{5, 10}, {20, 25}, {110, 120}}, got)
}

func TestApplyRangesConservesSize(t *testing.T) {
	a, err := parse(Example)
	require.NoError(t, err)
	in := []interval{{79, 93}, {55, 68}}
	size := func(rs []interval) int {
		n := 0
		for _, r := range rs {
			n += r.hi - r.lo
		}
		return n
	}
	want := size(in)
	for _, l := range a.layers {
		in = l.applyRanges(in)
		assert.Equal(t, want, size(in))
	}
}

func TestRuleEndIsExclusive(t *testing.T) {
	l := layer{{src: interval{98, 100}, delta: -48}}
	assert.Equal(t, 50, l.apply(98))
	assert.Equal(t, 51, l.apply(99))
	assert.Equal(t, 100, l.apply(100))
}

func TestMalformed(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), "79 14\n\nx map:\n1 2 3")
	assert.Error(t, err)
	_, err = Solver{}.Part1(context.Background(), "seeds: 1\n\nx map:\n1 2")
	assert.Error(t, err)
	_, err = Solver{}.Part2(context.Background(), "seeds: 1 2 3\n\nx map:\n1 2 3")
	assert.Error(t, err)
}
