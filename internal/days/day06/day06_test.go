package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "288", got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "71503", got)
}

func TestWaysToWinMatchesBruteForce(t *testing.T) {
	brute := func(t, d int) int {
		n := 0
		for h := 0; h <= t; h++ {
			if h*(t-h) > d {
				n++
			}
		}
		return n
	}
	for tm := 0; tm <= 60; tm++ {
		for d := 0; d <= tm*tm/4+2; d++ {
			require.Equal(t, brute(tm, d), waysToWin(tm, d), "t=%d d=%d", tm, d)
		}
	}
}

func TestMismatchedColumns(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), "Time: 1 2\nDistance: 3")
	assert.Error(t, err)
	_, err = Solver{}.Part1(context.Background(), "Time: 1 2")
	assert.Error(t, err)
}

func TestNoRaces(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), "Time:\nDistance:\n")
	assert.ErrorContains(t, err, "no races")
	_, err = Solver{}.Part2(context.Background(), "Time:\nDistance:\n")
	assert.Error(t, err)
}
