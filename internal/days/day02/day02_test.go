package day02

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "8", got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "2286", got)
}

func TestParseGame(t *testing.T) {
	g, err := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.NoError(t, err)
	assert.Equal(t, 3, g.id)
	assert.Equal(t, cubes{20, 13, 6}, g.max)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{
		"Game 1 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
	} {
		_, err := Solver{}.Part1(context.Background(), in)
		assert.Error(t, err, in)
	}
}
