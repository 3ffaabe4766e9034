package day03

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "4361", got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "467835", got)
}

func TestParseWidths(t *testing.T) {
	sc := parse("467..0.\n...*...")
	require.Len(t, sc.numbers, 2)
	assert.Equal(t, number{row: 0, col: 0, width: 3, value: 467}, sc.numbers[0])
	assert.Equal(t, number{row: 0, col: 5, width: 1, value: 0}, sc.numbers[1])
	require.Len(t, sc.symbols, 1)
	assert.True(t, sc.symbols[0].adjacent(sc.numbers[0]))
	assert.False(t, sc.symbols[0].adjacent(sc.numbers[1]))
}

func TestNumberAtLineEnd(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), "....12\n.....#")
	require.NoError(t, err)
	assert.Equal(t, "12", got)
}
