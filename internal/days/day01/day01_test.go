package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	in := "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"
	got, err := Solver{}.Part1(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "142", got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, "281", got)
}

func TestDigits(t *testing.T) {
	cases := []struct {
		line        string
		spelled     bool
		first, last int
		ok          bool
	}{
		{"treb7uchet", false, 7, 7, true},
		{"eightwo", true, 8, 2, true},
		{"eightwo", false, 0, 0, false},
		{"zero1", true, 0, 1, true},
		{"", true, 0, 0, false},
	}
	for _, tc := range cases {
		first, last, ok := digits(tc.line, tc.spelled)
		assert.Equal(t, tc.ok, ok, tc.line)
		assert.Equal(t, tc.first, first, tc.line)
		assert.Equal(t, tc.last, last, tc.line)
	}
}

func TestNoDigitsCountsZero(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), "abc\r\n12\r\n")
	require.NoError(t, err)
	assert.Equal(t, "12", got)
}
