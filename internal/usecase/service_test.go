package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"svw.info/advent/internal/days"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/validator"
)

// echo answers part 1 with the input length and part 2 with the input
// itself; a few magic inputs trigger failure paths.
type echo struct{}

func (echo) Part1(_ context.Context, input string) (string, error) {
	return strings.Repeat("x", len(input)), nil
}

func (echo) Part2(ctx context.Context, input string) (string, error) {
	switch strings.TrimSpace(input) {
	case "panic":
		panic("boom")
	case "bad":
		return "", errors.New("echo: bad input")
	case "wait":
		<-ctx.Done()
		return "", ctx.Err()
	}
	return input, nil
}

type memInputs map[int]string

func (m memInputs) Load(_ context.Context, day int) (string, error) {
	s, ok := m[day]
	if !ok {
		return "", domain.ErrInputNotFound
	}
	return s, nil
}

func (m memInputs) List(context.Context) ([]int, error) {
	var out []int
	for d := range m {
		out = append(out, d)
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	reg := days.NewRegistry()
	reg.Register(3, "Echo", "abc\n", echo{})
	reg.Register(4, "Other", "", echo{})
	return NewService(reg, memInputs{3: "stored\n"}, validator.New(32), zap.New(core)), logs
}

func TestDays(t *testing.T) {
	u, _ := newTestService(t)
	got, err := u.Days(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.DayInfo{
		{Number: 3, Title: "Echo", HasInput: true},
		{Number: 4, Title: "Other"},
	}, got)

	d, err := u.Day(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Other", d.Title)
	_, err = u.Day(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestSolve(t *testing.T) {
	u, logs := newTestService(t)
	res, st, err := u.Solve(context.Background(), 3, domain.Part2, "hi\r\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("hi\n"), res.Answer)
	assert.Equal(t, 3, res.Day)
	assert.Equal(t, domain.Part2, res.Part)
	assert.Equal(t, 3, st.InputBytes)

	entries := logs.FilterMessage("solved").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["day"])
	assert.Equal(t, "part2", entries[0].ContextMap()["part"])
}

func TestSolveErrors(t *testing.T) {
	u, logs := newTestService(t)
	ctx := context.Background()

	_, _, err := u.Solve(ctx, 9, domain.Part1, "x")
	assert.ErrorIs(t, err, domain.ErrUnknownDay)

	_, _, err = u.Solve(ctx, 3, domain.Part(7), "x")
	assert.ErrorIs(t, err, domain.ErrUnknownPart)

	_, _, err = u.Solve(ctx, 3, domain.Part1, "\n\n")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, _, err = u.Solve(ctx, 3, domain.Part1, strings.Repeat("y", 33))
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)

	_, _, err = u.Solve(ctx, 3, domain.Part2, "bad")
	assert.ErrorIs(t, err, domain.ErrMalformed)
	assert.ErrorContains(t, err, "echo: bad input")

	_, _, err = u.Solve(ctx, 3, domain.Part2, "panic")
	assert.ErrorIs(t, err, domain.ErrSolverPanic)
	assert.Equal(t, 1, logs.FilterMessage("solver panicked").Len())
}

func TestSolveCanceled(t *testing.T) {
	u, logs := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := u.Solve(ctx, 3, domain.Part2, "wait")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrMalformed)
	assert.Equal(t, 1, logs.FilterMessage("solve interrupted").Len())
}

func TestInputAndSolveStored(t *testing.T) {
	u, _ := newTestService(t)
	ctx := context.Background()

	in, err := u.Input(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "stored\n", in)

	_, err = u.Input(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
	_, err = u.Input(ctx, 12)
	assert.ErrorIs(t, err, domain.ErrUnknownDay)

	res, _, err := u.SolveStored(ctx, 3, domain.Part1)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("xxxxxxx"), res.Answer)

	ex, err := u.Example(3)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", ex)
}

func TestNotConfigured(t *testing.T) {
	var u Service
	ctx := context.Background()
	_, err := u.Days(ctx)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, _, err = u.Solve(ctx, 1, domain.Part1, "x")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = u.Input(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}
