package ports

import (
	"context"
	"time"

	"svw.info/advent/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Duration   time.Duration
	InputBytes int
}

// Solver computes both answers of one day from its raw puzzle input.
type Solver interface {
	Part1(ctx context.Context, input string) (string, error)
	Part2(ctx context.Context, input string) (string, error)
}

// Catalog is the static day → solver dispatch table.
type Catalog interface {
	Lookup(day int) (Solver, bool)
	Example(day int) (string, bool)
	Days() []domain.DayInfo
}

// InputStore reads puzzle inputs keyed by day number.
type InputStore interface {
	Load(ctx context.Context, day int) (string, error)
	List(ctx context.Context) ([]int, error)
}

// Validator normalizes raw input before it reaches a solver.
type Validator interface {
	Normalize(ctx context.Context, input string) (string, error)
}
