package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

type Service struct {
	Catalog   ports.Catalog
	Inputs    ports.InputStore
	Validator ports.Validator
	Logger    *zap.Logger
}

func NewService(c ports.Catalog, in ports.InputStore, v ports.Validator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Catalog: c, Inputs: in, Validator: v, Logger: log}
}

func (u *Service) log() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}

// Days lists the registered days, marking those with a stored input. A
// failing input listing is logged and leaves every day unmarked.
func (u *Service) Days(ctx context.Context) ([]domain.DayInfo, error) {
	if u.Catalog == nil {
		return nil, domain.ErrNotConfigured
	}
	days := u.Catalog.Days()
	if u.Inputs == nil {
		return days, nil
	}
	have, err := u.Inputs.List(ctx)
	if err != nil {
		u.log().Warn("list inputs", zap.Error(err))
		return days, nil
	}
	stored := make(map[int]bool, len(have))
	for _, n := range have {
		stored[n] = true
	}
	for i := range days {
		days[i].HasInput = stored[days[i].Number]
	}
	return days, nil
}

// Day returns the listing entry for one registered day.
func (u *Service) Day(ctx context.Context, day int) (domain.DayInfo, error) {
	days, err := u.Days(ctx)
	if err != nil {
		return domain.DayInfo{}, err
	}
	for _, d := range days {
		if d.Number == day {
			return d, nil
		}
	}
	return domain.DayInfo{}, fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
}

func (u *Service) Example(day int) (string, error) {
	if u.Catalog == nil {
		return "", domain.ErrNotConfigured
	}
	ex, ok := u.Catalog.Example(day)
	if !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
	}
	return ex, nil
}

// Input returns the stored puzzle input of a registered day.
func (u *Service) Input(ctx context.Context, day int) (string, error) {
	if u.Catalog == nil || u.Inputs == nil {
		return "", domain.ErrNotConfigured
	}
	if _, ok := u.Catalog.Lookup(day); !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
	}
	return u.Inputs.Load(ctx, day)
}

// Solve runs one part of a day over input. Solver failures wrap
// ErrMalformed, panics are reported as ErrSolverPanic and context errors
// are returned unchanged.
func (u *Service) Solve(ctx context.Context, day int, part domain.Part, input string) (domain.Result, ports.Stats, error) {
	if u.Catalog == nil {
		return domain.Result{}, ports.Stats{}, domain.ErrNotConfigured
	}
	s, ok := u.Catalog.Lookup(day)
	if !ok {
		return domain.Result{}, ports.Stats{}, fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
	}
	if part != domain.Part1 && part != domain.Part2 {
		return domain.Result{}, ports.Stats{}, fmt.Errorf("%w: %d", domain.ErrUnknownPart, int(part))
	}
	if u.Validator != nil {
		var err error
		if input, err = u.Validator.Normalize(ctx, input); err != nil {
			return domain.Result{}, ports.Stats{}, err
		}
	}

	log := u.log().With(zap.Int("day", day), zap.Stringer("part", part))
	st := ports.Stats{InputBytes: len(input)}
	start := time.Now()
	ans, err := run(ctx, log, s, part, input)
	st.Duration = time.Since(start)

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSolverPanic):
			// logged with its stack by run
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			log.Warn("solve interrupted", zap.Error(err), zap.Duration("dur", st.Duration))
		default:
			log.Debug("solve failed", zap.Error(err))
			err = fmt.Errorf("%w: %w", domain.ErrMalformed, err)
		}
		return domain.Result{}, st, err
	}
	log.Debug("solved",
		zap.Duration("dur", st.Duration),
		zap.String("input", humanize.Bytes(uint64(st.InputBytes))),
	)
	return domain.Result{Day: day, Part: part, Answer: domain.Answer(ans), Duration: st.Duration}, st, nil
}

// SolveStored solves one part over the day's stored input.
func (u *Service) SolveStored(ctx context.Context, day int, part domain.Part) (domain.Result, ports.Stats, error) {
	input, err := u.Input(ctx, day)
	if err != nil {
		return domain.Result{}, ports.Stats{}, err
	}
	return u.Solve(ctx, day, part, input)
}

func run(ctx context.Context, log *zap.Logger, s ports.Solver, part domain.Part, input string) (ans string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("solver panicked", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("%w: %v", domain.ErrSolverPanic, r)
		}
	}()
	if part == domain.Part1 {
		return s.Part1(ctx, input)
	}
	return s.Part2(ctx, input)
}
