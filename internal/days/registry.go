// Package days is the static day → solver dispatch table.
package days

import (
	"fmt"
	"slices"

	"svw.info/advent/internal/days/day01"
	"svw.info/advent/internal/days/day02"
	"svw.info/advent/internal/days/day03"
	"svw.info/advent/internal/days/day04"
	"svw.info/advent/internal/days/day05"
	"svw.info/advent/internal/days/day06"
	"svw.info/advent/internal/days/day07"
	"svw.info/advent/internal/days/day08"
	"svw.info/advent/internal/days/day09"
	"svw.info/advent/internal/days/day10"
	"svw.info/advent/internal/days/day11"
	"svw.info/advent/internal/days/day15"
	"svw.info/advent/internal/days/day16"
	"svw.info/advent/internal/days/day19"
	"svw.info/advent/internal/days/day24"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

type entry struct {
	title   string
	example string
	solver  ports.Solver
}

// Registry maps day numbers to solvers. It is filled once at startup and
// only read afterwards.
type Registry struct {
	entries map[int]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[int]entry)}
}

// Register adds a day. Registering an out-of-range or duplicate day panics.
func (r *Registry) Register(day int, title, example string, s ports.Solver) {
	if !domain.ValidDay(day) {
		panic(fmt.Sprintf("day %d outside %d..%d", day, domain.FirstDay, domain.LastDay))
	}
	if _, ok := r.entries[day]; ok {
		panic(fmt.Sprintf("duplicate solver registered for day %d", day))
	}
	r.entries[day] = entry{title: title, example: example, solver: s}
}

func (r *Registry) Lookup(day int) (ports.Solver, bool) {
	e, ok := r.entries[day]
	return e.solver, ok
}

// Example returns the sample input published with the day's puzzle.
func (r *Registry) Example(day int) (string, bool) {
	e, ok := r.entries[day]
	return e.example, ok
}

// Days lists registered days in calendar order.
func (r *Registry) Days() []domain.DayInfo {
	out := make([]domain.DayInfo, 0, len(r.entries))
	for n, e := range r.entries {
		out = append(out, domain.DayInfo{Number: n, Title: e.title})
	}
	slices.SortFunc(out, func(a, b domain.DayInfo) int { return a.Number - b.Number })
	return out
}

// Default returns a registry holding every implemented day.
func Default() *Registry {
	r := NewRegistry()
	r.Register(1, day01.Title, day01.Example, day01.Solver{})
	r.Register(2, day02.Title, day02.Example, day02.Solver{})
	r.Register(3, day03.Title, day03.Example, day03.Solver{})
	r.Register(4, day04.Title, day04.Example, day04.Solver{})
	r.Register(5, day05.Title, day05.Example, day05.Solver{})
	r.Register(6, day06.Title, day06.Example, day06.Solver{})
	r.Register(7, day07.Title, day07.Example, day07.Solver{})
	r.Register(8, day08.Title, day08.Example, day08.Solver{})
	r.Register(9, day09.Title, day09.Example, day09.Solver{})
	r.Register(10, day10.Title, day10.Example, day10.Solver{})
	r.Register(11, day11.Title, day11.Example, day11.Solver{})
	r.Register(15, day15.Title, day15.Example, day15.Solver{})
	r.Register(16, day16.Title, day16.Example, day16.Solver{})
	r.Register(19, day19.Title, day19.Example, day19.Solver{})
	r.Register(24, day24.Title, day24.Example, day24.Solver{})
	return r
}
