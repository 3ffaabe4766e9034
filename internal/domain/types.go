package domain

import (
	"errors"
	"time"
)

// FirstDay and LastDay bound the calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

var (
	ErrUnknownDay    = errors.New("unknown day")
	ErrUnknownPart   = errors.New("unknown part")
	ErrEmptyInput    = errors.New("empty input")
	ErrInputTooLarge = errors.New("input too large")
	ErrInputNotFound = errors.New("input not found")
	ErrMalformed     = errors.New("malformed input")
	ErrSolverPanic   = errors.New("solver panicked")
	ErrNotConfigured = errors.New("dependency not configured")
)

// Answer is the rendered scalar answer of one part.
type Answer string

// DayInfo is a lightweight listing entry.
type DayInfo struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	HasInput bool   `json:"hasInput,omitempty"`
}

// Result describes one solved part.
type Result struct {
	Day      int           `json:"day"`
	Part     Part          `json:"part"`
	Answer   Answer        `json:"answer"`
	Duration time.Duration `json:"duration"`
}

// ValidDay reports whether n is inside the calendar.
func ValidDay(n int) bool { return n >= FirstDay && n <= LastDay }
