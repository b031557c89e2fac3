// SPDX-License-Identifier: MIT

// Package bench builds decision-problem instances, times the solvers
// on them and optionally checks every answer against an independent
// algorithm. Results are plain structs, written as JSON lines by the
// npbench command.
package bench

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMismatch reports a contradiction between a solver and its oracle
	// that cannot be explained by greedy incompleteness.
	ErrMismatch = errors.New("bench: answer contradicts oracle")

	// ErrUnknownProblem is returned for a case naming no known problem.
	ErrUnknownProblem = errors.New("bench: unknown problem")
)

// Result is the outcome of one timed run.
type Result struct {
	RunID     string  `json:"run_id"`
	Suite     string  `json:"suite,omitempty"`
	Case      string  `json:"case"`
	Iteration int     `json:"iteration"`
	Problem   string  `json:"problem"`
	Algorithm string  `json:"algorithm"`
	N         int     `json:"n"`
	P         float64 `json:"p,omitempty"`
	Seed      int64   `json:"seed,omitempty"`
	U         int     `json:"u,omitempty"`
	V         int     `json:"v,omitempty"`
	K         int     `json:"k,omitempty"`
	Formula   string  `json:"formula,omitempty"`
	Edges     int     `json:"edges"`
	Answer    bool    `json:"answer"`

	// Oracle and Agree are set only when verification ran.
	Oracle *bool `json:"oracle,omitempty"`
	Agree  *bool `json:"agree,omitempty"`

	ElapsedNS int64  `json:"elapsed_ns"`
	Graph6    string `json:"graph6,omitempty"`
}

// Runner executes cases. The zero value is not usable; call NewRunner.
type Runner struct {
	logger *slog.Logger
	verify bool
	graph6 bool
	clock  func() time.Time
	newID  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithVerify enables oracle checks on every run.
func WithVerify(on bool) Option {
	return func(r *Runner) { r.verify = on }
}

// WithGraph6 attaches the graph6 encoding of each instance to its Result.
func WithGraph6(on bool) Option {
	return func(r *Runner) { r.graph6 = on }
}

// WithClock replaces time.Now, for deterministic seeds in tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock(nil)")
	}
	return func(r *Runner) { r.clock = now }
}

// NewRunner returns a Runner logging to logger. A nil logger discards.
func NewRunner(logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Runner{
		logger: logger,
		clock:  time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
