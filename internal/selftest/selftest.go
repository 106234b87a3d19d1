// Package selftest checks calculator.Add against fixed literal cases.
package selftest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pengelbrecht/addcheck/internal/calculator"
)

// ErrMismatch is returned when an adder produces a value other than the expected one.
var ErrMismatch = errors.New("self-test mismatch")

// Case is a single literal check: A + B must equal Want.
type Case struct {
	A    int64
	B    int64
	Want int64
}

// String formats the case as a call expression.
func (c Case) String() string {
	return fmt.Sprintf("add(%d, %d)", c.A, c.B)
}

// Cases returns the literal cases in execution order.
func Cases() []Case {
	return []Case{
		{A: 2, B: 3, Want: 5},
		{A: -1, B: 1, Want: 0},
	}
}

// MismatchError reports the first case whose result differed from Want.
type MismatchError struct {
	Case Case
	Got  int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s = %d, want %d", e.Case, e.Got, e.Case.Want)
}

// Unwrap lets errors.Is match ErrMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Result records the outcome of one executed case.
type Result struct {
	Case   Case
	Got    int64
	Passed bool
}

// Report lists the executed cases. Cases after a mismatch are not run and do not appear.
type Report struct {
	Results []Result
	Total   int
}

// Passed returns true when every case ran and matched.
func (r Report) Passed() bool {
	if len(r.Results) != r.Total {
		return false
	}
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// AdderFunc computes a sum. calculator.Add is the default.
type AdderFunc func(a, b int64) int64

// Runner executes cases in order and stops at the first mismatch.
type Runner struct {
	add    AdderFunc
	cases  []Case
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAdder replaces the function under test.
func WithAdder(fn AdderFunc) RunnerOption {
	return func(r *Runner) {
		r.add = fn
	}
}

// WithCases replaces the literal cases.
func WithCases(cases []Case) RunnerOption {
	return func(r *Runner) {
		r.cases = cases
	}
}

// WithLogger sets the logger for the runner.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a runner over Cases() and calculator.Add.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		add:    calculator.Add,
		cases:  Cases(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the cases. On a mismatch it returns the partial report and a
// *MismatchError. It also returns early if ctx is cancelled between cases.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{
		Results: make([]Result, 0, len(r.cases)),
		Total:   len(r.cases),
	}

	for _, c := range r.cases {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("self-test interrupted: %w", err)
		}

		got := r.add(c.A, c.B)
		passed := got == c.Want
		report.Results = append(report.Results, Result{Case: c, Got: got, Passed: passed})

		if !passed {
			r.logger.Error("self-test case failed",
				"case", c.String(),
				"got", got,
				"want", c.Want,
			)
			return report, &MismatchError{Case: c, Got: got}
		}

		r.logger.Debug("self-test case passed",
			"case", c.String(),
			"got", got,
		)
	}

	return report, nil
}
