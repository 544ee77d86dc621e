package harness

import (
	"github.com/roach88/acunit/internal/acunit"
)

// Status is the outcome of one test in a Result.
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusSkipped Status = "SKIPPED"
)

// TestResult records one test of a run.
type TestResult struct {
	// Seq orders the tests of a run, skipped ones included.
	Seq    int64  `json:"seq"`
	Suite  string `json:"suite"`
	Name   string `json:"name"`
	Status Status `json:"status"`

	// Failures holds the diagnostics reported while the test ran. With early
	// return there is at most one.
	Failures []acunit.Diagnostic `json:"failures,omitempty"`
}

// Result is the outcome of a run.
type Result struct {
	RunID   string         `json:"run_id"`
	Suites  []string       `json:"suites"`
	Tests   []TestResult   `json:"tests"`
	Summary acunit.Summary `json:"summary"`
}

// NewResult creates an empty result for the run id.
func NewResult(runID string) *Result {
	return &Result{
		RunID:  runID,
		Suites: []string{},
		Tests:  []TestResult{},
	}
}

// Pass reports whether the run succeeded.
func (r *Result) Pass() bool {
	return r.Summary.OK()
}

// Failed returns the tests that failed, in run order.
func (r *Result) Failed() []TestResult {
	var failed []TestResult
	for _, t := range r.Tests {
		if t.Status == StatusFailed {
			failed = append(failed, t)
		}
	}
	return failed
}

// Count returns the number of tests with status s.
func (r *Result) Count(s Status) int {
	n := 0
	for _, t := range r.Tests {
		if t.Status == s {
			n++
		}
	}
	return n
}
