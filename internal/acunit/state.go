package acunit

import (
	"fmt"
	"os"
	"path/filepath"
)

// RunState holds the counters of one test run and the pass/fail flag of the
// test that is currently executing.
type RunState struct {
	failed   bool
	executed uint
	failures uint

	reporter Reporter
	rewrite  func(string) string
}

// Option configures a RunState.
type Option func(*RunState)

// WithPathRewriter replaces the function used to turn the absolute source
// path of a failing assertion into the path printed in its diagnostic.
func WithPathRewriter(fn func(string) string) Option {
	return func(s *RunState) {
		s.rewrite = fn
	}
}

// NewRunState creates the state for a new run. Diagnostics go to r; a nil
// reporter writes them to standard output.
func NewRunState(r Reporter, opts ...Option) *RunState {
	if r == nil {
		r = NewLineReporter(os.Stdout)
	}
	s := &RunState{
		reporter: r,
		rewrite:  RelativePath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BeginTest clears the failure flag. Call it before every test procedure.
func (s *RunState) BeginTest() {
	s.failed = false
}

// RecordFailure marks the current test as failed and counts one assertion
// failure.
func (s *RunState) RecordFailure() {
	s.failed = true
	s.failures++
}

// EndTest counts one executed test, whether it passed or not.
func (s *RunState) EndTest() {
	s.executed++
}

// HasFailed reports whether the current test has failed.
func (s *RunState) HasFailed() bool {
	return s.failed
}

// Summary returns a snapshot of the run counters.
func (s *RunState) Summary() Summary {
	return Summary{
		Failed:   s.failures,
		Executed: s.executed,
	}
}

// Summary is the final tally of a run.
//
// Failed counts failing assertions, not failing tests. Because a test stops at
// its first failure the two are normally equal.
type Summary struct {
	Failed   uint `json:"failed"`
	Executed uint `json:"executed"`
}

// OK reports whether the run had no assertion failures.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// ExitCode is the process exit status for the run: 1 on failure, else 0.
func (s Summary) ExitCode() int {
	if s.OK() {
		return 0
	}
	return 1
}

// String renders the summary line.
func (s Summary) String() string {
	if !s.OK() {
		return fmt.Sprintf("Summary: FAILED: %d failed out of %d test(s)", s.Failed, s.Executed)
	}
	return fmt.Sprintf("Summary: PASSED: %d tests(s)", s.Executed)
}

// RelativePath returns file relative to the working directory, or file itself
// when no relative path exists.
func RelativePath(file string) string {
	wd, err := os.Getwd()
	if err != nil {
		return file
	}
	rel, err := filepath.Rel(wd, filepath.FromSlash(file))
	if err != nil {
		return file
	}
	return filepath.ToSlash(rel)
}
