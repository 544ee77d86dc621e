package harness

import (
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/roach88/acunit/internal/acunit"
	"github.com/roach88/acunit/internal/report"
)

// Phase is the state of a Runner.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseReporting
	PhaseSummarizing
	PhaseDone
)

var phaseNames = [...]string{"idle", "running", "reporting", "summarizing", "done"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Runner executes suites and reports to a report.Reporter.
//
// A Runner may be reused for several runs, one at a time. Each run gets a
// fresh acunit.RunState.
type Runner struct {
	reporter  report.Reporter
	logger    *slog.Logger
	filter    string
	ids       IDGenerator
	stateOpts []acunit.Option

	phase   Phase
	current string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for run lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithFilter restricts runs to tests whose names match pattern (path.Match
// syntax). An empty pattern selects every test.
func WithFilter(pattern string) Option {
	return func(r *Runner) {
		r.filter = pattern
	}
}

// WithIDGenerator sets the source of run IDs.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Runner) {
		r.ids = g
	}
}

// WithStateOptions passes options to every acunit.RunState the Runner creates.
func WithStateOptions(opts ...acunit.Option) Option {
	return func(r *Runner) {
		r.stateOpts = append(r.stateOpts, opts...)
	}
}

// NewRunner creates a Runner reporting to rep. A nil rep discards all output.
func NewRunner(rep report.Reporter, opts ...Option) *Runner {
	if rep == nil {
		rep = report.Discard
	}
	r := &Runner{
		reporter: rep,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ids:      UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phase returns the current phase.
func (r *Runner) Phase() Phase {
	return r.phase
}

// Current returns the name of the test being run or reported, if any.
func (r *Runner) Current() string {
	return r.current
}

// Run executes every test of suites in order and returns the result.
//
// Assertion failures never produce an error; they are reported and reflected
// in Result.Summary. An error means the run did not start: an invalid suite or
// filter. A panic in a test is not recovered and ends the run.
func (r *Runner) Run(suites ...*Suite) (*Result, error) {
	if err := r.validate(suites); err != nil {
		return nil, err
	}

	rec := &recorder{Reporter: r.reporter}
	rs := acunit.NewRunState(rec, r.stateOpts...)
	result := NewResult(r.ids.Generate())

	r.setPhase(PhaseIdle, "")
	r.logger.Info("run started", "run_id", result.RunID, "suites", len(suites))

	var seq int64
	for _, suite := range suites {
		result.Suites = append(result.Suites, suite.Name)

		for _, test := range suite.Tests {
			seq++

			if !r.selected(test.Name) {
				r.logger.Debug("test skipped", "suite", suite.Name, "test", test.Name)
				result.Tests = append(result.Tests, TestResult{
					Seq:    seq,
					Suite:  suite.Name,
					Name:   test.Name,
					Status: StatusSkipped,
				})
				continue
			}

			result.Tests = append(result.Tests, r.runTest(rs, rec, suite.Name, test, seq))
			r.setPhase(PhaseIdle, "")
		}
	}

	r.setPhase(PhaseSummarizing, "")
	result.Summary = rs.Summary()
	r.reporter.Summary(result.Summary)

	r.setPhase(PhaseDone, "")
	r.logger.Info("run finished",
		"run_id", result.RunID,
		"failed", result.Summary.Failed,
		"executed", result.Summary.Executed,
	)
	return result, nil
}

// runTest executes one test through BeginTest, the test body, EndTest and the
// PASSED/FAILED report.
func (r *Runner) runTest(rs *acunit.RunState, rec *recorder, suite string, test Test, seq int64) TestResult {
	r.setPhase(PhaseRunning, test.Name)
	rec.failures = nil

	rs.BeginTest()
	test.Func(rs)
	rs.EndTest()

	r.setPhase(PhaseReporting, test.Name)
	passed := !rs.HasFailed()
	r.reporter.TestFinished(test.Name, passed)

	status := StatusPassed
	if !passed {
		status = StatusFailed
	}
	r.logger.Info("test finished",
		"suite", suite,
		"test", test.Name,
		"status", status,
		"failures", len(rec.failures),
	)

	return TestResult{
		Seq:      seq,
		Suite:    suite,
		Name:     test.Name,
		Status:   status,
		Failures: rec.failures,
	}
}

func (r *Runner) validate(suites []*Suite) error {
	if r.filter != "" {
		if _, err := path.Match(r.filter, ""); err != nil {
			return fmt.Errorf("invalid filter pattern %q: %w", r.filter, err)
		}
	}

	names := make(map[string]bool, len(suites))
	for i, s := range suites {
		if s == nil {
			return fmt.Errorf("suites[%d] is nil", i)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid suite: %w", err)
		}
		if names[s.Name] {
			return fmt.Errorf("suite %s given more than once", s.Name)
		}
		names[s.Name] = true
	}
	return nil
}

// selected reports whether the filter admits name. The pattern was checked in
// validate, so Match cannot fail here.
func (r *Runner) selected(name string) bool {
	if r.filter == "" {
		return true
	}
	ok, _ := path.Match(r.filter, name)
	return ok
}

func (r *Runner) setPhase(p Phase, test string) {
	if r.phase != p || r.current != test {
		r.logger.Debug("phase", "from", r.phase, "to", p, "test", test)
	}
	r.phase = p
	r.current = test
}

// recorder keeps the diagnostics of the current test for the Result while
// passing them on to the reporter.
type recorder struct {
	report.Reporter
	failures []acunit.Diagnostic
}

func (r *recorder) Failure(d acunit.Diagnostic) {
	r.failures = append(r.failures, d)
	r.Reporter.Failure(d)
}
