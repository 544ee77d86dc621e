package report

import (
	"github.com/roach88/acunit/internal/acunit"
)

// Reporter is a line-oriented sink for a test run.
type Reporter interface {
	acunit.Reporter

	// TestFinished is called once per executed test, after it returned.
	TestFinished(name string, passed bool)

	// Summary is called once at the end of the run.
	Summary(s acunit.Summary)
}

// Discard drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Failure(acunit.Diagnostic) {}
func (discard) TestFinished(string, bool) {}
func (discard) Summary(acunit.Summary)    {}

// Tee returns a Reporter that forwards every event to each of rs in order.
func Tee(rs ...Reporter) Reporter {
	return tee(rs)
}

type tee []Reporter

func (t tee) Failure(d acunit.Diagnostic) {
	for _, r := range t {
		r.Failure(d)
	}
}

func (t tee) TestFinished(name string, passed bool) {
	for _, r := range t {
		r.TestFinished(name, passed)
	}
}

func (t tee) Summary(s acunit.Summary) {
	for _, r := range t {
		r.Summary(s)
	}
}

// StatusWord is the word printed for a test outcome.
func StatusWord(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}
