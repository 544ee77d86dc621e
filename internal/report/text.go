package report

import (
	"fmt"
	"io"

	"github.com/roach88/acunit/internal/acunit"
)

// Text writes the human-readable report:
//
//	file.go:12: Assertion failed: [x == y] is false
//	FAILED: test_name
//	Summary: FAILED: 1 failed out of 2 test(s)
type Text struct {
	w    io.Writer
	pass color
	fail color
}

// NewText creates a Text reporter writing to w.
func NewText(w io.Writer, mode ColorMode) *Text {
	t := &Text{w: w, pass: noColor{}, fail: noColor{}}
	if mode.enabled(w) {
		t.pass = green
		t.fail = red
	}
	return t
}

// Failure writes the diagnostic line.
func (t *Text) Failure(d acunit.Diagnostic) {
	fmt.Fprintln(t.w, d.String())
}

// TestFinished writes "PASSED: <name>" or "FAILED: <name>".
func (t *Text) TestFinished(name string, passed bool) {
	c := t.pass
	if !passed {
		c = t.fail
	}
	fmt.Fprintf(t.w, "%s: %s\n", c.S(StatusWord(passed)), name)
}

// Summary writes the summary line.
func (t *Text) Summary(s acunit.Summary) {
	fmt.Fprintln(t.w, s.String())
}
