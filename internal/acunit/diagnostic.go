package acunit

import (
	"fmt"
	"io"
	"strings"
)

// Location is the source position of an assertion.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Diagnostic describes one failed assertion.
// An empty Message means the assertion carried no message.
type Diagnostic struct {
	Location
	Condition string `json:"condition"`
	Message   string `json:"message,omitempty"`
}

// String renders the diagnostic line without a trailing newline.
func (d Diagnostic) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s: Assertion failed: [%s] is false", d.Location, d.Condition)
	if d.Message != "" {
		fmt.Fprintf(&buf, ": %s", d.Message)
	}
	return buf.String()
}

// Reporter receives the diagnostics of failed assertions.
type Reporter interface {
	Failure(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Failure calls f(d).
func (f ReporterFunc) Failure(d Diagnostic) {
	f(d)
}

// LineReporter writes one line per diagnostic.
type LineReporter struct {
	w io.Writer
}

// NewLineReporter creates a LineReporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{w: w}
}

// Failure writes the diagnostic line.
func (r *LineReporter) Failure(d Diagnostic) {
	fmt.Fprintln(r.w, d.String())
}
