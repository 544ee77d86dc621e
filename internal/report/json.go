package report

import (
	"encoding/json"
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/acunit/internal/acunit"
)

// Event names written by JSON.
const (
	EventFailure = "failure"
	EventTest    = "test"
	EventSummary = "summary"
)

// FailureEvent is the JSON form of a failed assertion.
type FailureEvent struct {
	Event string `json:"event"`
	acunit.Diagnostic
}

// TestEvent is the JSON form of a finished test.
type TestEvent struct {
	Event  string `json:"event"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// SummaryEvent is the JSON form of the run summary.
type SummaryEvent struct {
	Event  string `json:"event"`
	Status string `json:"status"`
	acunit.Summary
}

// JSON writes one JSON object per line. Text fields are NFC normalized so
// that equal names and messages compare equal downstream.
type JSON struct {
	enc *json.Encoder
	err error
}

// NewJSON creates a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSON{enc: enc}
}

// Err returns the first write error, if any.
func (j *JSON) Err() error {
	return j.err
}

func (j *JSON) encode(v any) {
	if j.err != nil {
		return
	}
	j.err = j.enc.Encode(v)
}

// Failure writes a failure event.
func (j *JSON) Failure(d acunit.Diagnostic) {
	d.File = norm.NFC.String(d.File)
	d.Condition = norm.NFC.String(d.Condition)
	d.Message = norm.NFC.String(d.Message)
	j.encode(FailureEvent{Event: EventFailure, Diagnostic: d})
}

// TestFinished writes a test event.
func (j *JSON) TestFinished(name string, passed bool) {
	j.encode(TestEvent{
		Event:  EventTest,
		Name:   norm.NFC.String(name),
		Status: StatusWord(passed),
	})
}

// Summary writes the summary event.
func (j *JSON) Summary(s acunit.Summary) {
	j.encode(SummaryEvent{
		Event:   EventSummary,
		Status:  StatusWord(s.OK()),
		Summary: s,
	})
}
