package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/acunit/internal/acunit"
)

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var events []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var ev map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		events = append(events, ev)
	}
	require.NoError(t, sc.Err())
	return events
}

func TestJSON_Events(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewJSON(buf)

	r.Failure(acunit.Diagnostic{
		Location:  acunit.Location{File: "a.go", Line: 3},
		Condition: "x < y",
		Message:   "x too big",
	})
	r.TestFinished("test_x", false)
	r.Summary(acunit.Summary{Failed: 1, Executed: 1})
	require.NoError(t, r.Err())

	events := decodeLines(t, buf.Bytes())
	require.Len(t, events, 3)

	assert.Equal(t, map[string]any{
		"event":     "failure",
		"file":      "a.go",
		"line":      float64(3),
		"condition": "x < y",
		"message":   "x too big",
	}, events[0])
	assert.Equal(t, map[string]any{"event": "test", "name": "test_x", "status": "FAILED"}, events[1])
	assert.Equal(t, map[string]any{
		"event":    "summary",
		"status":   "FAILED",
		"failed":   float64(1),
		"executed": float64(1),
	}, events[2])
}

func TestJSON_NoHTMLEscaping(t *testing.T) {
	buf := &bytes.Buffer{}
	NewJSON(buf).Failure(acunit.Diagnostic{Condition: "a < b && c > d"})
	assert.Contains(t, buf.String(), `"condition":"a < b && c > d"`)
}

func TestJSON_NormalizesText(t *testing.T) {
	buf := &bytes.Buffer{}
	// "e" followed by a combining acute accent
	NewJSON(buf).TestFinished("cafe\u0301", true)

	events := decodeLines(t, buf.Bytes())
	require.Len(t, events, 1)
	assert.Equal(t, "caf\u00e9", events[0]["name"])
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestJSON_StopsAfterFirstError(t *testing.T) {
	w := &failingWriter{}
	r := NewJSON(w)

	r.TestFinished("a", true)
	r.TestFinished("b", true)

	require.Error(t, r.Err())
	assert.Equal(t, 1, w.n)
}
