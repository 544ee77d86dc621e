package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/acunit/internal/acunit"
)

func TestTee_ForwardsInOrder(t *testing.T) {
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}
	r := Tee(NewText(a, ColorNever), NewText(b, ColorNever), Discard)

	r.Failure(acunit.Diagnostic{Location: acunit.Location{File: "f.go", Line: 1}, Condition: "c"})
	r.TestFinished("t", false)
	r.Summary(acunit.Summary{Failed: 1, Executed: 1})

	want := "f.go:1: Assertion failed: [c] is false\nFAILED: t\nSummary: FAILED: 1 failed out of 1 test(s)\n"
	assert.Equal(t, want, a.String())
	assert.Equal(t, want, b.String())
}

func TestStatusWord(t *testing.T) {
	assert.Equal(t, "PASSED", StatusWord(true))
	assert.Equal(t, "FAILED", StatusWord(false))
}
