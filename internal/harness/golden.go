package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/acunit/internal/report"
	"github.com/roach88/acunit/internal/testutil"
)

// RunWithGolden runs suites with a plain text reporter and compares the
// transcript against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Diagnostics carry file paths relative to the test's working directory, so
// the fixture is only valid for the package that owns it.
func RunWithGolden(t *testing.T, name string, suites ...*Suite) *Result {
	t.Helper()

	var buf bytes.Buffer
	runner := NewRunner(
		report.NewText(&buf, report.ColorNever),
		WithIDGenerator(testutil.NewFixedIDGenerator("")),
	)

	result, err := runner.Run(suites...)
	if err != nil {
		t.Fatalf("run %s: %v", name, err)
	}

	AssertGolden(t, name, buf.Bytes())
	return result
}

// AssertGolden compares a transcript that was already produced against the
// golden file for name.
func AssertGolden(t *testing.T, name string, transcript []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, transcript)
}
