package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/acunit/internal/cli"
)

func TestRun_PassingSuite(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"run", "simple_asserts", "--color", "never"}, &stdout, &stderr)

	assert.Equal(t, cli.ExitSuccess, code)
	assert.True(t, strings.HasSuffix(stdout.String(), "\nSummary: PASSED: 2 tests(s)\n"), stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_FailingSuiteOnlyPrintsSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"run", "failing", "--color", "never"}, &stdout, &stderr)

	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stdout.String(), "Summary: FAILED: 3 failed out of 5 test(s)\n")
	assert.Empty(t, stderr.String())
}

func TestRun_CommandErrorIsPrinted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"run", "nope"}, &stdout, &stderr)

	assert.Equal(t, cli.ExitCommandError, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error: unknown suite \"nope\" (see 'acunit list')\n", stderr.String())
}
