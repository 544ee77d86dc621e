package harness

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/acunit/internal/acunit"
	"github.com/roach88/acunit/internal/report"
	"github.com/roach88/acunit/internal/testutil"
)

// newTestRunner returns a runner writing a plain transcript to the returned
// buffer, with a fixed run ID.
func newTestRunner(t *testing.T, opts ...Option) (*Runner, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	opts = append([]Option{WithIDGenerator(testutil.NewFixedIDGenerator("run-1"))}, opts...)
	return NewRunner(report.NewText(buf, report.ColorNever), opts...), buf
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRun_AllPassing(t *testing.T) {
	suite := NewSuite("passing", "").
		Add("test_one", func(rs *acunit.RunState) {
			if !rs.Assert(1 == 1) {
				return
			}
		}).
		Add("test_two", func(rs *acunit.RunState) {
			if !rs.AssertMsg(2 > 1, "ordering") {
				return
			}
		})

	runner, buf := newTestRunner(t)
	result, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, acunit.Summary{Failed: 0, Executed: 2}, result.Summary)
	assert.True(t, result.Pass())
	assert.Equal(t, 0, result.Summary.ExitCode())
	assert.Equal(t, []string{
		"PASSED: test_one",
		"PASSED: test_two",
		"Summary: PASSED: 2 tests(s)",
	}, lines(buf.String()))
}

func TestRun_OneFailingAssertion(t *testing.T) {
	suite := NewSuite("mixed", "").
		Add("test_a", func(rs *acunit.RunState) {
			if !rs.Assert(3 == 4) {
				return
			}
		}).
		Add("test_b", func(rs *acunit.RunState) {
			if !rs.Assert(4 == 4) {
				return
			}
		})

	runner, buf := newTestRunner(t)
	result, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, acunit.Summary{Failed: 1, Executed: 2}, result.Summary)
	assert.False(t, result.Pass())
	assert.Equal(t, 1, result.Summary.ExitCode())

	out := lines(buf.String())
	require.Len(t, out, 4)
	assert.Contains(t, out[0], "[3 == 4] is false")
	assert.True(t, strings.HasPrefix(out[0], "harness_test.go:"), out[0])
	assert.Equal(t, "FAILED: test_a", out[1])
	assert.Equal(t, "PASSED: test_b", out[2])
	assert.Equal(t, "Summary: FAILED: 1 failed out of 2 test(s)", out[3])
}

func TestRun_GuardedHelperFailure(t *testing.T) {
	var trace []string

	helper := func(rs *acunit.RunState) {
		if !rs.Assert(len(trace) == 99) {
			return
		}
		trace = append(trace, "helper after assert")
	}

	suite := NewSuite("guarded", "").
		Add("test_outer", func(rs *acunit.RunState) {
			trace = append(trace, "before guard")
			if !rs.Guard(func() { helper(rs) }) {
				return
			}
			trace = append(trace, "after guard")
		})

	runner, buf := newTestRunner(t)
	result, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, []string{"before guard"}, trace)
	assert.Equal(t, acunit.Summary{Failed: 1, Executed: 1}, result.Summary)
	assert.Equal(t, 1, strings.Count(buf.String(), "Assertion failed"))
	assert.Contains(t, buf.String(), "FAILED: test_outer\n")
}

func TestRun_MessageInDiagnostic(t *testing.T) {
	suite := NewSuite("msg", "").
		Add("test_msg", func(rs *acunit.RunState) {
			a, b := 1, 2
			if !rs.AssertMsg(a == b, "a and b are different") {
				return
			}
		})

	runner, buf := newTestRunner(t)
	_, err := runner.Run(suite)
	require.NoError(t, err)

	out := lines(buf.String())
	assert.True(t, strings.HasSuffix(out[0], ": a and b are different"), out[0])
}

func TestRun_FlagResetBetweenTests(t *testing.T) {
	var seen []bool

	suite := NewSuite("reset", "").
		Add("test_fails", func(rs *acunit.RunState) {
			rs.Assert(false)
		}).
		Add("test_observes", func(rs *acunit.RunState) {
			seen = append(seen, rs.HasFailed())
		})

	runner, buf := newTestRunner(t)
	result, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, []bool{false}, seen)
	assert.Contains(t, buf.String(), "PASSED: test_observes\n")
	assert.Equal(t, StatusFailed, result.Tests[0].Status)
	assert.Equal(t, StatusPassed, result.Tests[1].Status)
}

func TestRun_CountsFailuresNotTests(t *testing.T) {
	// Without early return every failing assertion counts.
	suite := NewSuite("counting", "").
		Add("test_no_early_return", func(rs *acunit.RunState) {
			rs.Assert(false)
			rs.Assert(false)
		})

	runner, _ := newTestRunner(t)
	result, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, acunit.Summary{Failed: 2, Executed: 1}, result.Summary)
	assert.Len(t, result.Tests[0].Failures, 2)
}

func TestRun_RecordsFailuresPerTest(t *testing.T) {
	suite := NewSuite("recorded", "").
		Add("test_a", func(rs *acunit.RunState) {
			if !rs.AssertMsg(false, "first") {
				return
			}
		}).
		Add("test_b", func(rs *acunit.RunState) {}).
		Add("test_c", func(rs *acunit.RunState) {
			if !rs.AssertMsg(false, "third") {
				return
			}
		})

	runner, _ := newTestRunner(t)
	result, err := runner.Run(suite)
	require.NoError(t, err)

	require.Len(t, result.Tests, 3)
	require.Len(t, result.Tests[0].Failures, 1)
	assert.Equal(t, "first", result.Tests[0].Failures[0].Message)
	assert.Equal(t, "false", result.Tests[0].Failures[0].Condition)
	assert.Empty(t, result.Tests[1].Failures)
	require.Len(t, result.Tests[2].Failures, 1)
	assert.Equal(t, "third", result.Tests[2].Failures[0].Message)

	failed := result.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "test_a", failed[0].Name)
	assert.Equal(t, "test_c", failed[1].Name)
}

func TestRun_MultipleSuitesShareOneSummary(t *testing.T) {
	a := NewSuite("a", "").Add("test_1", func(rs *acunit.RunState) {})
	b := NewSuite("b", "").
		Add("test_1", func(rs *acunit.RunState) { rs.Assert(false) }).
		Add("test_2", func(rs *acunit.RunState) {})

	runner, buf := newTestRunner(t)
	result, err := runner.Run(a, b)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, result.Suites)
	assert.Equal(t, acunit.Summary{Failed: 1, Executed: 3}, result.Summary)
	assert.Equal(t, 1, strings.Count(buf.String(), "Summary:"))

	require.Len(t, result.Tests, 3)
	for i, tr := range result.Tests {
		assert.Equal(t, int64(i+1), tr.Seq)
	}
	assert.Equal(t, "b", result.Tests[1].Suite)
}

func TestRun_Filter(t *testing.T) {
	var ran []string
	record := func(name string) TestFunc {
		return func(rs *acunit.RunState) { ran = append(ran, name) }
	}

	suite := NewSuite("filtered", "").
		Add("test_cart_add", record("test_cart_add")).
		Add("test_stock", record("test_stock")).
		Add("test_cart_remove", record("test_cart_remove"))

	runner, buf := newTestRunner(t, WithFilter("test_cart_*"))
	result, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, []string{"test_cart_add", "test_cart_remove"}, ran)
	assert.Equal(t, acunit.Summary{Executed: 2}, result.Summary)
	assert.NotContains(t, buf.String(), "test_stock")

	require.Len(t, result.Tests, 3)
	assert.Equal(t, StatusSkipped, result.Tests[1].Status)
	assert.Equal(t, int64(2), result.Tests[1].Seq)
	assert.Equal(t, 1, result.Count(StatusSkipped))
	assert.Equal(t, 2, result.Count(StatusPassed))
}

func TestRun_InvalidFilter(t *testing.T) {
	runner, buf := newTestRunner(t, WithFilter("test_[a"))
	_, err := runner.Run(NewSuite("s", "").Add("t", func(rs *acunit.RunState) {}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
	assert.Empty(t, buf.String())
}

func TestRun_InvalidSuites(t *testing.T) {
	noop := func(rs *acunit.RunState) {}

	tests := []struct {
		name   string
		suites []*Suite
		errMsg string
	}{
		{"nil suite", []*Suite{nil}, "suites[0] is nil"},
		{"unnamed suite", []*Suite{NewSuite("", "")}, "suite name is required"},
		{"unnamed test", []*Suite{NewSuite("s", "").Add("", noop)}, "tests[0]: name is required"},
		{"nil func", []*Suite{NewSuite("s", "").Add("t", nil)}, "function is nil"},
		{"duplicate test", []*Suite{NewSuite("s", "").Add("t", noop).Add("t", noop)}, `duplicate test name "t"`},
		{"duplicate suite", []*Suite{NewSuite("s", ""), NewSuite("s", "")}, "given more than once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, _ := newTestRunner(t)
			_, err := runner.Run(tt.suites...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRun_EmptyRun(t *testing.T) {
	runner, buf := newTestRunner(t)
	result, err := runner.Run()
	require.NoError(t, err)

	assert.Equal(t, acunit.Summary{}, result.Summary)
	assert.Equal(t, "Summary: PASSED: 0 tests(s)\n", buf.String())
	assert.Equal(t, PhaseDone, runner.Phase())
}

// phaseReporter records the runner phase at every report call.
type phaseReporter struct {
	runner *Runner
	events []string
}

func (p *phaseReporter) Failure(d acunit.Diagnostic) {
	p.events = append(p.events, "failure@"+p.runner.Phase().String())
}

func (p *phaseReporter) TestFinished(name string, passed bool) {
	p.events = append(p.events, "test:"+name+"@"+p.runner.Phase().String()+":"+p.runner.Current())
}

func (p *phaseReporter) Summary(s acunit.Summary) {
	p.events = append(p.events, "summary@"+p.runner.Phase().String())
}

func TestRun_PhaseTransitions(t *testing.T) {
	rep := &phaseReporter{}
	runner := NewRunner(rep)
	rep.runner = runner

	var during []string
	suite := NewSuite("phases", "").
		Add("test_a", func(rs *acunit.RunState) {
			during = append(during, runner.Phase().String()+":"+runner.Current())
			rs.Assert(false)
		}).
		Add("test_b", func(rs *acunit.RunState) {
			during = append(during, runner.Phase().String()+":"+runner.Current())
		})

	assert.Equal(t, PhaseIdle, runner.Phase())

	_, err := runner.Run(suite)
	require.NoError(t, err)

	assert.Equal(t, []string{"running:test_a", "running:test_b"}, during)
	assert.Equal(t, []string{
		"failure@running",
		"test:test_a@reporting:test_a",
		"test:test_b@reporting:test_b",
		"summary@summarizing",
	}, rep.events)
	assert.Equal(t, PhaseDone, runner.Phase())
	assert.Equal(t, "", runner.Current())
}

func TestRun_RunnerIsReusable(t *testing.T) {
	suite := NewSuite("again", "").Add("test_fail", func(rs *acunit.RunState) { rs.Assert(false) })

	runner, _ := newTestRunner(t)
	first, err := runner.Run(suite)
	require.NoError(t, err)
	second, err := runner.Run(suite)
	require.NoError(t, err)

	// Each run starts from a fresh RunState
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, acunit.Summary{Failed: 1, Executed: 1}, second.Summary)
}

func TestRun_PanicsPropagate(t *testing.T) {
	suite := NewSuite("panics", "").Add("test_panic", func(rs *acunit.RunState) {
		var m map[string]int
		m["boom"] = 1
	})

	runner, _ := newTestRunner(t)
	assert.Panics(t, func() {
		_, _ = runner.Run(suite)
	})
	assert.Equal(t, PhaseRunning, runner.Phase())
}

func TestRun_Logging(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	runner, _ := newTestRunner(t, WithLogger(logger), WithFilter("test_kept"))
	_, err := runner.Run(NewSuite("logged", "").
		Add("test_kept", func(rs *acunit.RunState) {}).
		Add("test_dropped", func(rs *acunit.RunState) {}))
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "test finished")
	assert.Contains(t, out, "status=PASSED")
	assert.Contains(t, out, "test skipped")
	assert.Contains(t, out, "test=test_dropped")
	assert.Contains(t, out, "run finished")
}

func TestRun_StateOptions(t *testing.T) {
	runner, buf := newTestRunner(t, WithStateOptions(acunit.WithPathRewriter(func(string) string { return "pinned.go" })))
	_, err := runner.Run(NewSuite("s", "").Add("t", func(rs *acunit.RunState) { rs.Assert(false) }))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), "pinned.go:"), buf.String())
}

func TestNewRunner_Defaults(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Run(NewSuite("s", "").Add("t", func(rs *acunit.RunState) {}))
	require.NoError(t, err)

	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err, "default run IDs are UUIDs")
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()

	assert.NotEqual(t, a, b)
	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}
