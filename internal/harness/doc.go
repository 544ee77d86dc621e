// Package harness drives test runs.
//
// A Runner executes the tests of one or more Suites, in declared order, against
// a single acunit.RunState, and reports each outcome and the final summary to a
// report.Reporter.
//
// # Run State Machine
//
// A run moves through these phases:
//
//	Idle -> Running(test) -> Reporting(test) -> Idle -> ... -> Summarizing -> Done
//
// For every test the Runner calls BeginTest, invokes the test function,
// calls EndTest, and then reports PASSED or FAILED from HasFailed. A test
// that fails an assertion returns early; the run always continues with the
// next test.
//
// # Filtering
//
// WithFilter restricts a run to tests whose names match a path.Match glob.
// Other tests are not executed and not counted; they are recorded in the
// Result as skipped.
//
// # Deterministic Testing
//
// Tests in a Result are numbered in run order, skipped ones included, and
// the run ID comes from an IDGenerator. With testutil.FixedIDGenerator two
// runs of the same suites produce identical Results, which RunWithGolden
// compares against goldie fixtures.
//
// # Usage
//
//	suite := harness.NewSuite("simple", "integer and string checks").
//	    Add("test_integers_are_equal", func(rs *acunit.RunState) {
//	        if !rs.Assert(3 == 3) {
//	            return
//	        }
//	    })
//
//	runner := harness.NewRunner(report.NewText(os.Stdout, report.ColorAuto))
//	result, err := runner.Run(suite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(result.Summary.ExitCode())
package harness
