// Package report provides the sinks a test run writes to.
//
// Every sink implements Reporter, which receives three kinds of events in run
// order: assertion failures, per-test outcomes, and the final summary.
//
//   - Text writes the classic line format ("PASSED: name", "Summary: ...").
//   - JSON writes one JSON object per event for machine consumption.
//   - Tee fans events out to several sinks.
package report
