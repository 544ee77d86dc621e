// Package acunit is a minimal assertion engine for hand-rolled test programs.
//
// A run is driven by a single *RunState. The driver calls BeginTest before each
// test procedure and EndTest after it returns; the procedure performs
// assertions against the same RunState. A failing assertion reports a
// diagnostic, records the failure, and returns false so the caller can return
// early:
//
//	func testIntegersAreEqual(rs *acunit.RunState) {
//	    x, y := 3, 3
//	    if !rs.Assert(x == y) {
//	        return
//	    }
//	}
//
// # Delegated Assertions
//
// Assertions factored into helpers only abort the helper. The caller wraps the
// helper in Guard, which re-checks the failure flag and tells the caller to
// return as well:
//
//	func checkSomeCondition(rs *acunit.RunState) {
//	    if !rs.Assert(a == b) {
//	        return
//	    }
//	}
//
//	func testNoFatalFailure(rs *acunit.RunState) {
//	    if !rs.Guard(func() { checkSomeCondition(rs) }) {
//	        return
//	    }
//	}
//
// # Diagnostics
//
// Failures are reported in the compiler-style format understood by most
// editors:
//
//	simple_test.go:12: Assertion failed: [x == y] is false: optional message
//
// The condition text is recovered from the caller's source file. When the
// source is not available (binaries built with -trimpath and moved away from
// their sources) the condition is reported as "?".
//
// # Concurrency
//
// A RunState is not safe for concurrent use. Separate RunState values are
// independent and may be used from different goroutines.
package acunit
