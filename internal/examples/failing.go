package examples

import (
	"github.com/roach88/acunit/internal/acunit"
	"github.com/roach88/acunit/internal/harness"
)

// Failing returns the failing suite. It always fails; it is not part of
// Defaults.
func Failing() *harness.Suite {
	return harness.NewSuite("failing", "demonstrates failure reporting").
		Add("test_passes_first", testPassesFirst).
		Add("test_integers_differ", testIntegersDiffer).
		Add("test_failure_with_message", testFailureWithMessage).
		Add("test_nested_helper_failure", testNestedHelperFailure).
		Add("test_passes_after_failures", testPassesAfterFailures)
}

func testPassesFirst(rs *acunit.RunState) {
	if !rs.Assert(len("abc") == 3) {
		return
	}
}

func testIntegersDiffer(rs *acunit.RunState) {
	if !rs.Assert(3 == 4) {
		return
	}
	panic("unreachable: assertion above failed")
}

func testFailureWithMessage(rs *acunit.RunState) {
	a := 1
	b := 2
	if !rs.AssertMsg(a == b, "a and b are different") {
		return
	}
	panic("unreachable: assertion above failed")
}

func checkInner(rs *acunit.RunState, limit int) {
	used := 10
	if !rs.Assertf(used <= limit, "used %d of %d", used, limit) {
		return
	}
	panic("unreachable: assertion above failed")
}

func checkOuter(rs *acunit.RunState) {
	if !rs.Guard(func() { checkInner(rs, 8) }) {
		return
	}
	panic("unreachable: guarded helper failed")
}

func testNestedHelperFailure(rs *acunit.RunState) {
	if !rs.Guard(func() { checkOuter(rs) }) {
		return
	}
	panic("unreachable: guarded helper failed")
}

func testPassesAfterFailures(rs *acunit.RunState) {
	if !rs.Guard(func() { checkSomeCondition(rs) }) {
		return
	}
}
