package examples

import (
	"github.com/roach88/acunit/internal/acunit"
	"github.com/roach88/acunit/internal/harness"
)

// Advanced returns the advanced_asserts suite.
func Advanced() *harness.Suite {
	return harness.NewSuite("advanced_asserts", "assertion messages and guarded helpers").
		Add("test_assert_with_message", testAssertWithMessage).
		Add("test_assert_no_fatal_failure", testAssertNoFatalFailure)
}

// WithMessage returns the assert_with_message suite.
func WithMessage() *harness.Suite {
	return harness.NewSuite("assert_with_message", "a single assertion with a message").
		Add("test_assert_with_message", testAssertWithMessage)
}

func testAssertWithMessage(rs *acunit.RunState) {
	a := 1
	b := 1
	if !rs.AssertMsg(a == b, "a and b are different") {
		return
	}
}

// checkSomeCondition asserts from a helper; callers must go through Guard.
func checkSomeCondition(rs *acunit.RunState) {
	a := 1
	b := 1
	c := 2
	if !rs.Assert(a == b) {
		return
	}
	if !rs.Assert(a != c) {
		return
	}
}

func testAssertNoFatalFailure(rs *acunit.RunState) {
	if !rs.Guard(func() { checkSomeCondition(rs) }) {
		return
	}
}
