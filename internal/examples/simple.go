package examples

import (
	"strings"

	"github.com/roach88/acunit/internal/acunit"
	"github.com/roach88/acunit/internal/harness"
)

// Simple returns the simple_asserts suite.
func Simple() *harness.Suite {
	return harness.NewSuite("simple_asserts", "integer and string comparisons").
		Add("test_integers_are_equal", testIntegersAreEqual).
		Add("test_strings_are_not_equal", testStringsAreNotEqual)
}

func testIntegersAreEqual(rs *acunit.RunState) {
	x := 3
	y := 3
	if !rs.Assert(x == y) {
		return
	}
}

func testStringsAreNotEqual(rs *acunit.RunState) {
	s := "abc"
	t := "def"
	if !rs.Assert(strings.Compare(s, t) != 0) {
		return
	}
}
