package acunit

import (
	"fmt"
	"runtime"
)

// Outcome is the result of evaluating one assertion.
type Outcome int

const (
	Pass Outcome = iota
	Fail
)

// Failed reports whether the assertion failed.
func (o Outcome) Failed() bool {
	return o == Fail
}

func (o Outcome) String() string {
	if o == Fail {
		return "fail"
	}
	return "pass"
}

// Evaluate is the assertion primitive. A true condition has no effect. A false
// condition reports a Diagnostic built from loc, condition and message, and
// records the failure.
//
// The caller must return from the current test procedure when the outcome is
// Fail.
func (s *RunState) Evaluate(cond bool, loc Location, condition, message string) Outcome {
	if cond {
		return Pass
	}
	s.reporter.Failure(Diagnostic{
		Location:  loc,
		Condition: condition,
		Message:   message,
	})
	s.RecordFailure()
	return Fail
}

// Assert checks cond and reports whether it held. On failure the caller must
// return:
//
//	if !rs.Assert(x == y) {
//	    return
//	}
func (s *RunState) Assert(cond bool) bool {
	if cond {
		return true
	}
	return s.fail("Assert", "")
}

// AssertMsg is Assert with a message appended to the diagnostic.
func (s *RunState) AssertMsg(cond bool, msg string) bool {
	if cond {
		return true
	}
	return s.fail("AssertMsg", msg)
}

// Assertf is AssertMsg with a formatted message. The message is only
// formatted when the assertion fails.
func (s *RunState) Assertf(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	return s.fail("Assertf", fmt.Sprintf(format, args...))
}

// fail is only called by the exported assertion methods, so the asserting
// code is two frames up. method names the one that was called.
func (s *RunState) fail(method, msg string) bool {
	loc := Location{File: "?", Line: 0}
	condition := unknownCondition

	if _, file, line, ok := runtime.Caller(2); ok {
		loc = Location{File: s.rewrite(file), Line: line}
		condition = conditionText(file, line, method)
	}

	s.Evaluate(false, loc, condition, msg)
	return false
}

// Guard runs helper and reports whether the current test is still passing.
// Assertions inside helper have already reported their own diagnostics, so
// Guard reports nothing. A caller that gets false must return:
//
//	if !rs.Guard(func() { checkSomeCondition(rs) }) {
//	    return
//	}
func (s *RunState) Guard(helper func()) bool {
	helper()
	return !s.failed
}
