package harness

import (
	"fmt"

	"github.com/roach88/acunit/internal/acunit"
)

// TestFunc is a test procedure. It returns early when an assertion fails.
type TestFunc func(rs *acunit.RunState)

// Test is a named test procedure.
type Test struct {
	Name string
	Func TestFunc
}

// Suite is an ordered list of tests.
type Suite struct {
	// Name identifies the suite on the command line and in run history.
	Name string

	// Description is shown by "acunit list".
	Description string

	// Tests run in this order.
	Tests []Test
}

// NewSuite creates an empty suite.
func NewSuite(name, description string) *Suite {
	return &Suite{Name: name, Description: description}
}

// Add appends a test and returns the suite for chaining.
func (s *Suite) Add(name string, fn TestFunc) *Suite {
	s.Tests = append(s.Tests, Test{Name: name, Func: fn})
	return s
}

// Validate checks that the suite is named and that every test has a unique
// name and a function.
func (s *Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite name is required")
	}

	seen := make(map[string]bool, len(s.Tests))
	for i, test := range s.Tests {
		if test.Name == "" {
			return fmt.Errorf("suite %s: tests[%d]: name is required", s.Name, i)
		}
		if test.Func == nil {
			return fmt.Errorf("suite %s: test %s: function is nil", s.Name, test.Name)
		}
		if seen[test.Name] {
			return fmt.Errorf("suite %s: duplicate test name %q", s.Name, test.Name)
		}
		seen[test.Name] = true
	}
	return nil
}
