package examples

import (
	"github.com/roach88/acunit/internal/harness"
)

// Suites returns every built-in suite in declared order.
func Suites() []*harness.Suite {
	return append(Defaults(), Failing())
}

// Defaults returns the suites run when none are named.
func Defaults() []*harness.Suite {
	return []*harness.Suite{
		Simple(),
		Advanced(),
		WithMessage(),
	}
}

// Lookup returns the built-in suite called name.
func Lookup(name string) (*harness.Suite, bool) {
	for _, s := range Suites() {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
