package testutil

import "fmt"

// FixedIDGenerator returns the same run ID every time.
//
// Golden transcripts and JSON output embed the run ID, so tests pin it.
// If id is empty, Generate returns "test-run-default".
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for id.
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed ID.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}

// SequentialIDGenerator returns "<prefix>-1", "<prefix>-2", ...
//
// Use it where several runs must be told apart, such as history tests that
// write more than one run into the same database.
type SequentialIDGenerator struct {
	prefix string
	clock  DeterministicClock
}

// NewSequentialIDGenerator creates a generator using prefix.
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{prefix: prefix}
}

// Generate returns the next ID.
func (g *SequentialIDGenerator) Generate() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.clock.Next())
}
