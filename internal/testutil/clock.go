package testutil

// DeterministicClock is a logical clock for fixtures that need ordered,
// reproducible sequence numbers instead of wall time.
//
// It is not safe for concurrent use.
type DeterministicClock struct {
	seq int64
}

// NewDeterministicClock creates a clock whose first Next returns 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next advances the clock and returns the new sequence number.
func (c *DeterministicClock) Next() int64 {
	c.seq++
	return c.seq
}

// Current returns the last value handed out by Next, or 0.
func (c *DeterministicClock) Current() int64 {
	return c.seq
}

// Reset rewinds the clock to 0.
func (c *DeterministicClock) Reset() {
	c.seq = 0
}
