package util

import "time"

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time { return time.Now() }

// SteppingClock advances by Step on every call to Now, giving tests
// deterministic elapsed durations.
type SteppingClock struct {
	T    time.Time
	Step time.Duration
}

func (c *SteppingClock) Now() time.Time {
	t := c.T
	c.T = c.T.Add(c.Step)
	return t
}
