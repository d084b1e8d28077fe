package state

import "time"

// Clock provides the current time. Injected so that tests can pin it.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same time.
type FixedClock struct {
	FixedNow time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.FixedNow
}

func (c *FixedClock) SetNow(now time.Time) {
	c.FixedNow = now
}
