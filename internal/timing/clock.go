// Package timing provides the pausable game-time source of a session and
// fire-once delayed actions driven by it.
package timing

import "time"

// SessionClock accumulates game time from frame deltas. Time advanced while
// paused is dropped, so thresholds measured against Elapsed never see it.
type SessionClock struct {
	elapsed time.Duration
	paused  bool
}

// Advance adds a frame delta unless the clock is paused. Negative deltas are
// ignored. It returns the delta actually applied.
func (c *SessionClock) Advance(dt time.Duration) time.Duration {
	if c.paused || dt <= 0 {
		return 0
	}
	c.elapsed += dt
	return dt
}

// Elapsed returns the game time accumulated since the last Reset.
func (c *SessionClock) Elapsed() time.Duration {
	return c.elapsed
}

// Seconds returns Elapsed in seconds.
func (c *SessionClock) Seconds() float64 {
	return c.elapsed.Seconds()
}

// Pause stops accumulation until Resume.
func (c *SessionClock) Pause() {
	c.paused = true
}

// Resume restarts accumulation.
func (c *SessionClock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *SessionClock) Paused() bool {
	return c.paused
}

// Reset zeroes the clock and unpauses it.
func (c *SessionClock) Reset() {
	c.elapsed = 0
	c.paused = false
}
