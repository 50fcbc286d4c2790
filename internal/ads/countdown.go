package ads

import "time"

// Countdown is a one-shot timer advanced by explicit elapsed-time deltas
// supplied once per consumer tick. There is no background goroutine and no
// real-time callback; Tick is the only way time passes.
type Countdown struct {
	duration time.Duration
	elapsed  time.Duration
	fired    bool
}

// NewCountdown returns a countdown that fires once elapsed time reaches d.
// Negative durations are clamped to zero (fires on the first tick).
func NewCountdown(d time.Duration) *Countdown {
	if d < 0 {
		d = 0
	}
	return &Countdown{duration: d}
}

// Tick advances the countdown by dt and reports whether it fired on this
// tick. A countdown fires exactly once; later ticks return false.
func (c *Countdown) Tick(dt time.Duration) bool {
	if c.fired {
		return false
	}
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed >= c.duration {
		c.fired = true
		return true
	}
	return false
}

// Finished reports whether the countdown has fired.
func (c *Countdown) Finished() bool { return c.fired }

// Remaining reports the time left until the countdown fires; zero once
// finished.
func (c *Countdown) Remaining() time.Duration {
	if r := c.duration - c.elapsed; r > 0 {
		return r
	}
	return 0
}
