package audio

import "time"

// Throttle enforces a global minimum interval between tones.
type Throttle struct {
	cooldown time.Duration
	now      func() time.Time
	last     time.Time
	started  bool
}

// NewThrottle creates a throttle. A nil now uses time.Now.
func NewThrottle(cooldown time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{cooldown: cooldown, now: now}
}

// Allow reports whether a tone may start now and, if so, restarts the cooldown.
func (t *Throttle) Allow() bool {
	now := t.now()
	if t.started && now.Sub(t.last) < t.cooldown {
		return false
	}
	t.last = now
	t.started = true
	return true
}
