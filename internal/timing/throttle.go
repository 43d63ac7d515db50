package timing

import "time"

// DefaultThrottleInterval bounds how often scroll activity may trigger
// a merge/persist cycle.
const DefaultThrottleInterval = 200 * time.Millisecond

// Throttle admits at most one signal per fixed interval and drops the
// rest. Unlike Debounce it fires on the leading edge: the first signal
// in a window passes, intermediate ones are discarded rather than
// queued.
type Throttle struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottle builds a Throttle with the given interval. A
// non-positive interval uses DefaultThrottleInterval.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = DefaultThrottleInterval
	}
	return &Throttle{
		interval: interval,
		now:      time.Now,
	}
}

// Allow reports whether a signal may pass, consuming the window when
// it does.
func (t *Throttle) Allow() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Interval returns the throttle window length, which is also how long
// a trailing catch-up should wait.
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Reset reopens the window so the next signal passes immediately, used
// when the query context changes.
func (t *Throttle) Reset() {
	t.last = time.Time{}
}
