package timing

import "time"

// DefaultDebounceWindow is the quiet period after the last keystroke
// before a search value settles.
const DefaultDebounceWindow = 200 * time.Millisecond

// Debounce implements trailing-edge debouncing for a stream of text
// values. Each Touch restarts the quiet window; a value settles only
// when no further Touch arrives within the window.
//
// Debounce does not own a timer. The caller schedules a wake-up after
// the returned wait (in the TUI this is a Bubble Tea tick) and passes
// the sequence number back to Settle; a wake-up for anything but the
// latest sequence is simply stale. This keeps the debounce logic
// synchronous, deterministic, and usable from a single-threaded event
// loop.
type Debounce struct {
	Window time.Duration

	seq   int
	value string
}

// Touch records a new raw value and returns the sequence number the
// caller should carry on its scheduled wake-up, plus how long to wait.
func (d *Debounce) Touch(value string) (seq int, wait time.Duration) {
	d.seq++
	d.value = value
	wait = d.Window
	if wait <= 0 {
		wait = DefaultDebounceWindow
	}
	return d.seq, wait
}

// Settle resolves a wake-up. It returns the settled value only when
// seq is the latest sequence, meaning the window passed with no
// further input. Stale wake-ups return ok=false and must be ignored.
func (d *Debounce) Settle(seq int) (value string, ok bool) {
	if seq != d.seq {
		return "", false
	}
	return d.value, true
}

// Pending reports whether a touch has happened since the zero state,
// exposing the latest raw value without settling it.
func (d *Debounce) Pending() string {
	return d.value
}
