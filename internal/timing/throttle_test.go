package timing

import (
	"testing"
	"time"
)

func TestThrottle_DropsSignalsInsideWindow(t *testing.T) {
	th := NewThrottle(200 * time.Millisecond)
	clock := time.Unix(0, 0)
	th.now = func() time.Time { return clock }

	if !th.Allow() {
		t.Fatal("first signal must pass")
	}
	clock = clock.Add(50 * time.Millisecond)
	if th.Allow() {
		t.Fatal("signal inside the window must be dropped")
	}
	clock = clock.Add(151 * time.Millisecond)
	if !th.Allow() {
		t.Fatal("signal after the window must pass")
	}
	clock = clock.Add(10 * time.Millisecond)
	if th.Allow() {
		t.Fatal("window must restart after an admitted signal")
	}
}

func TestThrottle_Reset(t *testing.T) {
	th := NewThrottle(time.Hour)
	if !th.Allow() {
		t.Fatal("first signal must pass")
	}
	if th.Allow() {
		t.Fatal("second immediate signal must be dropped")
	}
	th.Reset()
	if !th.Allow() {
		t.Fatal("signal after Reset must pass")
	}
}
