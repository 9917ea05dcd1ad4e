package app

import (
	"fmt"
	"sync"
	"time"
)

// Timer is a per-second countdown owned by exactly one quiz session. It
// fires tick callbacks while running and a single expiry callback when the
// remaining time reaches zero, then stops permanently. Stop is idempotent
// and releases the underlying ticker on every path.
type Timer struct {
	mu        sync.Mutex
	remaining int
	interval  time.Duration
	stopCh    chan struct{}
	stopped   bool
}

// NewTimer builds a countdown for a whole-minute duration.
func NewTimer(minutes int) *Timer {
	return newTimerWithInterval(minutes*60, time.Second)
}

// newTimerWithInterval allows deterministic intervals in tests.
func newTimerWithInterval(seconds int, interval time.Duration) *Timer {
	return &Timer{
		remaining: seconds,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the countdown. onTick receives the remaining seconds after
// each decrement; onExpire fires exactly once when the countdown reaches
// zero. Neither callback fires after Stop returns ordering-wise: callbacks
// re-check session state under the owner's lock.
func (t *Timer) Start(onTick func(remaining int), onExpire func()) {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.mu.Lock()
				if t.stopped {
					t.mu.Unlock()
					return
				}
				t.remaining--
				remaining := t.remaining
				if remaining <= 0 {
					t.stopped = true
				}
				t.mu.Unlock()

				if remaining <= 0 {
					onExpire()
					return
				}
				onTick(remaining)
			case <-t.stopCh:
				return
			}
		}
	}()
}

// Stop cancels the countdown. Safe to call multiple times and from any state.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.stopCh)
}

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.remaining < 0 {
		return 0
	}
	return t.remaining
}

// FormatRemaining renders seconds as m:ss (minutes unpadded, seconds
// zero-padded), matching the exam screen display.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
