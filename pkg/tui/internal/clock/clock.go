// ABOUTME: Serialised clock whose timer callbacks run while holding a shared lock.
// ABOUTME: Lets timer-driven pipeline stages share one mutex with the input feed.

package clock

import (
	"sync"
	"time"
)

// Timer is a pending callback. Stop must be called with the clock's lock held;
// it reports whether the timer was still pending.
type Timer interface {
	Stop() bool
}

// Clock provides the current time and timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// New returns a wall clock whose AfterFunc callbacks acquire mu before running.
// A timer stopped under mu never runs, even if its deadline has already passed.
func New(mu sync.Locker) Clock {
	return &serialClock{mu: mu}
}

type serialClock struct {
	mu sync.Locker
}

func (c *serialClock) Now() time.Time {
	return time.Now()
}

func (c *serialClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &serialTimer{}
	t.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if t.done {
			return
		}
		t.done = true
		f()
	})
	return t
}

// serialTimer.done is guarded by the clock's lock.
type serialTimer struct {
	timer *time.Timer
	done  bool
}

func (t *serialTimer) Stop() bool {
	t.timer.Stop()
	if t.done {
		return false
	}
	t.done = true
	return true
}
