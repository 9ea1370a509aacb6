package testutil

import (
	"sync"
	"time"

	"github.com/BusselW/navmenu/internal/controller"
)

// ManualClock is a settable time source for cache expiry tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now is the function handed to cache.WithClock.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type manualTimer struct {
	sched   *ManualScheduler
	d       time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// ManualScheduler implements controller.Scheduler with explicit firing, so
// hover and close timers advance only when a test says so.
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) controller.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{sched: s, d: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Pending reports how many timers are armed but not yet fired or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Fire runs every armed timer whose delay is at most d. Callbacks run
// without the scheduler lock held, in arming order.
func (s *ManualScheduler) Fire(d time.Duration) {
	s.mu.Lock()
	due := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.d <= d {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
}

// FireAll runs every armed timer regardless of delay.
func (s *ManualScheduler) FireAll() {
	s.Fire(1<<62 - 1)
}
