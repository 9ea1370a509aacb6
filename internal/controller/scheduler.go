package controller

import "time"

// Timer is an owned, cancelable timer token.
type Timer interface {
	// Stop cancels the timer; it reports false when the timer already fired.
	Stop() bool
}

// Scheduler arms the hover-open and hover-close timers. The controller never
// touches the clock directly, so tests can drive time by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewScheduler returns the wall-clock scheduler used outside of tests.
func NewScheduler() Scheduler {
	return realScheduler{}
}
