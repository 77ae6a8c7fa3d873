package impl

import "time"

// Clock abstracts wall-clock reads and timer creation so time-dependent
// services can be driven deterministically in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for the duration to elapse and then calls fn in its own
	// goroutine. It returns a Timer whose Stop method cancels the call.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is the handle for a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the Timer from firing. It returns false if the timer has
	// already expired or been stopped.
	Stop() bool
}

type realClock struct{}

// NewRealClock returns a Clock backed by the time package.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
