package playback

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Hosts inject a fake in tests.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock schedules with the runtime timer.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
