package playback

import (
	"math"
	"time"

	"attnview/internal/task"
)

const (
	// MinInterval and MaxInterval bound the auto-advance delay in seconds.
	MinInterval = 0.0
	MaxInterval = 3.0
	// IntervalStep is the granularity intervals are rounded to.
	IntervalStep = 0.1
	// DefaultInterval is the delay a new session starts with.
	DefaultInterval = 1.0

	stepsPerSecond = 1 / IntervalStep
)

// Mode is the state machine's coarse state.
type Mode string

const (
	Idle    Mode = "idle"
	Playing Mode = "playing"
)

// State is the complete playback state of one session.
type State struct {
	Task     task.Task `json:"task"`
	Index    int       `json:"index"`
	Playing  bool      `json:"playing"`
	Interval float64   `json:"interval"`
}

// NewState returns the session-start state for t.
func NewState(t task.Task) State {
	if !t.Valid() {
		t = task.Default
	}
	return State{Task: t, Interval: DefaultInterval}
}

// Mode reports Idle or Playing.
func (s State) Mode() Mode {
	if s.Playing {
		return Playing
	}
	return Idle
}

// Clamp bounds Index to a list of length n. An empty list pins the index at 0.
func (s State) Clamp(n int) State {
	switch {
	case n <= 0 || s.Index < 0:
		s.Index = 0
	case s.Index > n-1:
		s.Index = n - 1
	}
	return s
}

// Current returns the id at the clamped index, or "" for an empty list.
func (s State) Current(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[s.Clamp(len(ids)).Index]
}

// Delay converts the interval to a duration.
func (s State) Delay() time.Duration {
	return IntervalDuration(s.Interval)
}

// NormalizeInterval rounds seconds to the nearest step and clamps it into
// [MinInterval, MaxInterval].
func NormalizeInterval(seconds float64) float64 {
	if math.IsNaN(seconds) {
		return DefaultInterval
	}
	if math.IsInf(seconds, 1) {
		return MaxInterval
	}
	if math.IsInf(seconds, -1) {
		return MinInterval
	}
	rounded := math.Round(seconds*stepsPerSecond) / stepsPerSecond
	return math.Min(MaxInterval, math.Max(MinInterval, rounded))
}

// IntervalDuration converts seconds to a duration at millisecond precision.
func IntervalDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(NormalizeInterval(seconds)*1000)) * time.Millisecond
}
