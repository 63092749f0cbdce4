package playback

import (
	"math"

	"attnview/internal/task"
)

// Event is one discrete input to the state machine.
type Event interface {
	eventName() string
}

// SelectTask switches tasks and always resets playback.
type SelectTask struct{ Task task.Task }

// SelectID points the index at an id. Inert while playing.
type SelectID struct{ ID string }

// Start restarts auto-advance from the first id.
type Start struct{}

// Stop freezes playback at the current index.
type Stop struct{}

// AdjustInterval nudges the interval by Delta seconds.
type AdjustInterval struct{ Delta float64 }

// SetInterval replaces the interval.
type SetInterval struct{ Value float64 }

// Tick advances one id. Hosts deliver it after the interval elapses.
type Tick struct{}

func (SelectTask) eventName() string     { return "select_task" }
func (SelectID) eventName() string       { return "select_id" }
func (Start) eventName() string          { return "start" }
func (Stop) eventName() string           { return "stop" }
func (AdjustInterval) eventName() string { return "adjust_interval" }
func (SetInterval) eventName() string    { return "set_interval" }
func (Tick) eventName() string           { return "tick" }

// Name returns a stable identifier for ev, suitable for logs.
func Name(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}

// Reduce applies ev to s. ids is the ordered id list of s.Task; after a
// SelectTask the caller must Clamp against the new task's list.
func Reduce(s State, ev Event, ids []string) State {
	switch e := ev.(type) {
	case SelectTask:
		if !e.Task.Valid() {
			return s.Clamp(len(ids))
		}
		s.Task = e.Task
		s.Index = 0
		s.Playing = false
		return s
	case SelectID:
		if s.Playing {
			break
		}
		for i, id := range ids {
			if id == e.ID {
				s.Index = i
				break
			}
		}
	case Start:
		if len(ids) > 0 {
			s.Playing = true
			s.Index = 0
		}
	case Stop:
		s.Playing = false
	case AdjustInterval:
		if !math.IsNaN(e.Delta) {
			s.Interval = NormalizeInterval(s.Interval + e.Delta)
		}
	case SetInterval:
		if !math.IsNaN(e.Value) {
			s.Interval = NormalizeInterval(e.Value)
		}
	case Tick:
		if !s.Playing {
			break
		}
		s = s.Clamp(len(ids))
		if s.Index < len(ids)-1 {
			s.Index++
		} else {
			s.Playing = false
		}
	}
	return s.Clamp(len(ids))
}
