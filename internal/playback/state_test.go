package playback

import (
	"math"
	"testing"
	"time"

	"attnview/internal/task"
)

var threeIDs = []string{"001", "002", "003"}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(task.Describe)
	if s.Task != task.Describe || s.Index != 0 || s.Playing || s.Interval != 1.0 {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.Mode() != Idle {
		t.Fatalf("expected idle mode, got %s", s.Mode())
	}
	if got := NewState(task.Task("bogus")); got.Task != task.Default {
		t.Fatalf("invalid task should fall back to default, got %q", got.Task)
	}
}

func TestSelectTaskResetsPlayback(t *testing.T) {
	s := State{Task: task.Describe, Index: 2, Playing: true, Interval: 0.5}
	next := Reduce(s, SelectTask{Task: task.Recall}, threeIDs)
	if next.Task != task.Recall || next.Index != 0 || next.Playing {
		t.Fatalf("unexpected state after SelectTask: %+v", next)
	}
	if next.Interval != 0.5 {
		t.Fatalf("interval should survive task switch, got %v", next.Interval)
	}
}

func TestSelectTaskClampsToShortList(t *testing.T) {
	s := State{Task: task.Describe, Index: 7}
	s = Reduce(s, SelectTask{Task: task.Compare}, threeIDs)
	s = s.Clamp(1)
	if s.Index != 0 {
		t.Fatalf("expected index 0 for single-id list, got %d", s.Index)
	}
}

func TestSelectIDWhileIdle(t *testing.T) {
	s := Reduce(NewState(task.Describe), SelectID{ID: "003"}, threeIDs)
	if s.Index != 2 {
		t.Fatalf("expected index 2, got %d", s.Index)
	}
	s = Reduce(s, SelectID{ID: "999"}, threeIDs)
	if s.Index != 2 {
		t.Fatalf("unknown id should leave index unchanged, got %d", s.Index)
	}
}

func TestSelectIDIgnoredWhilePlaying(t *testing.T) {
	s := State{Task: task.Describe, Index: 1, Playing: true, Interval: 1}
	s = Reduce(s, SelectID{ID: "003"}, threeIDs)
	if s.Index != 1 || !s.Playing {
		t.Fatalf("SelectID must be inert while playing, got %+v", s)
	}
}

func TestStartAlwaysRestarts(t *testing.T) {
	s := State{Task: task.Describe, Index: 3, Interval: 1}
	s = Reduce(s, Start{}, []string{"1", "2", "3", "4", "5"})
	if s.Index != 0 || !s.Playing {
		t.Fatalf("Start should restart from 0, got %+v", s)
	}
	if s.Mode() != Playing {
		t.Fatalf("expected playing mode, got %s", s.Mode())
	}
}

func TestStartWithEmptyListStaysIdle(t *testing.T) {
	s := Reduce(NewState(task.Describe), Start{}, nil)
	if s.Playing {
		t.Fatal("Start with no ids should remain idle")
	}
}

func TestStopFreezesIndex(t *testing.T) {
	s := State{Task: task.Describe, Index: 1, Playing: true, Interval: 1}
	s = Reduce(s, Stop{}, threeIDs)
	if s.Playing || s.Index != 1 {
		t.Fatalf("Stop should hold index, got %+v", s)
	}
}

func TestTickAdvancesAndStopsAtEnd(t *testing.T) {
	s := Reduce(NewState(task.Describe), Start{}, threeIDs)
	s = Reduce(s, Tick{}, threeIDs)
	if s.Index != 1 || !s.Playing {
		t.Fatalf("expected advance to 1, got %+v", s)
	}
	s = Reduce(s, Tick{}, threeIDs)
	if s.Index != 2 || !s.Playing {
		t.Fatalf("expected advance to 2, got %+v", s)
	}
	s = Reduce(s, Tick{}, threeIDs)
	if s.Index != 2 || s.Playing {
		t.Fatalf("expected auto-stop at last index, got %+v", s)
	}
}

func TestTickWhileIdleIsNoop(t *testing.T) {
	s := State{Task: task.Describe, Index: 1, Interval: 1}
	if next := Reduce(s, Tick{}, threeIDs); next != s {
		t.Fatalf("tick while idle changed state: %+v", next)
	}
}

func TestTickSingleIDStopsImmediately(t *testing.T) {
	s := Reduce(NewState(task.Describe), Start{}, []string{"001"})
	s = Reduce(s, Tick{}, []string{"001"})
	if s.Playing || s.Index != 0 {
		t.Fatalf("single-id playback should stop on first tick, got %+v", s)
	}
}

func TestAdjustIntervalStaysInRange(t *testing.T) {
	s := NewState(task.Describe)
	for i := 0; i < 50; i++ {
		s = Reduce(s, AdjustInterval{Delta: IntervalStep}, threeIDs)
		assertIntervalValid(t, s.Interval)
	}
	if s.Interval != MaxInterval {
		t.Fatalf("expected clamp at max, got %v", s.Interval)
	}
	for i := 0; i < 50; i++ {
		s = Reduce(s, AdjustInterval{Delta: -IntervalStep}, threeIDs)
		assertIntervalValid(t, s.Interval)
	}
	if s.Interval != MinInterval {
		t.Fatalf("expected clamp at min, got %v", s.Interval)
	}
}

func TestSetInterval(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.26, 1.3},
		{0.04, 0.0},
		{-2, 0.0},
		{9, 3.0},
		{2.95, 3.0},
		{math.Inf(1), 3.0},
	}
	for _, tc := range tests {
		s := Reduce(NewState(task.Describe), SetInterval{Value: tc.in}, threeIDs)
		if math.Abs(s.Interval-tc.want) > 1e-9 {
			t.Fatalf("SetInterval(%v) = %v, want %v", tc.in, s.Interval, tc.want)
		}
	}
	s := Reduce(State{Interval: 2.0}, SetInterval{Value: math.NaN()}, threeIDs)
	if s.Interval != 2.0 {
		t.Fatalf("NaN should leave interval unchanged, got %v", s.Interval)
	}
}

func TestClampAfterListShrinks(t *testing.T) {
	s := State{Index: 9}
	if got := s.Clamp(3).Index; got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := (State{Index: -4}).Clamp(3).Index; got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := s.Clamp(0).Index; got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestCurrent(t *testing.T) {
	s := State{Index: 5}
	if got := s.Current(threeIDs); got != "003" {
		t.Fatalf("Current should clamp, got %q", got)
	}
	if got := s.Current(nil); got != "" {
		t.Fatalf("expected empty current, got %q", got)
	}
}

func TestIntervalDuration(t *testing.T) {
	if got := IntervalDuration(1.2); got != 1200*time.Millisecond {
		t.Fatalf("unexpected duration %v", got)
	}
	if got := (State{Interval: 0}).Delay(); got != 0 {
		t.Fatalf("unexpected zero delay %v", got)
	}
}

func TestName(t *testing.T) {
	if Name(Tick{}) != "tick" || Name(SelectTask{}) != "select_task" || Name(nil) != "" {
		t.Fatal("unexpected event names")
	}
}

func assertIntervalValid(t *testing.T, v float64) {
	t.Helper()
	if v < MinInterval || v > MaxInterval {
		t.Fatalf("interval %v out of range", v)
	}
	steps := v * 10
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		t.Fatalf("interval %v is not a multiple of the step", v)
	}
}
