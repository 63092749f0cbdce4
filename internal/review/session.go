package review

import (
	"context"
	"log/slog"
	"sync"

	"attnview/internal/logging"
	"attnview/internal/playback"
)

// Session serializes access to a Controller and drives timed auto-advance.
type Session struct {
	id     string
	clock  playback.Clock
	logger *slog.Logger

	mu      sync.Mutex
	ctrl    *Controller
	timer   playback.Timer
	gen     uint64
	version uint64
	changed chan struct{}
	closed  bool
}

// NewSession wraps ctrl. A nil clock uses the system clock.
func NewSession(id string, ctrl *Controller, clock playback.Clock, logger *slog.Logger) *Session {
	if clock == nil {
		clock = playback.SystemClock{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		id:      id,
		clock:   clock,
		logger:  logger.With(logging.String(logging.FieldComponent, "session"), logging.SessionID(id)),
		ctrl:    ctrl,
		version: 1,
		changed: make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Frame returns the current render output.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

// Version returns the change counter of the session.
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Dispatch applies ev and returns the resulting frame.
func (s *Session) Dispatch(ev playback.Event) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.frameLocked()
	}

	switch ev.(type) {
	case playback.Start, playback.Stop, playback.SelectTask:
		s.cancelTimerLocked()
	case playback.Tick:
		// Ticks come from the timer only.
		return s.frameLocked()
	}

	if s.ctrl.Apply(ev) {
		s.bumpLocked()
	}
	s.scheduleLocked()
	return s.frameLocked()
}

// Reload re-reads the current task directory.
func (s *Session) Reload() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.frameLocked()
	}
	s.ctrl.Reload()
	if !s.ctrl.State().Playing {
		s.cancelTimerLocked()
	}
	s.bumpLocked()
	return s.frameLocked()
}

// Wait blocks until the session version exceeds since or ctx ends. It
// always returns the latest frame.
func (s *Session) Wait(ctx context.Context, since uint64) (Frame, error) {
	for {
		s.mu.Lock()
		if s.version > since || s.closed {
			frame := s.frameLocked()
			s.mu.Unlock()
			return frame, nil
		}
		changed := s.changed
		s.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return s.Frame(), ctx.Err()
		}
	}
}

// Close cancels any pending advance. Further events are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancelTimerLocked()
	s.ctrl.Apply(playback.Stop{})
	s.closed = true
	s.bumpLocked()
	s.logger.Debug("session closed")
}

func (s *Session) frameLocked() Frame {
	frame := s.ctrl.Frame()
	frame.Version = s.version
	return frame
}

func (s *Session) bumpLocked() {
	s.version++
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Session) cancelTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// scheduleLocked arms one advance when playing and none is pending.
func (s *Session) scheduleLocked() {
	if s.closed || s.timer != nil || !s.ctrl.State().Playing {
		return
	}
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.ctrl.State().Delay(), func() {
		s.advance(gen)
	})
}

func (s *Session) advance(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}
	s.timer = nil
	if !s.ctrl.State().Playing {
		return
	}
	if s.ctrl.Apply(playback.Tick{}) {
		s.bumpLocked()
	}
	if !s.ctrl.State().Playing {
		s.logger.Debug("playback reached last response", logging.ResponseID(s.ctrl.Frame().CurrentID))
	}
	s.scheduleLocked()
}
