package tui

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// statusSink is a slog handler that keeps the most recent warning so the
// view can show it in the footer.
type statusSink struct {
	mu   *sync.Mutex
	last *string
}

func newStatusSink() *statusSink {
	return &statusSink{mu: &sync.Mutex{}, last: new(string)}
}

func (s *statusSink) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (s *statusSink) Handle(_ context.Context, record slog.Record) error {
	text := record.Message
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == "error" {
			text += ": " + attr.Value.String()
			return false
		}
		return true
	})
	s.mu.Lock()
	*s.last = strings.TrimSpace(text)
	s.mu.Unlock()
	return nil
}

func (s *statusSink) WithAttrs([]slog.Attr) slog.Handler { return s }

func (s *statusSink) WithGroup(string) slog.Handler { return s }

// Last returns the latest warning text.
func (s *statusSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.last
}

func (s *statusSink) clear() {
	s.mu.Lock()
	*s.last = ""
	s.mu.Unlock()
}
