package logging

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler delivers each record to every handler whose level admits it.
type fanoutHandler struct {
	handlers []slog.Handler
}

// newFanoutHandler drops nil handlers and avoids wrapping when zero or one remain.
func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	live := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			live = append(live, h)
		}
	}
	if len(live) == 0 {
		return NoopHandler{}
	}
	if len(live) == 1 {
		return live[0]
	}
	return &fanoutHandler{handlers: live}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.handlers {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle writes to every enabled sink even when an earlier one fails.
func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, sink := range h.handlers {
		if sink.Enabled(ctx, record.Level) {
			errs = append(errs, sink.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(sink slog.Handler) slog.Handler { return sink.WithAttrs(attrs) })
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(sink slog.Handler) slog.Handler { return sink.WithGroup(name) })
}

func (h *fanoutHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, sink := range h.handlers {
		next[i] = fn(sink)
	}
	return &fanoutHandler{handlers: next}
}

// TeeLogger duplicates output from base into the provided handlers. The TUI
// uses it to mirror warnings into its status line while file logging continues.
func TeeLogger(base *slog.Logger, handlers ...slog.Handler) *slog.Logger {
	sinks := handlers
	if base != nil {
		sinks = append([]slog.Handler{base.Handler()}, handlers...)
	}
	return slog.New(newFanoutHandler(sinks...))
}
