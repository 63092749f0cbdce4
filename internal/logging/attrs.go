package logging

import (
	"context"
	"log/slog"
	"slices"
	"time"
)

// Attr is the structured field type every helper here returns.
type Attr = slog.Attr

func String(key, value string) Attr                 { return slog.String(key, value) }
func Int(key string, value int) Attr                { return slog.Int(key, value) }
func Bool(key string, value bool) Attr              { return slog.Bool(key, value) }
func Float64(key string, value float64) Attr        { return slog.Float64(key, value) }
func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

// Task tags a record with the task it concerns.
func Task(name string) Attr { return slog.String(FieldTask, name) }

// ResponseID tags a record with a response id.
func ResponseID(id string) Attr { return slog.String(FieldResponseID, id) }

// SessionID tags a record with a review session.
func SessionID(id string) Attr { return slog.String(FieldSessionID, id) }

// Event names the playback event a record describes.
func Event(name string) Attr { return slog.String(FieldEvent, name) }

// Error records err under "error"; nil is written as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func toArgs(attrs []Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger tags logger with a component name. A nil logger yields a no-op base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

var warnDefaults = []Attr{
	String(FieldErrorHint, "check logs for details"),
	String(FieldImpact, "display may be incomplete"),
}

// WarnWithContext logs a warning tagged with eventType. Hint and impact
// fall back to generic text when the caller leaves them out.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	attrs = append(attrs, String(FieldEventType, eventType))
	for _, def := range warnDefaults {
		if !slices.ContainsFunc(attrs, func(a Attr) bool { return a.Key == def.Key }) {
			attrs = append(attrs, def)
		}
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }
func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }
func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler        { return NoopHandler{} }
func (NoopHandler) WithGroup(string) slog.Handler             { return NoopHandler{} }
