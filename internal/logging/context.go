package logging

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	taskKey ctxKey = iota
	responseIDKey
	sessionIDKey
	requestIDKey
)

// WithTask records the active task name on ctx.
func WithTask(ctx context.Context, task string) context.Context {
	return context.WithValue(ctx, taskKey, task)
}

// WithResponseID records the response id on screen.
func WithResponseID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, responseIDKey, id)
}

// WithSessionID records the review session handling ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// WithRequestID records the HTTP request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, requestIDKey)
}

// SessionIDFromContext returns the session id stored by WithSessionID.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, sessionIDKey)
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(key).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ContextFields extracts standardized attributes from ctx.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 4)
	if value, ok := stringValue(ctx, taskKey); ok {
		fields = append(fields, Task(value))
	}
	if value, ok := stringValue(ctx, responseIDKey); ok {
		fields = append(fields, ResponseID(value))
	}
	if value, ok := stringValue(ctx, sessionIDKey); ok {
		fields = append(fields, SessionID(value))
	}
	if value, ok := stringValue(ctx, requestIDKey); ok {
		fields = append(fields, slog.String(FieldCorrelationID, value))
	}
	return fields
}

// WithContext returns logger augmented with the fields carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(toArgs(fields)...)
}
