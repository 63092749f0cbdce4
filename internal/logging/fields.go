package logging

const (
	// FieldComponent names the subsystem emitting a record.
	FieldComponent = "component"
	// FieldTask is the active task name.
	FieldTask = "task"
	// FieldResponseID is the response id on screen.
	FieldResponseID = "response_id"
	// FieldEvent is the playback event being applied.
	FieldEvent = "event"
	// FieldSessionID identifies a browser or terminal review session.
	FieldSessionID = "session_id"
	// FieldRunID identifies one process run.
	FieldRunID = "run_id"
	// FieldCorrelationID carries the HTTP request id.
	FieldCorrelationID = "correlation_id"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)
