// Package logging assembles the structured slog loggers used across attnview.
//
// It owns the console and JSON handlers, routes file output through a rotating
// writer, and exposes context helpers so request and playback code can tag
// lines with the task, response id, browser session, and request id in play.
// A no-op logger is provided for tests and wiring code that cannot fail.
package logging
