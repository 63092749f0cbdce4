// Package review binds the playback reducer to on-disk task data.
//
// A Library locates task directories under the data root and opens them into
// Catalogs (response map plus ordered ids). The Controller owns one
// session's playback state and current Catalog, reloading when the task
// changes and deriving the Frame render surfaces display. Session makes a
// Controller safe to share between HTTP handlers and the auto-advance timer:
// events are serialized, every visible change bumps a version that
// long-polling clients wait on, and timer generations ensure that a Stop
// issued while a tick is pending cancels the advance.
package review
