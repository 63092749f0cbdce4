// Package server exposes review sessions over HTTP.
//
// Each browser gets its own review.Session, keyed by a cookie and held in an
// expiring in-memory store. The page polls /api/state with wait=1 to follow
// auto-advance, and posts playback inputs to the /api action routes. Media
// files are served read-only from the data root.
package server
