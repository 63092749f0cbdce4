// Package responses loads the per-task response text mapping and derives
// the stable id ordering used by every render surface.
//
// Load never fails: a missing or malformed responses.json degrades to an
// empty Map, and Order turns an empty Map into the single sentinel id so
// downstream code always has something to display. LoadFile exposes the
// underlying reason for diagnostics.
package responses
