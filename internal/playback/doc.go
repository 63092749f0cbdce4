// Package playback implements the viewer's selection and auto-advance state
// machine as a pure reducer.
//
// Reduce folds one Event into a State given the current ordered id list.
// Nothing here blocks or owns a timer: hosts schedule Tick through a Clock
// after the configured interval and must re-check State.Playing when the
// timer fires, which makes a Stop issued during the wait win.
package playback
