// Package assets maps a task directory and response id onto the image and
// video files the viewer displays.
//
// Resolution only inspects the filesystem. Absent files never produce an
// error; they come back as slots whose Status is StatusMissing (expected
// asset not on disk) or StatusAbsent (optional asset not provided) so render
// surfaces can show an advisory warning next to the empty slot.
package assets
