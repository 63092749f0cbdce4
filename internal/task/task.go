// Package task defines the closed set of experiment tasks the viewer can
// display and how each maps to a directory and a display title.
package task

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Task names one of the experiment modes.
type Task string

const (
	Describe Task = "describe"
	Compare  Task = "compare"
	Recall   Task = "recall"
)

// Default is the task a new session starts on.
const Default = Describe

// ErrUnknown is returned by Parse for names outside the closed set.
var ErrUnknown = errors.New("unknown task")

var knownTitles = map[Task]string{
	Describe: "Describe",
	Compare:  "Compare",
	Recall:   "Recall",
}

// All returns the tasks in display order.
func All() []Task {
	return []Task{Describe, Compare, Recall}
}

// Parse resolves a task name case-insensitively.
func Parse(name string) (Task, error) {
	candidate := Task(strings.ToLower(strings.TrimSpace(name)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// Names returns the task names in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t)
	}
	return names
}

// Valid reports whether t belongs to the closed set.
func (t Task) Valid() bool {
	switch t {
	case Describe, Compare, Recall:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Task) String() string {
	return string(t)
}

// Title returns the human-readable label for t.
func (t Task) Title() string {
	return TitleWith(t, nil)
}

// TitleWith returns the label for t, preferring overrides when they carry a
// non-empty entry for the task.
func TitleWith(t Task, overrides map[string]string) string {
	if title := strings.TrimSpace(overrides[string(t)]); title != "" {
		return title
	}
	if title, ok := knownTitles[t]; ok {
		return title
	}
	return cases.Title(language.Und).String(string(t))
}

// Dir returns the asset directory for t under root.
func (t Task) Dir(root string) string {
	return filepath.Join(root, string(t))
}
