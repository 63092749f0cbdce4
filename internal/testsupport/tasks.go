package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"attnview/internal/assets"
	"attnview/internal/task"
)

// TaskFixture describes the files to lay down inside one task directory.
type TaskFixture struct {
	// Responses is encoded as responses.json when non-nil.
	Responses map[string]string
	// RawResponses is written verbatim as responses.json when non-empty and
	// takes precedence over Responses.
	RawResponses string
	// Originals lists ids that get an Original_image entry.
	Originals []string
	// AOIs lists filenames created under aois/.
	AOIs []string
	// Files lists extra paths relative to the task directory.
	Files []string
}

// NewDataRoot returns an empty data root inside a per-test temp directory.
func NewDataRoot(t testing.TB) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "demo_data")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir data root: %v", err)
	}
	return root
}

// WriteTask materializes fx under root for tk and returns the task directory.
func WriteTask(t testing.TB, root string, tk task.Task, fx TaskFixture) string {
	t.Helper()

	dir := tk.Dir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir task dir: %v", err)
	}

	switch {
	case fx.RawResponses != "":
		WriteText(t, filepath.Join(dir, "responses.json"), fx.RawResponses)
	case fx.Responses != nil:
		data, err := json.Marshal(fx.Responses)
		if err != nil {
			t.Fatalf("encode responses: %v", err)
		}
		WriteText(t, filepath.Join(dir, "responses.json"), string(data))
	}

	for _, id := range fx.Originals {
		WriteFile(t, assets.ImagePath(dir, assets.OriginalDir, id), 16)
	}
	for _, name := range fx.AOIs {
		WriteFile(t, filepath.Join(dir, assets.AOIDir, name), 16)
	}
	for _, rel := range fx.Files {
		WriteFile(t, filepath.Join(dir, filepath.FromSlash(rel)), 16)
	}
	return dir
}

// WriteDemoData lays down a small dataset covering every task and naming
// convention and returns the data root.
func WriteDemoData(t testing.TB) string {
	t.Helper()

	root := NewDataRoot(t)
	WriteTask(t, root, task.Describe, TaskFixture{
		Responses: map[string]string{"001": "a red kite", "002": "two boats", "010": ""},
		Originals: []string{"001", "002", "010"},
		AOIs:      []string{"001.png", "002.png"},
		Files:     []string{"heatmap.mp4"},
	})
	WriteTask(t, root, task.Compare, TaskFixture{
		Responses: map[string]string{"1": "left is brighter", "2": "same"},
		Originals: []string{"1"},
		AOIs:      []string{"001.png"},
		Files:     []string{"b-session.mp4", "a-session.mp4"},
	})
	WriteTask(t, root, task.Recall, TaskFixture{
		Responses: map[string]string{"001": "the tower moved", "002": "nothing changed", "003": "unsure"},
		Originals: []string{"001", "002", "003"},
		AOIs:      []string{"001_ref.png", "001_current.png", "002_current.png", "003.png"},
	})
	return root
}
