package review

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"attnview/internal/logging"
	"attnview/internal/responses"
	"attnview/internal/task"
)

// ErrTaskDirectoryMissing reports that the configured task directory does not exist.
var ErrTaskDirectoryMissing = errors.New("task folder not found")

// Library locates task directories beneath a data root.
type Library struct {
	root   string
	titles map[string]string
	logger *slog.Logger
}

// NewLibrary constructs a Library. titles overrides display titles per task name.
func NewLibrary(root string, titles map[string]string, logger *slog.Logger) *Library {
	return &Library{
		root:   root,
		titles: titles,
		logger: logging.NewComponentLogger(logger, "library"),
	}
}

// Root returns the data root directory.
func (l *Library) Root() string {
	return l.root
}

// TaskDir returns the directory holding t's assets.
func (l *Library) TaskDir(t task.Task) string {
	return t.Dir(l.root)
}

// Title returns the display title for t.
func (l *Library) Title(t task.Task) string {
	return task.TitleWith(t, l.titles)
}

// Catalog is one loaded task directory.
type Catalog struct {
	Task      task.Task
	Dir       string
	Responses responses.Map
	IDs       []string
	// Empty is set when responses.json was missing, malformed, or had no entries.
	Empty bool
}

// Open loads t's responses and id ordering. It fails only when the task
// directory itself is unavailable.
func (l *Library) Open(t task.Task) (*Catalog, error) {
	dir := l.TaskDir(t)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrTaskDirectoryMissing, dir)
	case err != nil:
		return nil, fmt.Errorf("stat task folder %s: %w", dir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTaskDirectoryMissing, dir)
	}

	m, loadErr := responses.LoadFile(filepath.Join(dir, responses.Filename))
	if loadErr != nil {
		l.logger.Debug("responses unavailable; using empty mapping",
			logging.Task(t.String()),
			logging.String("path", filepath.Join(dir, responses.Filename)),
			logging.Error(loadErr),
		)
		m = responses.Map{}
	}

	catalog := &Catalog{
		Task:      t,
		Dir:       dir,
		Responses: m,
		IDs:       responses.Order(m),
		Empty:     len(m) == 0,
	}
	l.logger.Debug("task catalog loaded",
		logging.Task(t.String()),
		logging.Int("responses", len(m)),
	)
	return catalog, nil
}
