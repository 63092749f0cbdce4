package review

import (
	"errors"
	"log/slog"

	"attnview/internal/assets"
	"attnview/internal/logging"
	"attnview/internal/playback"
	"attnview/internal/responses"
	"attnview/internal/task"
)

// Controller owns one session's playback state and loaded catalog. It is not
// safe for concurrent use; see Session.
type Controller struct {
	library *Library
	logger  *slog.Logger

	state   playback.State
	catalog *Catalog
	openErr error
}

// NewController opens the initial task described by initial.
func NewController(library *Library, initial playback.State, logger *slog.Logger) *Controller {
	if !initial.Task.Valid() {
		initial.Task = task.Default
	}
	initial.Interval = playback.NormalizeInterval(initial.Interval)
	initial.Playing = false
	c := &Controller{
		library: library,
		logger:  logging.NewComponentLogger(logger, "controller"),
		state:   initial,
	}
	c.load()
	return c
}

// State returns the current playback state.
func (c *Controller) State() playback.State {
	return c.state
}

// IDs returns the ordered ids of the current task. It is nil while the task
// directory is missing.
func (c *Controller) IDs() []string {
	if c.catalog == nil {
		return nil
	}
	return c.catalog.IDs
}

// Catalog returns the loaded catalog, or nil while blocked.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// Err returns the error that blocks rendering of the current task, if any.
func (c *Controller) Err() error {
	return c.openErr
}

// Blocked reports whether the current task directory is unavailable.
func (c *Controller) Blocked() bool {
	return c.openErr != nil
}

// Apply folds ev into the state and reports whether anything visible changed.
func (c *Controller) Apply(ev playback.Event) bool {
	prev := c.state
	next := playback.Reduce(prev, ev, c.IDs())
	c.state = next

	reloaded := false
	if _, ok := ev.(playback.SelectTask); ok && next.Task.Valid() {
		c.load()
		reloaded = true
	}

	changed := reloaded || c.state != prev
	if changed {
		c.logger.Debug("playback event applied",
			logging.Event(playback.Name(ev)),
			logging.Task(c.state.Task.String()),
			logging.Int("index", c.state.Index),
			logging.Bool("playing", c.state.Playing),
			logging.Float64("interval", c.state.Interval),
		)
	}
	return changed
}

// Reload re-reads the current task directory and clamps the index to the
// refreshed id list.
func (c *Controller) Reload() {
	c.load()
}

func (c *Controller) load() {
	catalog, err := c.library.Open(c.state.Task)
	c.catalog = catalog
	c.openErr = err
	if err != nil {
		c.state.Playing = false
		if errors.Is(err, ErrTaskDirectoryMissing) {
			logging.WarnWithContext(c.logger, "task folder unavailable", "task_dir_missing",
				logging.Task(c.state.Task.String()),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check paths.data_root or pick a different task"),
				logging.String(logging.FieldImpact, "task cannot be displayed"),
			)
		} else {
			c.logger.Error("open task folder", logging.Task(c.state.Task.String()), logging.Error(err))
		}
	}
	c.state = c.state.Clamp(len(c.IDs()))
}

// Frame derives the render output for the current state.
func (c *Controller) Frame() Frame {
	s := c.state
	frame := Frame{
		Task:     s.Task,
		Title:    c.library.Title(s.Task),
		Tasks:    c.taskOptions(),
		Dir:      c.library.TaskDir(s.Task),
		Index:    s.Index,
		Playing:  s.Playing,
		Mode:     s.Mode(),
		Interval: s.Interval,
	}
	if c.openErr != nil {
		frame.Blocked = true
		frame.Error = c.openErr.Error()
		if errors.Is(c.openErr, ErrTaskDirectoryMissing) {
			frame.Error = "Task folder not found: " + frame.Dir
		}
		return frame
	}

	frame.IDs = append([]string(nil), c.catalog.IDs...)
	frame.CurrentID = s.Current(frame.IDs)
	frame.Text = c.catalog.Responses.Text(frame.CurrentID)
	frame.DisplayText = responses.DisplayText(frame.Text)
	if c.catalog.Empty {
		frame.Notice = EmptyResponsesNotice
	}
	paths := assets.Resolve(c.catalog.Dir, s.Task, frame.CurrentID)
	frame.Assets = &paths
	frame.HasVideo = paths.HasVideo()
	return frame
}

func (c *Controller) taskOptions() []TaskOption {
	all := task.All()
	out := make([]TaskOption, len(all))
	for i, t := range all {
		out[i] = TaskOption{Name: t, Title: c.library.Title(t), Active: t == c.state.Task}
	}
	return out
}
