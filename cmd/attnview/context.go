package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"attnview/internal/config"
	"attnview/internal/logging"
	"attnview/internal/playback"
	"attnview/internal/review"
	"attnview/internal/task"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// reportLogger returns a logger for the short-lived reporting commands: the
// rotated log file only, so terminal output stays clean.
func (c *commandContext) reportLogger(cfg *config.Config) *slog.Logger {
	path := cfg.LogFilePath()
	if path == "" {
		return logging.NewNop()
	}
	opts := logging.OptionsFromConfig(cfg)
	opts.OutputPaths = []string{path}
	logger, err := logging.New(opts)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

func newLibrary(cfg *config.Config, logger *slog.Logger) *review.Library {
	return review.NewLibrary(cfg.Paths.DataRoot, cfg.Titles, logger)
}

// resolveTask parses a --task flag, falling back to the configured default.
func resolveTask(cfg *config.Config, flag string) (task.Task, error) {
	if strings.TrimSpace(flag) == "" {
		return cfg.InitialState().Task, nil
	}
	t, err := task.Parse(flag)
	if err != nil {
		return "", fmt.Errorf("--task: %w", err)
	}
	return t, nil
}

// openController opens t using the configured initial state.
func openController(cfg *config.Config, logger *slog.Logger, t task.Task) *review.Controller {
	state := cfg.InitialState()
	state.Task = t
	return review.NewController(newLibrary(cfg, logger), state, logger)
}

func selectID(ctrl *review.Controller, id string) error {
	id = strings.TrimSpace(id)
	if ctrl.State().Current(ctrl.IDs()) == id {
		return nil
	}
	if !ctrl.Apply(playback.SelectID{ID: id}) {
		return fmt.Errorf("id %q not found in %s", id, ctrl.State().Task)
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
