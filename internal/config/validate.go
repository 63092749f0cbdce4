package config

import (
	"errors"
	"fmt"
	"math"

	"attnview/internal/playback"
	"attnview/internal/task"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateTitles(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must be set")
	}
	if c.Server.SessionIdleMinutes < 0 {
		return errors.New("server.session_idle_minutes must be positive")
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if _, err := task.Parse(c.Playback.DefaultTask); err != nil {
		return fmt.Errorf("playback.default_task: %w", err)
	}
	interval := c.Playback.IntervalSeconds
	if math.IsNaN(interval) || interval < playback.MinInterval || interval > playback.MaxInterval {
		return fmt.Errorf("playback.interval_seconds must be between %.0f and %.0f", playback.MinInterval, playback.MaxInterval)
	}
	return nil
}

func (c *Config) validateTitles() error {
	for key := range c.Titles {
		if _, err := task.Parse(key); err != nil {
			return fmt.Errorf("titles: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.FileMaxSizeMB < 0 {
		return errors.New("logging.file_max_size_mb must not be negative")
	}
	if c.Logging.FileMaxBackups < 0 {
		return errors.New("logging.file_max_backups must not be negative")
	}
	return nil
}
