package config

import (
	"fmt"
	"os"
	"strings"
)

// applyEnv lets the environment override file values for the settings most
// often changed per machine.
func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envDataRoot); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataRoot = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv(envBind); ok && strings.TrimSpace(value) != "" {
		c.Server.Bind = strings.TrimSpace(value)
	}
}

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizePlayback()
	c.normalizeTitles()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataRoot) == "" {
		c.Paths.DataRoot = defaultDataRoot
	}
	if c.Paths.DataRoot, err = expandPath(strings.TrimSpace(c.Paths.DataRoot)); err != nil {
		return fmt.Errorf("paths.data_root: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.SessionIdleMinutes == 0 {
		c.Server.SessionIdleMinutes = defaultSessionIdleMinutes
	}
}

func (c *Config) normalizePlayback() {
	c.Playback.DefaultTask = strings.ToLower(strings.TrimSpace(c.Playback.DefaultTask))
	if c.Playback.DefaultTask == "" {
		c.Playback.DefaultTask = defaultTask
	}
}

func (c *Config) normalizeTitles() {
	if len(c.Titles) == 0 {
		c.Titles = map[string]string{}
		return
	}
	normalized := make(map[string]string, len(c.Titles))
	for key, value := range c.Titles {
		normalized[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	c.Titles = normalized
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
