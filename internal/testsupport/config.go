package testsupport

import (
	"path/filepath"
	"testing"

	"attnview/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in per-test temp directories. The data
// root starts empty unless WithDemoData or WithDataRoot is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataRoot = filepath.Join(base, "demo_data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Server.Bind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return &cfg
}

// WithDataRoot points the config at an existing data root.
func WithDataRoot(root string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.DataRoot = root
	}
}

// WithDemoData lays down WriteDemoData and points the config at it.
func WithDemoData(t testing.TB) ConfigOption {
	root := WriteDemoData(t)
	return WithDataRoot(root)
}

// WithTitle overrides the display title of one task.
func WithTitle(name, title string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Titles[name] = title
	}
}
