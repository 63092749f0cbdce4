package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"attnview/internal/config"
	"attnview/internal/task"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ATTNVIEW_DATA_ROOT", "")
	t.Setenv("ATTNVIEW_BIND", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultsExpandPaths(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	if resolved != filepath.Join(home, ".config", "attnview", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if want := filepath.Join(home, ".local", "share", "attnview", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("log dir = %q, want %q", cfg.Paths.LogDir, want)
	}
	if !filepath.IsAbs(cfg.Paths.DataRoot) || filepath.Base(cfg.Paths.DataRoot) != "demo_data" {
		t.Fatalf("unexpected data root %q", cfg.Paths.DataRoot)
	}
	if cfg.Server.Bind != "127.0.0.1:8517" {
		t.Fatalf("unexpected bind %q", cfg.Server.Bind)
	}
	state := cfg.InitialState()
	if state.Task != task.Describe || state.Interval != 1.0 || state.Playing {
		t.Fatalf("unexpected initial state %+v", state)
	}
	if cfg.SessionIdle().Minutes() != 60 {
		t.Fatalf("unexpected idle %v", cfg.SessionIdle())
	}
}

func TestLoadPrefersProjectFile(t *testing.T) {
	isolate(t)
	contents := "[playback]\ndefault_task = \"Recall\"\ninterval_seconds = 0.25\n"
	if err := os.WriteFile("attnview.toml", []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "attnview.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	state := cfg.InitialState()
	if state.Task != task.Recall {
		t.Fatalf("task = %s", state.Task)
	}
	if state.Interval != 0.3 {
		t.Fatalf("interval = %v, want 0.3", state.Interval)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	t.Setenv("ATTNVIEW_DATA_ROOT", root)
	t.Setenv("ATTNVIEW_BIND", "0.0.0.0:9000")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\ndata_root = \"/elsewhere\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataRoot != root {
		t.Fatalf("data root = %q, want %q", cfg.Paths.DataRoot, root)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" {
		t.Fatalf("bind = %q", cfg.Server.Bind)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown task", "[playback]\ndefault_task = \"sketch\"\n", "playback.default_task"},
		{"interval too long", "[playback]\ninterval_seconds = 4.5\n", "playback.interval_seconds"},
		{"negative interval", "[playback]\ninterval_seconds = -1.0\n", "playback.interval_seconds"},
		{"unknown title key", "[titles]\nsketch = \"Sketch\"\n", "titles"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"negative backups", "[logging]\nfile_max_backups = -1\n", "logging.file_max_backups"},
		{"malformed", "[paths\n", "parse config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestTitleKeysNormalized(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[titles]\n\" Compare \" = \"  Side by side \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Titles["compare"] != "Side by side" {
		t.Fatalf("unexpected titles %v", cfg.Titles)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if parsed.Server.Bind != config.Default().Server.Bind {
		t.Fatalf("sample bind %q differs from default", parsed.Server.Bind)
	}

	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample should load cleanly: exists=%v err=%v", exists, err)
	}
}

func TestLockAndLogPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/var/log/attnview"
	if got := cfg.LockPath(); got != "/var/log/attnview/attnview.lock" {
		t.Fatalf("lock path = %q", got)
	}
	if got := cfg.LogFilePath(); got != "/var/log/attnview/attnview.log" {
		t.Fatalf("log path = %q", got)
	}
	cfg.Paths.LogDir = ""
	if cfg.LogFilePath() != "" {
		t.Fatal("expected file logging disabled without log dir")
	}
}
