package config

const (
	defaultDataRoot           = "demo_data"
	defaultLogDir             = "~/.local/share/attnview/logs"
	defaultBind               = "127.0.0.1:8517"
	defaultSessionIdleMinutes = 60
	defaultTask               = "describe"
	defaultIntervalSeconds    = 1.0
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogFileMaxSizeMB   = 10
	defaultLogFileMaxBackups  = 3

	defaultConfigPath = "~/.config/attnview/config.toml"
	projectConfigName = "attnview.toml"
	envDataRoot       = "ATTNVIEW_DATA_ROOT"
	envBind           = "ATTNVIEW_BIND"
)

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataRoot: defaultDataRoot,
			LogDir:   defaultLogDir,
		},
		Server: Server{
			Bind:               defaultBind,
			SessionIdleMinutes: defaultSessionIdleMinutes,
		},
		Playback: Playback{
			DefaultTask:     defaultTask,
			IntervalSeconds: defaultIntervalSeconds,
		},
		Titles: map[string]string{},
		Logging: Logging{
			Format:         defaultLogFormat,
			Level:          defaultLogLevel,
			FileMaxSizeMB:  defaultLogFileMaxSizeMB,
			FileMaxBackups: defaultLogFileMaxBackups,
		},
	}
}
