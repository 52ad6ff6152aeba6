package config

const (
	defaultLogDir        = "~/.local/share/scrawl/logs"
	defaultConsoleLevel  = "info"
	defaultFileLevel     = "info"
	defaultColorMode     = "auto"
	defaultRetentionDays = 60
	defaultHistoryBuffer = 512
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogDir:        defaultLogDir,
		ConsoleLevel:  defaultConsoleLevel,
		FileLevel:     defaultFileLevel,
		Color:         defaultColorMode,
		RetentionDays: defaultRetentionDays,
		History: History{
			Enabled: false,
			Buffer:  defaultHistoryBuffer,
		},
	}
}
