package config

const (
	defaultDriveIndex        = 0
	defaultDevice            = "/dev/sr0"
	defaultLogDir            = "~/.local/share/cdplay/logs"
	defaultLockDir           = "~/.local/state/cdplay"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultWatchPollInterval = 2
	defaultWatchUseNetlink   = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Drive: Drive{
			Index:  defaultDriveIndex,
			Device: defaultDevice,
		},
		Paths: Paths{
			LogDir:  defaultLogDir,
			LockDir: defaultLockDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Watch: Watch{
			PollInterval: defaultWatchPollInterval,
			UseNetlink:   defaultWatchUseNetlink,
		},
	}
}
