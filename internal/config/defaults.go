package config

import "github.com/mrz1836/gitstage/internal/constants"

// DefaultConfig returns a new Config with default values.
// These are the base layer that settings files and environment variables
// override.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			FileEnabled: true,
			MaxSizeMB:   constants.LogMaxSizeMB,
			MaxBackups:  constants.LogMaxBackups,
			MaxAgeDays:  constants.LogMaxAgeDays,
			Compress:    constants.LogCompress,
		},
		Stage: StageConfig{
			UpdateTrackedOnly: false,
		},
		Locks: LocksConfig{
			StaleThreshold: constants.DefaultLockStalenessThreshold,
		},
	}
}
