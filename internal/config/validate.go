package config

import (
	"github.com/mrz1836/gitstage/internal/constants"
	"github.com/mrz1836/gitstage/internal/errors"
)

// Validate checks the settings for invalid values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - log sizes, backup counts and ages must be positive
//   - locks.stale_threshold must be at least one second
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateLogConfig(&cfg.Log); err != nil {
		return err
	}
	return validateLocksConfig(&cfg.Locks)
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.MaxSizeMB <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_backups must be positive, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_age_days must be positive, got %d", cfg.MaxAgeDays)
	}
	return nil
}

func validateLocksConfig(cfg *LocksConfig) error {
	if cfg.StaleThreshold < constants.MinLockStalenessThreshold {
		return errors.Wrapf(errors.ErrConfigInvalidLocks,
			"locks.stale_threshold must be at least %s, got %s",
			constants.MinLockStalenessThreshold, cfg.StaleThreshold)
	}
	return nil
}
