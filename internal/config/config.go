// Package config provides gitstage's own settings with layered precedence.
//
// Settings sources are loaded in the following order (highest precedence first):
//  1. Environment variables (GITSTAGE_* prefix, e.g. GITSTAGE_LOG_MAX_SIZE_MB)
//  2. Project settings (<repo>/.gitstage/config.yaml)
//  3. Global settings (~/.gitstage/config.yaml)
//  4. Built-in defaults
//
// These are settings for the tool itself. Repository configuration such as
// status.showUntrackedFiles is only ever read through git.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root settings structure for gitstage.
type Config struct {
	// Log contains settings for the CLI log file.
	Log LogConfig `yaml:"log" mapstructure:"log" json:"log"`

	// Stage contains defaults for staging commands.
	Stage StageConfig `yaml:"stage" mapstructure:"stage" json:"stage"`

	// Locks contains settings for index lock maintenance.
	Locks LocksConfig `yaml:"locks" mapstructure:"locks" json:"locks"`
}

// LogConfig controls the rotating CLI log file.
type LogConfig struct {
	// FileEnabled writes logs to ~/.gitstage/logs/gitstage.log in addition to stderr.
	// Default: true
	FileEnabled bool `yaml:"file_enabled" mapstructure:"file_enabled" json:"file_enabled"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb" json:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	// Default: 3
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups" json:"max_backups"`

	// MaxAgeDays is the number of days to keep rotated files.
	// Default: 28
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days" json:"max_age_days"`

	// Compress gzips rotated files.
	// Default: true
	Compress bool `yaml:"compress" mapstructure:"compress" json:"compress"`
}

// StageConfig holds staging defaults.
type StageConfig struct {
	// UpdateTrackedOnly makes add-all refresh tracked paths only unless the
	// --update flag says otherwise.
	// Default: false
	UpdateTrackedOnly bool `yaml:"update_tracked_only" mapstructure:"update_tracked_only" json:"update_tracked_only"`
}

// LocksConfig holds index lock maintenance settings.
type LocksConfig struct {
	// StaleThreshold is the age after which the unlock command may remove
	// an index.lock.
	// Default: 60s, minimum 1s
	StaleThreshold time.Duration `yaml:"stale_threshold" mapstructure:"stale_threshold" json:"stale_threshold"`
}
