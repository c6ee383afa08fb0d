package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/gitstage/internal/constants"
	"github.com/mrz1836/gitstage/internal/errors"
)

// newViperInstance creates a Viper instance with the GITSTAGE_ env prefix,
// the dot-to-underscore key replacer and all defaults registered.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can resolve it.
// Keys must match the mapstructure tag names.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("log.file_enabled", d.Log.FileEnabled)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("stage.update_tracked_only", d.Stage.UpdateTrackedOnly)

	v.SetDefault("locks.stale_threshold", d.Locks.StaleThreshold.String())
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption lets settings files spell durations as "90s" or "2m".
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// Load reads settings from all sources with proper precedence. projectDir
// is the repository work tree whose .gitstage/config.yaml applies; pass ""
// to skip the project layer.
//
// Missing settings files are not errors.
func Load(ctx context.Context, projectDir string) (*Config, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		// No home directory: defaults and environment still apply.
		globalPath = ""
	}

	projectPath := ""
	if projectDir != "" {
		projectPath = ProjectConfigPath(projectDir)
	}

	cfg, err := LoadFromPaths(ctx, projectPath, globalPath)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("global", globalPath).
		Str("project", projectPath).
		Dur("locks.stale_threshold", cfg.Locks.StaleThreshold).
		Bool("stage.update_tracked_only", cfg.Stage.UpdateTrackedOnly).
		Msg("settings loaded")

	return cfg, nil
}

// LoadFromPaths loads settings from specific files. projectConfigPath has
// higher priority than globalConfigPath; either may be empty or missing.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if err := readConfigFile(v, globalConfigPath, false); err != nil {
		return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
	}
	if err := readConfigFile(v, projectConfigPath, true); err != nil {
		return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
	}

	return unmarshalAndValidate(v)
}

// readConfigFile reads (or merges) path into v, skipping absent files.
func readConfigFile(v *viper.Viper, path string, merge bool) error {
	if path == "" || !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	var err error
	if merge {
		err = v.MergeInConfig()
	} else {
		err = v.ReadInConfig()
	}
	if err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// unmarshalAndValidate unmarshals viper settings into Config and validates them.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
