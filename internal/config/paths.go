package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/gitstage/internal/constants"
	"github.com/mrz1836/gitstage/internal/errors"
)

// GlobalConfigDir returns the gitstage home directory, normally ~/.gitstage.
// GITSTAGE_HOME overrides it.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	if dir := os.Getenv(constants.EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// GlobalConfigPath returns the full path to the global settings file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the settings file path for the project rooted
// at projectDir.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, constants.AppHome, constants.ConfigFileName)
}

// LogsDir returns the directory holding CLI log files.
func LogsDir() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir), nil
}
