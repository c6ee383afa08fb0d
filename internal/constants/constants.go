// Package constants provides centralized constant values used throughout gitstage.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by gitstage.
const (
	// AppHome is the hidden directory name where gitstage stores its settings and logs.
	// It is created in the user's home directory and may also exist in a project root.
	AppHome = ".gitstage"

	// LogsDir is the directory name under AppHome where log files are stored.
	LogsDir = "logs"

	// EnvPrefix is the prefix for environment variable overrides (GITSTAGE_*).
	EnvPrefix = "GITSTAGE"

	// EnvHome overrides the location of AppHome.
	EnvHome = "GITSTAGE_HOME"
)

// Git metadata file names.
const (
	// IndexFileName is the name of the staging-area file inside the metadata directory.
	IndexFileName = "index"

	// IndexLockFileName is the lock file git creates while rewriting the index.
	IndexLockFileName = "index.lock"
)

// Repository configuration keys read through git.
const (
	// ConfigKeyShowUntrackedFiles selects how untracked files are reported.
	ConfigKeyShowUntrackedFiles = "status.showUntrackedFiles"

	// ConfigKeyUserName is the committer name.
	ConfigKeyUserName = "user.name"

	// ConfigKeyUserEmail is the committer email.
	ConfigKeyUserEmail = "user.email"
)

// Lock maintenance defaults.
const (
	// DefaultLockStalenessThreshold is the age after which an index.lock is
	// considered abandoned. Normal index writes complete in well under a second.
	DefaultLockStalenessThreshold = 60 * time.Second

	// MinLockStalenessThreshold is the smallest threshold the settings accept.
	MinLockStalenessThreshold = time.Second
)
