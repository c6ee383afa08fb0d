package constants

// Log file names.
const (
	// CLILogFileName is the name of the rotating CLI log file.
	// This file is located in ~/.gitstage/logs/gitstage.log
	CLILogFileName = "gitstage.log"
)

// Log rotation defaults used when settings do not override them.
const (
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days rotated files are kept.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// Configuration file names.
const (
	// ConfigFileName is the name of the settings file in AppHome and in
	// the project's .gitstage directory.
	ConfigFileName = "config.yaml"
)
