package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Order matters: the refined git errors come before ErrGitOperation,
// which they wrap.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Repository
	// ===================
	{
		err: ErrNotGitRepo,
		info: ErrorInfo{
			Message: "Not a git repository (or any of the parent directories).",
			Action:  "Run the command from inside a repository or pass --repo.",
		},
	},
	{
		err: ErrBareRepository,
		info: ErrorInfo{
			Message: "Bare repositories have no working tree and cannot be staged into.",
			Action:  "Point --repo at a clone with a working tree.",
		},
	},
	{
		err: ErrNoWorkDir,
		info: ErrorInfo{
			Message: "The repository working directory could not be resolved.",
		},
	},
	{
		err: ErrNoHead,
		info: ErrorInfo{
			Message: "HEAD does not point to a commit yet.",
			Action:  "Create the first commit, then retry.",
		},
	},

	// ===================
	// Index
	// ===================
	{
		err: ErrIndexLocked,
		info: ErrorInfo{
			Message: "Another git process is writing the index.",
			Action:  "Wait for it to finish. If no git process is running, run 'gitstage unlock'.",
		},
	},
	{
		err: ErrNestedRepository,
		info: ErrorInfo{
			Message: "The pattern reaches into a nested repository; nothing was staged.",
			Action:  "Narrow the pattern, or register the nested repository as a submodule.",
		},
	},
	{
		err: ErrPathspecNoMatch,
		info: ErrorInfo{
			Message: "The path or pattern did not match any files.",
			Action:  "Check the path is relative to the repository root.",
		},
	},
	{
		err: ErrLockNotStale,
		info: ErrorInfo{
			Message: "The index lock is recent and may belong to a running git process.",
			Action:  "Retry later or lower --threshold if you are sure nothing is running.",
		},
	},
	{
		err: ErrGitOperation,
		info: ErrorInfo{
			Message: "A git operation failed.",
			Action:  "Re-run with --verbose to see the git output.",
		},
	},

	// ===================
	// Input
	// ===================
	{
		err: ErrInvalidUTF8,
		info: ErrorInfo{
			Message: "A reference name or path is not valid UTF-8.",
		},
	},
	{
		err: ErrInvalidPath,
		info: ErrorInfo{
			Message: "The path is not a valid location inside the working tree.",
			Action:  "Use a relative path that stays inside the repository.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was empty.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},

	// ===================
	// Settings
	// ===================
	{
		err: ErrConfigInvalidLog,
		info: ErrorInfo{
			Message: "The log settings are invalid.",
			Action:  "Check the log section of ~/.gitstage/config.yaml.",
		},
	},
	{
		err: ErrConfigInvalidLocks,
		info: ErrorInfo{
			Message: "The lock settings are invalid.",
			Action:  "locks.stale_threshold must be at least one second.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries a direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve the issue. The action is empty when
// there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
