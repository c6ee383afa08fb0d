// Package errors provides centralized error handling for gitstage.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrNotGitRepo indicates no repository was found at or above the given path.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrBareRepository indicates the repository has no working tree.
	// Every staging and file operation requires one.
	ErrBareRepository = errors.New("bare repository not supported")

	// ErrNoWorkDir indicates the working-tree root could not be resolved.
	ErrNoWorkDir = errors.New("repository has no working directory")

	// ErrNoHead indicates HEAD points at a branch with no commit yet
	// (freshly initialized repository).
	ErrNoHead = errors.New("repository has no HEAD commit")

	// ErrInvalidUTF8 indicates a reference name or path is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrInvalidPath indicates a path cannot be used relative to the working tree.
	ErrInvalidPath = errors.New("invalid path")

	// ErrGitOperation indicates that a lower-level git operation failed.
	// Every failure of the underlying store that is not classified
	// more precisely wraps this error.
	ErrGitOperation = errors.New("git operation failed")

	// ErrIndexLocked indicates the index could not be written because
	// another writer holds index.lock.
	ErrIndexLocked = errors.New("index is locked by another process")

	// ErrNestedRepository indicates a pathspec reached into a separate
	// repository nested inside the working tree.
	ErrNestedRepository = errors.New("pathspec crosses into a nested repository")

	// ErrPathspecNoMatch indicates a path or pattern matched nothing git could stage.
	ErrPathspecNoMatch = errors.New("pathspec did not match any files")

	// ErrLockNotStale indicates an index.lock is too young to be removed safely.
	ErrLockNotStale = errors.New("lock file is not stale")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrConfigInvalidLocks indicates an invalid lock configuration value.
	ErrConfigInvalidLocks = errors.New("invalid locks configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
