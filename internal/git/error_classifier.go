// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file classifies git stderr output into error types.
package git

import "strings"

// ErrorType represents the classification of a git error.
type ErrorType int

const (
	// ErrorTypeUnknown indicates the error could not be classified.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeIndexLocked indicates another process holds index.lock.
	ErrorTypeIndexLocked
	// ErrorTypeNestedRepository indicates a pathspec reached a nested repository.
	ErrorTypeNestedRepository
	// ErrorTypeNotARepository indicates git found no repository.
	ErrorTypeNotARepository
	// ErrorTypeBadConfig indicates a configuration file could not be parsed.
	ErrorTypeBadConfig
	// ErrorTypePathspec indicates a path or pattern could not be staged as given.
	ErrorTypePathspec
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeUnknown:
		return "unknown"
	case ErrorTypeIndexLocked:
		return "index_locked"
	case ErrorTypeNestedRepository:
		return "nested_repository"
	case ErrorTypeNotARepository:
		return "not_a_repository"
	case ErrorTypeBadConfig:
		return "bad_config"
	case ErrorTypePathspec:
		return "pathspec"
	default:
		return "unknown"
	}
}

// Sentinel returns the sentinel error for this type, or nil when the type
// has no more precise sentinel than ErrGitOperation.
func (e ErrorType) Sentinel() error {
	switch e {
	case ErrorTypeIndexLocked:
		return ErrIndexLocked
	case ErrorTypeNestedRepository:
		return ErrNestedRepository
	case ErrorTypeNotARepository:
		return ErrNotGitRepo
	case ErrorTypePathspec:
		return ErrPathspecNoMatch
	case ErrorTypeUnknown, ErrorTypeBadConfig:
		return nil
	default:
		return nil
	}
}

// PatternMatcher checks if a string contains any of a list of patterns.
// It performs case-insensitive matching on the lowercased input.
type PatternMatcher struct {
	patterns []string
}

// NewPatternMatcher creates a new PatternMatcher with the given patterns.
// All patterns should be lowercase for consistent matching.
func NewPatternMatcher(patterns ...string) *PatternMatcher {
	return &PatternMatcher{patterns: patterns}
}

// Matches returns true if the input string contains any of the patterns.
func (m *PatternMatcher) Matches(s string) bool {
	return m.MatchesLower(strings.ToLower(s))
}

// MatchesLower checks if an already-lowercased string matches any pattern.
func (m *PatternMatcher) MatchesLower(lower string) bool {
	for _, pattern := range m.patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

//nolint:gochecknoglobals // Package-level immutable pattern matchers
var (
	// indexLockPatterns matches a held index.lock.
	indexLockPatterns = NewPatternMatcher(
		"index.lock': file exists",
		"another git process seems to be running",
	)

	// nestedRepoPatterns matches refusals to stage across a repository boundary.
	nestedRepoPatterns = NewPatternMatcher(
		"does not have a commit checked out",
		"is in submodule",
		"is beyond a symbolic link",
	)

	// notRepoPatterns matches git failing to find a repository.
	notRepoPatterns = NewPatternMatcher(
		"not a git repository",
	)

	// badConfigPatterns matches unreadable configuration files.
	badConfigPatterns = NewPatternMatcher(
		"bad config line",
		"bad config file",
		"bad numeric config value",
		"unable to parse",
	)

	// pathspecPatterns matches paths that could not be staged as given.
	pathspecPatterns = NewPatternMatcher(
		"did not match any file",
		"does not exist and --remove not passed",
		"is a directory - add files inside instead",
		"unable to process path",
		"is outside repository",
	)
)

// ClassifyError determines the error type from git stderr output.
//
// Classification priority (first match wins):
//  1. Index lock (the write never started)
//  2. Nested repository (whole add aborted)
//  3. Not a repository
//  4. Bad config
//  5. Pathspec
func ClassifyError(errStr string) ErrorType {
	lower := strings.ToLower(errStr)
	switch {
	case indexLockPatterns.MatchesLower(lower):
		return ErrorTypeIndexLocked
	case nestedRepoPatterns.MatchesLower(lower):
		return ErrorTypeNestedRepository
	case notRepoPatterns.MatchesLower(lower):
		return ErrorTypeNotARepository
	case badConfigPatterns.MatchesLower(lower):
		return ErrorTypeBadConfig
	case pathspecPatterns.MatchesLower(lower):
		return ErrorTypePathspec
	default:
		return ErrorTypeUnknown
	}
}

// MatchesLockFileError checks if the error string indicates a held index.lock.
func MatchesLockFileError(errStr string) bool {
	return indexLockPatterns.Matches(errStr)
}
