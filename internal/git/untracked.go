// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file derives the untracked-files policy from configuration.
package git

import (
	"context"

	"github.com/mrz1836/gitstage/internal/constants"
)

// ShowUntrackedFiles is the policy selected by status.showUntrackedFiles.
//
// See https://git-scm.com/docs/git-config#Documentation/git-config.txt-statusshowUntrackedFiles
type ShowUntrackedFiles int

const (
	// UntrackedAll includes untracked files and recurses into untracked directories.
	// It is the zero value: when the policy cannot be determined, show more.
	UntrackedAll ShowUntrackedFiles = iota
	// UntrackedNormal includes untracked files but reports an untracked
	// directory as a single entry.
	UntrackedNormal
	// UntrackedNo excludes untracked files entirely.
	UntrackedNo
)

// String returns the configuration value for the policy.
func (s ShowUntrackedFiles) String() string {
	switch s {
	case UntrackedNo:
		return "no"
	case UntrackedNormal:
		return "normal"
	case UntrackedAll:
		return "all"
	default:
		return "all"
	}
}

// MarshalText encodes the policy as its configuration value.
func (s ShowUntrackedFiles) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IncludeUntracked reports whether untracked files are considered at all.
func (s ShowUntrackedFiles) IncludeUntracked() bool {
	return s == UntrackedNormal || s == UntrackedAll
}

// RecurseUntrackedDirs reports whether untracked directories are expanded
// into their individual files.
func (s ShowUntrackedFiles) RecurseUntrackedDirs() bool {
	return s == UntrackedAll
}

// StatusFlag returns the --untracked-files argument for git status.
func (s ShowUntrackedFiles) StatusFlag() string {
	return "--untracked-files=" + s.String()
}

// ParseShowUntrackedFiles maps a raw configuration value to a policy.
// Only the exact values "no" and "normal" select a restrictive policy;
// everything else, including an absent value, selects UntrackedAll.
func ParseShowUntrackedFiles(value string, ok bool) ShowUntrackedFiles {
	if !ok {
		return UntrackedAll
	}
	switch value {
	case "no":
		return UntrackedNo
	case "normal":
		return UntrackedNormal
	default:
		return UntrackedAll
	}
}

// UntrackedFilesConfig resolves the untracked-files policy for repo.
// It never fails: lookup problems fold into UntrackedAll.
func UntrackedFilesConfig(ctx context.Context, repo *Repo) ShowUntrackedFiles {
	value, ok, err := GetConfigString(ctx, repo, constants.ConfigKeyShowUntrackedFiles)
	if err != nil {
		return UntrackedAll
	}
	return ParseShowUntrackedFiles(value, ok)
}

// UntrackedFilesConfigByPath opens the repository at path and resolves its
// untracked-files policy. Only a failure to open the repository is returned.
func UntrackedFilesConfigByPath(ctx context.Context, path string) (ShowUntrackedFiles, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return UntrackedAll, err
	}
	return UntrackedFilesConfig(ctx, repo), nil
}
