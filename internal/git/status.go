// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file reads the working-tree status as seen by the staging engine.
package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/gitstage/internal/ctxutil"
)

// Status is the staged/unstaged/untracked partition of the working tree.
type Status struct {
	Staged     []FileChange `json:"staged"`
	Unstaged   []FileChange `json:"unstaged"`
	Untracked  []string     `json:"untracked"`
	Conflicted []string     `json:"conflicted"`
	Branch     string       `json:"branch"`
	// Policy is the untracked-files policy the status was computed with.
	Policy ShowUntrackedFiles `json:"untracked_policy"`
}

// FileChange is one changed path.
type FileChange struct {
	Path    string     `json:"path"`
	Status  ChangeType `json:"status"`
	OldPath string     `json:"old_path,omitempty"`
}

// ChangeType is the porcelain status letter of a change.
type ChangeType string

// Change type constants for git status.
const (
	ChangeAdded       ChangeType = "A"
	ChangeModified    ChangeType = "M"
	ChangeDeleted     ChangeType = "D"
	ChangeRenamed     ChangeType = "R"
	ChangeCopied      ChangeType = "C"
	ChangeTypeChanged ChangeType = "T"
	ChangeUnmerged    ChangeType = "U"
)

// IsClean returns true if the working tree has no changes.
func (s *Status) IsClean() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 && len(s.Untracked) == 0 && len(s.Conflicted) == 0
}

// StagedCount returns the number of staged paths.
func (s *Status) StagedCount() int {
	return len(s.Staged)
}

// WorkingDirCount returns the number of paths that differ between the index
// and the working tree, untracked paths included.
func (s *Status) WorkingDirCount() int {
	return len(s.Unstaged) + len(s.Untracked)
}

// GetStatus computes the status of the repository at path using mode for
// untracked files.
func GetStatus(ctx context.Context, path string, mode ShowUntrackedFiles) (*Status, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return repo.Status(ctx, mode)
}

// GetStatusWithPolicy computes the status of the repository at path using
// the untracked-files policy from its configuration.
func GetStatusWithPolicy(ctx context.Context, path string) (*Status, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return repo.Status(ctx, UntrackedFilesConfig(ctx, repo))
}

// Status computes the working-tree status with the given untracked policy.
func (r *Repo) Status(ctx context.Context, mode ShowUntrackedFiles) (*Status, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	workDir, err := r.WorkDir()
	if err != nil {
		return nil, err
	}

	output, err := runGit(ctx, workDir, "status", "--porcelain", "--branch", mode.StatusFlag())
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	status := parseStatus(output)
	status.Policy = mode

	zerolog.Ctx(ctx).Debug().
		Str("work_dir", workDir).
		Str("untracked", mode.String()).
		Int("staged", status.StagedCount()).
		Int("working_dir", status.WorkingDirCount()).
		Msg("computed status")

	return status, nil
}

// parseStatus parses git status --porcelain --branch output.
func parseStatus(output string) *Status {
	status := &Status{
		Staged:     []FileChange{},
		Unstaged:   []FileChange{},
		Untracked:  []string{},
		Conflicted: []string{},
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "## ") {
			parseBranchLine(line, status)
			continue
		}
		if len(line) < 4 {
			continue
		}

		// XY PATH or XY ORIG -> PATH
		x, y := line[0], line[1]
		path := line[3:]

		var oldPath string
		if x == 'R' || x == 'C' {
			if parts := strings.SplitN(path, " -> ", 2); len(parts) == 2 {
				oldPath = unquotePath(parts[0])
				path = parts[1]
			}
		}
		path = unquotePath(path)

		switch {
		case x == '?' && y == '?':
			status.Untracked = append(status.Untracked, path)
			continue
		case x == '!' && y == '!':
			continue
		case isUnmerged(x, y):
			status.Conflicted = append(status.Conflicted, path)
			continue
		}

		if x != ' ' {
			status.Staged = append(status.Staged, FileChange{
				Path:    path,
				Status:  ChangeType(string(x)),
				OldPath: oldPath,
			})
		}
		if y != ' ' {
			status.Unstaged = append(status.Unstaged, FileChange{
				Path:    path,
				Status:  ChangeType(string(y)),
				OldPath: oldPath,
			})
		}
	}

	return status
}

// parseBranchLine reads the branch name from the "## " header.
// Formats: "## main", "## main...origin/main [ahead 1]",
// "## No commits yet on main", "## HEAD (no branch)".
func parseBranchLine(line string, status *Status) {
	line = strings.TrimPrefix(line, "## ")
	for _, prefix := range []string{"No commits yet on ", "Initial commit on "} {
		if strings.HasPrefix(line, prefix) {
			status.Branch = strings.TrimPrefix(line, prefix)
			return
		}
	}
	if strings.HasPrefix(line, "HEAD (no branch)") {
		status.Branch = "HEAD"
		return
	}
	branch, _, _ := strings.Cut(line, "...")
	status.Branch = branch
}

// isUnmerged reports whether an XY pair denotes a merge conflict.
func isUnmerged(x, y byte) bool {
	switch string([]byte{x, y}) {
	case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
		return true
	default:
		return false
	}
}

// unquotePath undoes git's C-style quoting of paths with special characters.
func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		if unq, err := strconv.Unquote(p); err == nil {
			return unq
		}
	}
	return p
}
