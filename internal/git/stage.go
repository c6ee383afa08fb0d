// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file implements index (staging area) mutations.
package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/mrz1836/gitstage/internal/ctxutil"
)

// Each mutation below is a single git invocation that reads the index,
// applies the change and writes it back through index.lock. Either the
// whole change lands or the index is left untouched.

// StageAddFile stages the working-tree content of one file.
// The path is relative to the working-tree root. Ignore rules do not apply.
// A missing path, a directory or an unreadable file is an error.
func StageAddFile(ctx context.Context, path, relPath string) error {
	repo, err := Open(ctx, path)
	if err != nil {
		return err
	}
	return repo.AddFile(ctx, relPath)
}

// StageAddAll stages every path matching pattern.
//
// With updateTrackedOnly set, only already tracked paths are refreshed,
// including staging their deletions; untracked paths are never added.
// Otherwise tracked and untracked matches are added with default options:
// ignored paths are skipped and deleted tracked paths are removed from the
// index.
//
// If the match set contains a nested repository the call fails with
// ErrNestedRepository and nothing is staged, whether or not that
// repository has a commit.
func StageAddAll(ctx context.Context, path, pattern string, updateTrackedOnly bool) error {
	repo, err := Open(ctx, path)
	if err != nil {
		return err
	}
	return repo.AddAll(ctx, pattern, updateTrackedOnly)
}

// StageAddRemoved removes relPath from the index to record its deletion.
// The working tree is not touched.
func StageAddRemoved(ctx context.Context, path, relPath string) error {
	repo, err := Open(ctx, path)
	if err != nil {
		return err
	}
	return repo.RemoveFromIndex(ctx, relPath)
}

// StageReset unstages relPath, restoring its index entry from HEAD.
// On a branch with no commits the entry is dropped instead.
func StageReset(ctx context.Context, path, relPath string) error {
	repo, err := Open(ctx, path)
	if err != nil {
		return err
	}
	return repo.ResetPath(ctx, relPath)
}

// AddFile stages one file. See StageAddFile.
func (r *Repo) AddFile(ctx context.Context, relPath string) error {
	if err := validateRelPath(relPath); err != nil {
		return err
	}
	return r.mutateIndex(ctx, "add file", relPath, "update-index", "--add", "--", filepath.ToSlash(relPath))
}

// AddAll stages paths matching pattern. See StageAddAll.
func (r *Repo) AddAll(ctx context.Context, pattern string, updateTrackedOnly bool) error {
	if pattern == "" || !utf8.ValidString(pattern) {
		return fmt.Errorf("pattern %q: %w", pattern, ErrInvalidPath)
	}

	args := []string{"add", "--update", "--", pattern}
	if !updateTrackedOnly {
		if err := r.checkNestedRepos(ctx, pattern); err != nil {
			return err
		}
		args = []string{"add", "--", pattern}
	}

	err := r.mutateIndex(ctx, "add all", pattern, args...)
	if isNoMatch(err) {
		zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Msg("pattern matched no paths")
		return nil
	}
	return err
}

// RemoveFromIndex drops the index entry for relPath. See StageAddRemoved.
func (r *Repo) RemoveFromIndex(ctx context.Context, relPath string) error {
	if err := validateRelPath(relPath); err != nil {
		return err
	}
	return r.mutateIndex(ctx, "stage removal", relPath, "update-index", "--force-remove", "--", filepath.ToSlash(relPath))
}

// ResetPath unstages relPath. See StageReset.
func (r *Repo) ResetPath(ctx context.Context, relPath string) error {
	if err := validateRelPath(relPath); err != nil {
		return err
	}
	rel := filepath.ToSlash(relPath)

	_, err := r.HeadID()
	switch {
	case errors.Is(err, ErrNoHead):
		return r.mutateIndex(ctx, "unstage", relPath, "rm", "--cached", "-q", "--", rel)
	case err != nil:
		return err
	default:
		return r.mutateIndex(ctx, "unstage", relPath, "reset", "-q", "--", rel)
	}
}

// checkNestedRepos fails with ErrNestedRepository when an untracked,
// non-ignored path matching pattern is the root of another repository.
// git lists such a root as a single entry with a trailing slash and would
// otherwise record it as a gitlink next to the rest of the match set.
func (r *Repo) checkNestedRepos(ctx context.Context, pattern string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	workDir, err := r.WorkDir()
	if err != nil {
		return err
	}

	out, err := runGit(ctx, workDir, "ls-files", "-z", "--others", "--exclude-standard", "--", pattern)
	if err != nil {
		return fmt.Errorf("add all %s: %w", pattern, err)
	}

	for _, entry := range strings.Split(out, "\x00") {
		if !strings.HasSuffix(entry, "/") {
			continue
		}
		zerolog.Ctx(ctx).Debug().
			Str("pattern", pattern).
			Str("nested", entry).
			Msg("pattern reaches a nested repository")
		return fmt.Errorf("add all %s: %s is a nested repository: %w: %w",
			pattern, strings.TrimSuffix(entry, "/"), ErrNestedRepository, ErrGitOperation)
	}
	return nil
}

// mutateIndex runs one index-writing git command in the working tree.
func (r *Repo) mutateIndex(ctx context.Context, op, target string, args ...string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	workDir, err := r.WorkDir()
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("operation", op).
		Str("target", target).
		Str("work_dir", workDir).
		Msg("mutating index")

	if _, err := runGit(ctx, workDir, args...); err != nil {
		logger.Debug().
			Str("operation", op).
			Str("target", target).
			Err(err).
			Msg("index mutation failed")
		return fmt.Errorf("%s %s: %w", op, target, err)
	}
	return nil
}

// validateRelPath rejects paths that are not valid UTF-8, are absolute, or
// climb out of the working tree.
func validateRelPath(relPath string) error {
	if relPath == "" || !utf8.ValidString(relPath) {
		return fmt.Errorf("path %q: %w", relPath, ErrInvalidPath)
	}
	if filepath.IsAbs(relPath) || strings.HasPrefix(relPath, "/") {
		return fmt.Errorf("path %q is absolute: %w", relPath, ErrInvalidPath)
	}
	clean := filepath.Clean(relPath)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the working tree: %w", relPath, ErrInvalidPath)
	}
	return nil
}

// isNoMatch reports whether err is git refusing a pathspec that matched
// nothing. An empty match set is not a failure for bulk staging.
func isNoMatch(err error) bool {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return strings.Contains(strings.ToLower(cmdErr.Stderr), "did not match any files")
}
