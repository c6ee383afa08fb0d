// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file resolves repository handles from filesystem paths.
package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/rs/zerolog"

	"github.com/mrz1836/gitstage/internal/ctxutil"
	gserrors "github.com/mrz1836/gitstage/internal/errors"
)

// dotGit is the conventional name of a metadata directory inside a working tree.
const dotGit = ".git"

// Repo is a handle bound to one non-bare repository.
//
// A Repo is created per call by Open and is never cached or shared: every
// operation that accepts a path opens its own. The handle holds no index
// state; each index mutation reads and rewrites the index on disk.
type Repo struct {
	repo    *gogit.Repository
	gitDir  string
	workDir string
}

// Open opens the repository located at or above path.
//
// Returns ErrNotGitRepo if no repository is found and ErrBareRepository if
// the repository has no working tree. Opening a ".git" directory of a
// non-bare repository resolves to its enclosing working tree.
func Open(ctx context.Context, path string) (*Repo, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("repository path: %w", gserrors.ErrEmptyValue)
	}

	r, err := plainOpen(path)
	if err != nil {
		return nil, err
	}

	wt, err := r.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		if parent, ok := enclosingWorkTree(r); ok {
			return Open(ctx, parent)
		}
		return nil, fmt.Errorf("%s: %w", path, ErrBareRepository)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve worktree for %s: %w: %w", path, err, ErrGitOperation)
	}

	handle := &Repo{
		repo:    r,
		gitDir:  storageRoot(r),
		workDir: wt.Filesystem.Root(),
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("work_dir", handle.workDir).
		Str("git_dir", handle.gitDir).
		Msg("opened repository")

	return handle, nil
}

// plainOpen opens path as-is first, so a bare repository directory is seen
// as bare instead of being skipped by the ancestor search, then falls back
// to go-git's ancestor detection.
func plainOpen(path string) (*gogit.Repository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		r, err = gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
			DetectDotGit:          true,
			EnableDotGitCommonDir: true,
		})
	}
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotGitRepo)
	}
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w: %w", path, err, ErrGitOperation)
	}
	return r, nil
}

// enclosingWorkTree reports the working tree of a repository that was opened
// through its ".git" directory. git treats a metadata directory named .git
// with core.bare unset or false as belonging to its parent directory.
func enclosingWorkTree(r *gogit.Repository) (string, bool) {
	gitDir := storageRoot(r)
	if gitDir == "" || filepath.Base(gitDir) != dotGit {
		return "", false
	}
	cfg, err := r.Config()
	if err != nil || cfg.Core.IsBare {
		return "", false
	}
	return filepath.Dir(gitDir), true
}

// storageRoot returns the on-disk metadata directory backing r.
func storageRoot(r *gogit.Repository) string {
	s, ok := r.Storer.(*filesystem.Storage)
	if !ok {
		return ""
	}
	return s.Filesystem().Root()
}

// GitDir returns the path to the repository's metadata directory.
func (r *Repo) GitDir() string {
	return r.gitDir
}

// WorkDir returns the working-tree root.
// Returns ErrNoWorkDir if the handle carries no working tree.
func (r *Repo) WorkDir() (string, error) {
	if r == nil || r.workDir == "" {
		return "", ErrNoWorkDir
	}
	return r.workDir, nil
}

// IsRepo reports whether path is inside a non-bare or bare repository.
func IsRepo(ctx context.Context, path string) bool {
	if path == "" || ctxutil.Canceled(ctx) != nil {
		return false
	}
	_, err := plainOpen(path)
	return err == nil
}

// IsBareRepo reports whether the repository at path is bare.
// Unlike Open it does not reject bare repositories.
func IsBareRepo(ctx context.Context, path string) (bool, error) {
	_, err := Open(ctx, path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrBareRepository):
		return true, nil
	default:
		return false, err
	}
}

// RepoDir returns the metadata directory of the repository at path.
func RepoDir(ctx context.Context, path string) (string, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return "", err
	}
	return repo.GitDir(), nil
}

// RepoWorkDir returns the working-tree root of the repository at path.
// Returns ErrInvalidPath if the root cannot be represented as UTF-8 text.
func RepoWorkDir(ctx context.Context, path string) (string, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return "", err
	}
	workDir, err := repo.WorkDir()
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(workDir) {
		return "", fmt.Errorf("working directory %q: %w", workDir, ErrInvalidPath)
	}
	return workDir, nil
}
