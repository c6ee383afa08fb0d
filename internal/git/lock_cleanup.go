// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file implements explicit cleanup of abandoned index locks.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/gitstage/internal/constants"
	"github.com/mrz1836/gitstage/internal/ctxutil"
)

// DetectStaleLockFile checks if a lock file is stale (safe to remove).
// A lock file is considered stale if it exists and its modification time is
// older than the specified threshold.
//
// Returns:
//   - true, nil if the file exists and is stale
//   - false, nil if the file doesn't exist or is not stale
//   - false, error if there was an error checking the file
func DetectStaleLockFile(lockPath string, threshold time.Duration) (bool, error) {
	info, err := os.Stat(lockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat lock file %s: %w", lockPath, err)
	}
	return time.Since(info.ModTime()) > threshold, nil
}

// IndexLockPath returns the index.lock path of the repository.
func (r *Repo) IndexLockPath() string {
	return filepath.Join(r.gitDir, constants.IndexLockFileName)
}

// RemoveStaleIndexLock removes the index.lock of the repository at path if
// it is older than threshold. A missing lock is success; a young lock
// returns ErrLockNotStale and is left alone. A threshold of zero selects
// constants.DefaultLockStalenessThreshold.
//
// Staging operations never call this; a held lock is always surfaced to
// the caller as ErrIndexLocked.
func RemoveStaleIndexLock(ctx context.Context, path string, threshold time.Duration) error {
	repo, err := Open(ctx, path)
	if err != nil {
		return err
	}
	if threshold <= 0 {
		threshold = constants.DefaultLockStalenessThreshold
	}
	return removeStaleLockFile(ctx, repo.IndexLockPath(), threshold)
}

func removeStaleLockFile(ctx context.Context, lockPath string, threshold time.Duration) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	info, err := os.Stat(lockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat lock file %s: %w", lockPath, err)
	}

	age := time.Since(info.ModTime())
	if age <= threshold {
		return fmt.Errorf("%w: %s (age: %s, threshold: %s)", ErrLockNotStale, lockPath, age.Round(time.Millisecond), threshold)
	}

	if err := os.Remove(lockPath); err != nil {
		if os.IsNotExist(err) {
			// removed by its owner between stat and remove
			return nil
		}
		return fmt.Errorf("failed to remove stale lock file %s: %w", lockPath, err)
	}

	zerolog.Ctx(ctx).Warn().
		Str("path", lockPath).
		Dur("age", age).
		Msg("removed stale index lock")

	return nil
}
