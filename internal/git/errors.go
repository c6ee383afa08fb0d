// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file provides error sentinel re-exports from internal/errors.
package git

import (
	gserrors "github.com/mrz1836/gitstage/internal/errors"
)

// ErrNotGitRepo is returned when no repository exists at or above a path.
var ErrNotGitRepo = gserrors.ErrNotGitRepo

// ErrBareRepository is returned when the repository found has no working tree.
var ErrBareRepository = gserrors.ErrBareRepository

// ErrNoWorkDir is returned when the working-tree root cannot be resolved.
var ErrNoWorkDir = gserrors.ErrNoWorkDir

// ErrNoHead is returned when HEAD names a branch that has no commit yet.
var ErrNoHead = gserrors.ErrNoHead

// ErrInvalidUTF8 is returned when a reference name is not valid UTF-8.
var ErrInvalidUTF8 = gserrors.ErrInvalidUTF8

// ErrInvalidPath is returned when a path cannot be used inside the working tree.
var ErrInvalidPath = gserrors.ErrInvalidPath

// ErrGitOperation wraps every failure of the underlying store.
// Use errors.Is(err, ErrGitOperation) to check for git failures in general.
var ErrGitOperation = gserrors.ErrGitOperation

// ErrIndexLocked is returned when another writer holds index.lock.
var ErrIndexLocked = gserrors.ErrIndexLocked

// ErrNestedRepository is returned when a pathspec reaches into a nested repository.
var ErrNestedRepository = gserrors.ErrNestedRepository

// ErrPathspecNoMatch is returned when a path or pattern matched nothing stageable.
var ErrPathspecNoMatch = gserrors.ErrPathspecNoMatch

// ErrLockNotStale is returned when an index.lock is too young to remove.
var ErrLockNotStale = gserrors.ErrLockNotStale
