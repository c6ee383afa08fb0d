// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file resolves HEAD to a reference name and commit id.
package git

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing"
)

// CommitID identifies a commit object.
type CommitID plumbing.Hash

// String returns the full hex form of the id.
func (id CommitID) String() string {
	return plumbing.Hash(id).String()
}

// Short returns the first seven hex characters of the id.
func (id CommitID) Short() string {
	return id.String()[:7]
}

// MarshalText encodes the id as hex.
func (id CommitID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// IsZero reports whether id is the zero hash.
func (id CommitID) IsZero() bool {
	return plumbing.Hash(id).IsZero()
}

// Head is the reference HEAD points to and the commit it resolves to.
type Head struct {
	// Name is the full reference name (e.g. refs/heads/main), or HEAD when detached.
	Name string `json:"name"`
	// ID is the commit the reference points to.
	ID CommitID `json:"id"`
}

// HeadID resolves HEAD to a commit id.
// Returns ErrNoHead when HEAD names a branch that has no commit yet.
func (r *Repo) HeadID() (CommitID, error) {
	ref, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return CommitID{}, ErrNoHead
	}
	if err != nil {
		return CommitID{}, fmt.Errorf("resolve HEAD: %w: %w", err, ErrGitOperation)
	}
	return CommitID(ref.Hash()), nil
}

// HeadRefName returns the full name of the reference HEAD points to.
// A detached HEAD is reported as "HEAD".
func (r *Repo) HeadRefName() (string, error) {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w: %w", err, ErrGitOperation)
	}

	name := ref.Name()
	if ref.Type() == plumbing.SymbolicReference {
		name = ref.Target()
	}
	return decodeRefName(string(name))
}

// HeadTuple resolves HEAD to both its reference name and commit id.
func (r *Repo) HeadTuple() (Head, error) {
	id, err := r.HeadID()
	if err != nil {
		return Head{}, err
	}
	name, err := r.HeadRefName()
	if err != nil {
		return Head{}, err
	}
	return Head{Name: name, ID: id}, nil
}

// GetHead opens the repository at path and resolves HEAD to a commit id.
func GetHead(ctx context.Context, path string) (CommitID, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return CommitID{}, err
	}
	return repo.HeadID()
}

// GetHeadTuple opens the repository at path and resolves HEAD to its
// reference name and commit id.
func GetHeadTuple(ctx context.Context, path string) (Head, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return Head{}, err
	}
	return repo.HeadTuple()
}

// decodeRefName rejects reference names that are not valid UTF-8 text.
func decodeRefName(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("reference name %q: %w", name, ErrInvalidUTF8)
	}
	return name, nil
}
