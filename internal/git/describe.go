// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file gathers a read-only summary of a repository.
package git

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/gitstage/internal/constants"
)

// RepoInfo summarizes a repository for display.
type RepoInfo struct {
	WorkDir   string             `json:"work_dir"`
	GitDir    string             `json:"git_dir"`
	HasHead   bool               `json:"has_head"`
	Head      Head               `json:"head"`
	Untracked ShowUntrackedFiles `json:"untracked_policy"`
	UserName  string             `json:"user_name,omitempty"`
	UserEmail string             `json:"user_email,omitempty"`
}

// Describe opens the repository at path and gathers its HEAD, untracked
// policy and identity. The lookups only read, so they run concurrently.
// An unborn branch is reported as HasHead=false rather than an error.
func Describe(ctx context.Context, path string) (*RepoInfo, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}

	workDir, err := repo.WorkDir()
	if err != nil {
		return nil, err
	}

	info := &RepoInfo{
		WorkDir: workDir,
		GitDir:  repo.GitDir(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		head, err := repo.HeadTuple()
		if errors.Is(err, ErrNoHead) {
			name, nameErr := repo.HeadRefName()
			if nameErr != nil {
				return nameErr
			}
			info.Head = Head{Name: name}
			return nil
		}
		if err != nil {
			return err
		}
		info.HasHead = true
		info.Head = head
		return nil
	})

	g.Go(func() error {
		info.Untracked = UntrackedFilesConfig(gctx, repo)
		return nil
	})

	g.Go(func() error {
		name, _, err := GetConfigString(gctx, repo, constants.ConfigKeyUserName)
		info.UserName = name
		return err
	})

	g.Go(func() error {
		email, _, err := GetConfigString(gctx, repo, constants.ConfigKeyUserEmail)
		info.UserEmail = email
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return info, nil
}
