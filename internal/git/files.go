// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file reads and writes working-tree files.
package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// workTreeFileMode is used for files created by RepoWriteFile.
const workTreeFileMode = 0o644

// RepoWriteFile creates or truncates relPath under the working-tree root and
// writes content to it. Parent directories must already exist.
func RepoWriteFile(repo *Repo, relPath string, content []byte) error {
	full, err := workTreePath(repo, relPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(full, content, workTreeFileMode); err != nil { //#nosec G306 -- working-tree files use the default umask-adjusted mode
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// RepoReadFile returns the content of relPath under the working-tree root.
func RepoReadFile(repo *Repo, relPath string) ([]byte, error) {
	full, err := workTreePath(repo, relPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full) //#nosec G304 -- path is confined to the working tree
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", relPath, err)
	}
	return data, nil
}

func workTreePath(repo *Repo, relPath string) (string, error) {
	if err := validateRelPath(relPath); err != nil {
		return "", err
	}
	workDir, err := repo.WorkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(workDir, relPath), nil
}
