// Package testutil provides git repository fixtures for tests.
//
// It should only be imported by test files (*_test.go).
package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Identity used for commits made by fixtures.
const (
	UserName  = "gitstage Test"
	UserEmail = "test@gitstage.local"
)

// IsolateGitConfig points git at an empty global config and disables the
// system config for the duration of the test. It must not be used from
// parallel tests.
func IsolateGitConfig(t *testing.T) {
	t.Helper()

	global := filepath.Join(t.TempDir(), "gitconfig")
	require.NoError(t, os.WriteFile(global, nil, 0o600))
	t.Setenv("GIT_CONFIG_GLOBAL", global)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

// RunGit runs git in dir, fails the test on error and returns trimmed stdout.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.CommandContext(context.Background(), "git", args...) //#nosec G204 -- test code with safe inputs
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = string(exitErr.Stderr)
		}
		require.NoError(t, err, "git %v: %s", args, stderr)
	}
	return strings.TrimSpace(string(out))
}

// NewRepo creates a repository on branch main with a committer identity
// and signing disabled.
func NewRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	RunGit(t, dir, "init", "-q")
	RunGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	RunGit(t, dir, "config", "user.email", UserEmail)
	RunGit(t, dir, "config", "user.name", UserName)
	RunGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

// WriteFile writes content to rel inside the repository, creating parent
// directories.
func WriteFile(t *testing.T, repo, rel, content string) {
	t.Helper()

	path := filepath.Join(repo, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// CommitAll stages everything and commits it.
func CommitAll(t *testing.T, repo, message string) {
	t.Helper()

	RunGit(t, repo, "add", "-A")
	RunGit(t, repo, "commit", "-q", "-m", message)
}
