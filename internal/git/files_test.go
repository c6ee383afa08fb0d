package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoWriteFile(t *testing.T) {
	repoPath := setupTestRepo(t)
	repo, err := Open(context.Background(), repoPath)
	require.NoError(t, err)

	require.NoError(t, RepoWriteFile(repo, "foo.txt", []byte("first")))
	require.NoError(t, RepoWriteFile(repo, "foo.txt", []byte("2nd")))

	data, err := os.ReadFile(filepath.Join(repoPath, "foo.txt")) //#nosec G304 -- test path
	require.NoError(t, err)
	assert.Equal(t, "2nd", string(data))

	got, err := RepoReadFile(repo, "foo.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("2nd"), got)
}

func TestRepoWriteFile_MissingParent(t *testing.T) {
	repoPath := setupTestRepo(t)
	repo, err := Open(context.Background(), repoPath)
	require.NoError(t, err)

	err = RepoWriteFile(repo, filepath.Join("no", "such", "dir.txt"), []byte("x"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(filepath.Join(repoPath, "no"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepoWriteFile_ExistingParent(t *testing.T) {
	repoPath := setupTestRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Join(repoPath, "a", "d"), 0o750))

	repo, err := Open(context.Background(), repoPath)
	require.NoError(t, err)
	require.NoError(t, RepoWriteFile(repo, "a/d/f1.txt", []byte("file1")))

	workingDir, staged := statusCounts(t, repoPath)
	assert.Equal(t, 1, workingDir)
	assert.Equal(t, 0, staged)
}

func TestRepoFile_InvalidPaths(t *testing.T) {
	repo, err := Open(context.Background(), setupTestRepo(t))
	require.NoError(t, err)

	for _, p := range []string{"", "/abs.txt", "../escape.txt", "bad\xff"} {
		require.ErrorIs(t, RepoWriteFile(repo, p, []byte("x")), ErrInvalidPath, p)
		_, err := RepoReadFile(repo, p)
		require.ErrorIs(t, err, ErrInvalidPath, p)
	}
}

func TestRepoReadFile_Missing(t *testing.T) {
	repo, err := Open(context.Background(), setupTestRepo(t))
	require.NoError(t, err)

	_, err = RepoReadFile(repo, "nope.txt")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepoWriteFile_NilRepo(t *testing.T) {
	require.ErrorIs(t, RepoWriteFile(nil, "x.txt", nil), ErrNoWorkDir)
}
