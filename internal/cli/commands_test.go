package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitstage/internal/errors"
	"github.com/mrz1836/gitstage/internal/testutil"
)

func commitAll(t *testing.T, dir string) {
	t.Helper()
	testutil.CommitAll(t, dir, "initial")
}

func TestInfoCommand(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)

	t.Run("unborn branch", func(t *testing.T) {
		out, _, err := runCLI(t, "--repo", repo, "info")
		require.NoError(t, err)
		assert.Contains(t, out, "head:       refs/heads/main (no commits yet)")
		assert.Contains(t, out, "untracked:  all")
		assert.Contains(t, out, "user:       gitstage Test <test@gitstage.local>")
	})

	t.Run("json after first commit", func(t *testing.T) {
		writeFile(t, repo, "a.txt", "a\n")
		commitAll(t, repo)

		out, _, err := runCLI(t, "--repo", repo, "-o", "json", "info")
		require.NoError(t, err)

		var got struct {
			HasHead bool `json:"has_head"`
			Head    struct {
				Name string `json:"name"`
				ID   string `json:"id"`
			} `json:"head"`
			Untracked string `json:"untracked_policy"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.HasHead)
		assert.Equal(t, "refs/heads/main", got.Head.Name)
		assert.Len(t, got.Head.ID, 40)
		assert.Equal(t, "all", got.Untracked)
	})
}

func TestHeadCommand(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)

	_, _, err := runCLI(t, "--repo", repo, "head")
	require.ErrorIs(t, err, errors.ErrNoHead)

	writeFile(t, repo, "a.txt", "a\n")
	commitAll(t, repo)

	out, _, err := runCLI(t, "--repo", repo, "head")
	require.NoError(t, err)
	assert.Contains(t, out, " refs/heads/main\n")
}

func TestConfigCommands(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)

	_, _, err := runCLI(t, "--repo", repo, "config", "set", "status.showUntrackedFiles", "no")
	require.NoError(t, err)

	out, _, err := runCLI(t, "--repo", repo, "config", "get", "status.showUntrackedFiles")
	require.NoError(t, err)
	assert.Equal(t, "no\n", out)

	out, _, err = runCLI(t, "--repo", repo, "untracked")
	require.NoError(t, err)
	assert.Equal(t, "no\n", out)

	t.Run("unset key exits 1 silently", func(t *testing.T) {
		out, _, err := runCLI(t, "--repo", repo, "config", "get", "gitstage.missing")
		require.ErrorIs(t, err, errors.ErrEmptyValue)
		assert.Empty(t, out)
		assert.Equal(t, ExitError, ExitCodeForError(err))
	})

	t.Run("unset key as json", func(t *testing.T) {
		out, _, err := runCLI(t, "--repo", repo, "-o", "json", "config", "get", "gitstage.missing")
		require.Error(t, err)
		assert.Contains(t, out, `"set": false`)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, _, err := runCLI(t, "--repo", repo, "config", "get")
		require.Error(t, err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestAddCommand(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "a.txt", "a\n")
	writeFile(t, repo, "b.txt", "b\n")

	out, _, err := runCLI(t, "--repo", repo, "add", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "add a.txt: 1 staged, 1 in working dir\n", out)

	t.Run("quiet prints nothing", func(t *testing.T) {
		out, _, err := runCLI(t, "--repo", repo, "-q", "add", "b.txt")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("escaping path is invalid input", func(t *testing.T) {
		_, _, err := runCLI(t, "--repo", repo, "add", "../outside.txt")
		require.ErrorIs(t, err, errors.ErrInvalidPath)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestAddAllCommand(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "tracked.txt", "v1\n")
	commitAll(t, repo)

	writeFile(t, repo, "tracked.txt", "v2\n")
	writeFile(t, repo, "new.txt", "new\n")

	out, _, err := runCLI(t, "--repo", repo, "-o", "json", "add-all", "--update", "*.txt")
	require.NoError(t, err)

	var res stageResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "add-all", res.Operation)
	assert.Equal(t, 1, res.Staged)
	assert.Equal(t, 1, res.WorkingDir)

	out, _, err = runCLI(t, "--repo", repo, "add-all", "*.txt")
	require.NoError(t, err)
	assert.Equal(t, "add-all *.txt: 2 staged, 0 in working dir\n", out)

	t.Run("no match is a no-op", func(t *testing.T) {
		out, _, err := runCLI(t, "--repo", repo, "add-all", "*.nothing")
		require.NoError(t, err)
		assert.Contains(t, out, "2 staged")
	})

	t.Run("conflicting mode flags", func(t *testing.T) {
		_, _, err := runCLI(t, "--repo", repo, "add-all", "--update", "--no-update", "*.txt")
		require.Error(t, err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestAddAllCommand_StagesRemovals(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "a/x.txt", "x\n")
	writeFile(t, repo, "a/y.txt", "y\n")
	commitAll(t, repo)
	require.NoError(t, os.Remove(filepath.Join(repo, "a", "x.txt")))

	out, _, err := runCLI(t, "--repo", repo, "add-all", "a")
	require.NoError(t, err)
	assert.Equal(t, "add-all a: 1 staged, 0 in working dir\n", out)
}

func TestAddAllCommand_NestedRepository(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "sub/other.txt", "other\n")
	nested := filepath.Join(repo, "sub", "subgit")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	runGitT(t, nested, "init", "-q")
	runGitT(t, nested, "-c", "user.name=n", "-c", "user.email=n@gitstage.local",
		"-c", "commit.gpgsign=false", "commit", "-q", "--allow-empty", "-m", "init")

	out, _, err := runCLI(t, "--repo", repo, "add-all", "sub")
	require.ErrorIs(t, err, errors.ErrNestedRepository)
	assert.Empty(t, out)
	assert.Equal(t, ExitError, ExitCodeForError(err))
	assert.Empty(t, testutil.RunGit(t, repo, "ls-files", "--stage"))
}

func TestAddAllCommand_ProjectSettings(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, ".gitstage/config.yaml", "stage:\n  update_tracked_only: true\n")
	writeFile(t, repo, "new.txt", "new\n")

	out, _, err := runCLI(t, "--repo", repo, "add-all", "*.txt")
	require.NoError(t, err)
	assert.Contains(t, out, ": 0 staged")

	out, _, err = runCLI(t, "--repo", repo, "add-all", "--no-update", "*.txt")
	require.NoError(t, err)
	assert.Contains(t, out, ": 1 staged")
}

func TestRmAndUnstageCommands(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "a.txt", "a\n")
	commitAll(t, repo)

	out, _, err := runCLI(t, "--repo", repo, "rm", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "rm a.txt: 1 staged, 1 in working dir\n", out)
	assert.FileExists(t, filepath.Join(repo, "a.txt"))

	out, _, err = runCLI(t, "--repo", repo, "unstage", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "unstage a.txt: 0 staged, 0 in working dir\n", out)
}

func TestUnstageCommand_UnbornBranch(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "a.txt", "a\n")

	_, _, err := runCLI(t, "--repo", repo, "add", "a.txt")
	require.NoError(t, err)

	out, _, err := runCLI(t, "--repo", repo, "unstage", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "unstage a.txt: 0 staged, 1 in working dir\n", out)
}

func TestStatusCommand(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	writeFile(t, repo, "a.txt", "a\n")
	commitAll(t, repo)

	out, _, err := runCLI(t, "--repo", repo, "status")
	require.NoError(t, err)
	assert.Equal(t, "On branch main\nnothing to stage\n", out)

	writeFile(t, repo, "a.txt", "changed\n")
	writeFile(t, repo, "dir/new.txt", "new\n")
	writeFile(t, repo, "staged.txt", "s\n")
	runGitT(t, repo, "add", "staged.txt")

	out, _, err = runCLI(t, "--repo", repo, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Staged:\n  A staged.txt\n")
	assert.Contains(t, out, "Not staged:\n  M a.txt\n")
	assert.Contains(t, out, "Untracked (all):\n  dir/new.txt\n")

	out, _, err = runCLI(t, "--repo", repo, "status", "--untracked-files", "normal")
	require.NoError(t, err)
	assert.Contains(t, out, "Untracked (normal):\n  dir/\n")

	t.Run("policy from repository config", func(t *testing.T) {
		runGitT(t, repo, "config", "status.showUntrackedFiles", "no")

		out, _, err := runCLI(t, "--repo", repo, "-o", "json", "status")
		require.NoError(t, err)

		var st struct {
			Untracked []string `json:"untracked"`
			Policy    string   `json:"untracked_policy"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &st))
		assert.Empty(t, st.Untracked)
		assert.Equal(t, "no", st.Policy)
	})
}

func TestUnlockCommand(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	lock := filepath.Join(repo, ".git", "index.lock")

	t.Run("no lock", func(t *testing.T) {
		out, _, err := runCLI(t, "--repo", repo, "unlock")
		require.NoError(t, err)
		assert.Equal(t, "index is unlocked\n", out)
	})

	t.Run("fresh lock is kept", func(t *testing.T) {
		require.NoError(t, os.WriteFile(lock, nil, 0o600))
		t.Cleanup(func() { _ = os.Remove(lock) })

		_, _, err := runCLI(t, "--repo", repo, "unlock")
		require.ErrorIs(t, err, errors.ErrLockNotStale)
		assert.FileExists(t, lock)
	})

	t.Run("stale lock is removed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(lock, nil, 0o600))
		old := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(lock, old, old))

		_, _, err := runCLI(t, "--repo", repo, "unlock", "--threshold", "10m")
		require.NoError(t, err)
		assert.NoFileExists(t, lock)
	})
}

func TestSettingsShowCommand(t *testing.T) {
	home := isolateEnv(t)
	repo := setupTestRepo(t)

	out, _, err := runCLI(t, "--repo", repo, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "update_tracked_only: false")
	assert.Contains(t, out, "stale_threshold: 1m0s")
	assert.Contains(t, out, filepath.Join(home, "config.yaml"))

	out, _, err = runCLI(t, "--repo", repo, "settings", "show", "--format", "json")
	require.NoError(t, err)
	var view struct {
		Locks struct {
			StaleThreshold string `json:"stale_threshold"`
		} `json:"locks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "1m0s", view.Locks.StaleThreshold)

	_, _, err = runCLI(t, "--repo", repo, "settings", "show", "--format", "toml")
	require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
}
