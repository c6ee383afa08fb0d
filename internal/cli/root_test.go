package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitstage/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "--help")
	require.NoError(t, err)

	for _, want := range []string{"gitstage", "--output", "--verbose", "--quiet", "--repo", "add-all", "unstage", "settings"} {
		assert.Contains(t, out, want)
	}
}

func TestRootCmd_Version(t *testing.T) {
	tests := []struct {
		name           string
		info           BuildInfo
		expectContains []string
	}{
		{
			name:           "full version info",
			info:           BuildInfo{Version: "1.0.0", Commit: "abc1234", Date: "2026-01-01"},
			expectContains: []string{"1.0.0", "abc1234", "2026-01-01"},
		},
		{
			name:           "default dev version",
			info:           BuildInfo{},
			expectContains: []string{"dev", "none", "unknown"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			cmd := newRootCmd(&GlobalFlags{}, tt.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"--version"})

			require.NoError(t, cmd.Execute())
			for _, want := range tt.expectContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)

	_, _, err := runCLI(t, "--repo", repo, "--output", "xml", "head")
	require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_VerboseQuietMutuallyExclusive(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, "--verbose", "--quiet", "info")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_OutputFromEnvironment(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)
	t.Setenv("GITSTAGE_OUTPUT", "json")

	out, _, err := runCLI(t, "--repo", repo, "untracked")
	require.NoError(t, err)
	assert.Contains(t, out, `"policy": "all"`)
}

func TestExecute_PrintsActionableError(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{})
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--repo", t.TempDir(), "head"})

	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, errors.ErrNotGitRepo)

	printError(cmd, err)
	assert.Contains(t, errOut.String(), "Not a git repository")
	assert.Contains(t, errOut.String(), "Hint:")
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "1.2.3 (commit: abc, built: today)", formatVersion(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"}))
	assert.Equal(t, "dev (commit: none, built: unknown)", formatVersion(BuildInfo{}))
}

func TestGetLogger_AfterSetup(t *testing.T) {
	isolateEnv(t)
	repo := setupTestRepo(t)

	_, _, err := runCLI(t, "--repo", repo, "--quiet", "untracked")
	require.NoError(t, err)

	logger := GetLogger()
	assert.Equal(t, "warn", logger.GetLevel().String())
}
