package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/mrz1836/gitstage/internal/constants"
	"github.com/mrz1836/gitstage/internal/testutil"
)

// isolateEnv points gitstage's home and git's global config at temp
// locations for the duration of the test.
func isolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv(constants.EnvHome, home)
	t.Setenv("NO_COLOR", "1")
	testutil.IsolateGitConfig(t)

	return home
}

func runGitT(t *testing.T, dir string, args ...string) {
	t.Helper()
	testutil.RunGit(t, dir, args...)
}

func setupTestRepo(t *testing.T) string {
	t.Helper()
	return testutil.NewRepo(t)
}

func writeFile(t *testing.T, repoPath, rel, content string) {
	t.Helper()
	testutil.WriteFile(t, repoPath, rel, content)
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	CloseLogFile()
	return out.String(), errOut.String(), err
}
