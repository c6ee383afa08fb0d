// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file provides shared git command execution utilities.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitEnv pins the message locale so stderr can be classified, and keeps
// git from prompting on a terminal it does not own.
//
//nolint:gochecknoglobals // Read-only environment overrides
var gitEnv = []string{
	"LC_ALL=C",
	"GIT_TERMINAL_PROMPT=0",
}

// CommandError describes a git command that exited unsuccessfully.
// It unwraps to ErrGitOperation and, when the stderr text is recognized,
// to a more precise sentinel such as ErrIndexLocked.
type CommandError struct {
	// Subcommand is the git subcommand that failed (e.g. "add").
	Subcommand string
	// Stderr is the trimmed standard error output.
	Stderr string
	// ExitCode is the process exit code, or -1 if it did not run.
	ExitCode int

	kind error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git %s failed (exit %d)", e.Subcommand, e.ExitCode)
	}
	return fmt.Sprintf("git %s failed: %s", e.Subcommand, e.Stderr)
}

// Unwrap exposes the classified sentinel and ErrGitOperation to errors.Is.
func (e *CommandError) Unwrap() []error {
	if e.kind != nil {
		return []error{e.kind, ErrGitOperation}
	}
	return []error{ErrGitOperation}
}

// Type returns the classification of the stderr output.
func (e *CommandError) Type() ErrorType {
	return ClassifyError(e.Stderr)
}

// RunCommand executes a git command in the specified directory and returns its
// trimmed output. Failures are returned as *CommandError.
func RunCommand(ctx context.Context, workDir string, args ...string) (string, error) {
	out, err := runGit(ctx, workDir, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// runGit executes git and returns stdout untouched.
func runGit(ctx context.Context, workDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), gitEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", newCommandError(args, stderr.String(), err)
	}

	return stdout.String(), nil
}

func newCommandError(args []string, stderr string, runErr error) *CommandError {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	msg := strings.TrimSpace(stderr)
	if msg == "" && exitCode == -1 {
		msg = runErr.Error()
	}

	sub := "<none>"
	if len(args) > 0 {
		sub = args[0]
	}

	return &CommandError{
		Subcommand: sub,
		Stderr:     msg,
		ExitCode:   exitCode,
		kind:       ClassifyError(msg).Sentinel(),
	}
}
