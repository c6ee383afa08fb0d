// Package cli provides the command-line interface for gitstage.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/gitstage/internal/config"
	"github.com/mrz1836/gitstage/internal/errors"
	"github.com/mrz1836/gitstage/internal/git"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Before that it returns a zero-value
// logger that discards all output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	flags    *GlobalFlags
	settings *config.Config
}

// newRootCmd creates and returns the root command for the gitstage CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()
	a := &app{flags: flags, settings: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "gitstage",
		Short: "Inspect a repository and stage changes into its index",
		Long: `gitstage resolves a repository from any path inside it and works on its
staging area: add single files or whole pathspecs, record deletions,
unstage paths, and read HEAD and configuration the way the staging
engine sees them.

Every command resolves the repository afresh from --repo (default ".").
Bare repositories are rejected.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, v)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	addInfoCommand(cmd, a)
	addHeadCommand(cmd, a)
	addConfigCommand(cmd, a)
	addUntrackedCommand(cmd, a)
	addStageCommands(cmd, a)
	addStatusCommand(cmd, a)
	addUnlockCommand(cmd, a)
	addSettingsCommand(cmd, a)

	return cmd
}

// setup binds flags, loads settings and installs the logger on the
// command context so library code can reach it through zerolog.Ctx.
func (a *app) setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := BindGlobalFlags(v, cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	applyBoundFlags(v, a.flags)

	if !IsValidOutputFormat(a.flags.Output) {
		return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, a.flags.Output, ValidOutputFormats())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := config.Load(ctx, a.projectDir(ctx))
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.settings = settings

	logger := InitLogger(a.flags.Verbose, a.flags.Quiet, settings.Log)
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()

	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

// projectDir returns the working tree --repo resolves to, or "" when it is
// not inside a usable repository. Commands report that error themselves.
func (a *app) projectDir(ctx context.Context) string {
	dir, err := git.RepoWorkDir(ctx, a.flags.Repo)
	if err != nil {
		return ""
	}
	return dir
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are printed to stderr with a suggested action where one exists.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	var silent *silentError
	if err != nil && !stderrors.Is(err, context.Canceled) && !stderrors.As(err, &silent) {
		printError(cmd, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	msg, action := errors.Actionable(err)
	if msg != err.Error() {
		_, _ = fmt.Fprintf(w, "Error: %s\n  %s\n", msg, err.Error())
	} else {
		_, _ = fmt.Fprintf(w, "Error: %s\n", msg)
	}
	if action != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", action)
	}
}
