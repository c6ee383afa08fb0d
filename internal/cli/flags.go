// Package cli provides the command-line interface for gitstage.
package cli

import (
	stderrors "errors"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/gitstage/internal/constants"
	"github.com/mrz1836/gitstage/internal/errors"
)

// Process exit statuses.
const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitInvalidInput = 2
)

// Values accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	Output  string
	Verbose bool
	Quiet   bool
	// Repo is any path inside the repository; it is resolved per command.
	Repo string
}

// globalFlagNames are bound to GITSTAGE_<NAME> environment variables.
//
//nolint:gochecknoglobals // Read-only flag list
var globalFlagNames = []string{"output", "verbose", "quiet", "repo"}

// usageErrorFragments identify cobra's own flag and argument errors, which
// carry no sentinel.
//
//nolint:gochecknoglobals // Read-only pattern list
var usageErrorFragments = []string{
	"unknown flag",
	"unknown shorthand flag",
	"flag needs an argument",
	"invalid argument",
	"if any flags in the group",
	"required flag",
	"unknown command",
	"accepts ",
}

// AddGlobalFlags registers the persistent flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "log every git invocation at debug level")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "only log warnings and errors")
	pf.StringVarP(&flags.Repo, "repo", "C", ".", "path inside the repository to operate on")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags lets GITSTAGE_OUTPUT, GITSTAGE_VERBOSE, GITSTAGE_QUIET and
// GITSTAGE_REPO stand in for flags that were not given.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	for _, name := range globalFlagNames {
		if err := v.BindPFlag(name, pf.Lookup(name)); err != nil {
			return err
		}
	}
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	return nil
}

func applyBoundFlags(v *viper.Viper, flags *GlobalFlags) {
	flags.Output = v.GetString("output")
	flags.Verbose = v.GetBool("verbose")
	flags.Quiet = v.GetBool("quiet")
	flags.Repo = v.GetString("repo")
}

// ValidOutputFormats lists the values accepted by --output.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat reports whether format is accepted by --output.
func IsValidOutputFormat(format string) bool {
	return slices.Contains(ValidOutputFormats(), format)
}

// ExitCodeForError maps err to a process exit status: 2 for bad flags,
// arguments and paths, 1 for any other failure.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.IsExitCode2Error(err),
		stderrors.Is(err, errors.ErrInvalidOutputFormat),
		stderrors.Is(err, errors.ErrInvalidArgument),
		stderrors.Is(err, errors.ErrInvalidPath),
		isUsageError(err.Error()):
		return ExitInvalidInput
	default:
		return ExitError
	}
}

func isUsageError(msg string) bool {
	return slices.ContainsFunc(usageErrorFragments, func(fragment string) bool {
		return strings.Contains(msg, fragment)
	})
}
