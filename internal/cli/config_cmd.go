// Package cli provides the command-line interface for gitstage.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitstage/internal/errors"
	"github.com/mrz1836/gitstage/internal/git"
)

// configValue is the JSON shape of config get.
type configValue struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
	Set   bool   `json:"set"`
}

func addConfigCommand(root *cobra.Command, a *app) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write repository configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Long: `Print the value of a key as git resolves it (local, global, system).

A key that is unset, set without a value, or unreadable because a config
file is malformed is reported as unset and exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok, err := git.GetConfigStringByPath(cmd.Context(), a.flags.Repo, args[0])
			if err != nil {
				return err
			}
			out := configValue{Key: args[0], Value: value, Set: ok}
			if renderErr := render(cmd.OutOrStdout(), a.flags.Output, out, func(w io.Writer) error {
				if ok {
					printf(w, "%s\n", value)
				}
				return nil
			}); renderErr != nil {
				return renderErr
			}
			if !ok {
				return errNotSet
			}
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a value to the repository's local configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := git.Open(cmd.Context(), a.flags.Repo)
			if err != nil {
				return err
			}
			return git.SetConfigString(cmd.Context(), repo, args[0], args[1])
		},
	})

	root.AddCommand(configCmd)
}

// errNotSet makes config get exit non-zero without printing an error.
var errNotSet = &silentError{err: errors.ErrEmptyValue} //nolint:gochecknoglobals // Sentinel

// silentError carries an exit status without a message.
type silentError struct {
	err error
}

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }
