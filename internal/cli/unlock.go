// Package cli provides the command-line interface for gitstage.
package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitstage/internal/git"
)

func addUnlockCommand(root *cobra.Command, a *app) {
	var threshold time.Duration

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Remove an abandoned index.lock",
		Long: `Remove the repository's index.lock if it is older than the threshold.

Staging commands never remove a lock themselves; a held lock is reported
so you can check whether another git process is still running. The
default threshold comes from locks.stale_threshold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.settings.Locks.StaleThreshold
			}
			if err := git.RemoveStaleIndexLock(cmd.Context(), a.flags.Repo, threshold); err != nil {
				return err
			}
			out := struct {
				Unlocked  bool   `json:"unlocked"`
				Threshold string `json:"threshold"`
			}{true, threshold.String()}
			return render(cmd.OutOrStdout(), a.flags.Output, out, func(w io.Writer) error {
				printf(w, "index is unlocked\n")
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&threshold, "threshold", 0, "minimum lock age to remove (default from settings)")

	root.AddCommand(cmd)
}
