// Package cli provides the command-line interface for gitstage.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitstage/internal/git"
)

func addInfoCommand(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the repository's paths, HEAD, untracked policy and identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := git.Describe(cmd.Context(), a.flags.Repo)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.flags.Output, info, func(w io.Writer) error {
				printf(w, "work dir:   %s\n", info.WorkDir)
				printf(w, "git dir:    %s\n", info.GitDir)
				if info.HasHead {
					printf(w, "head:       %s (%s)\n", info.Head.Name, info.Head.ID.Short())
				} else {
					printf(w, "head:       %s (no commits yet)\n", info.Head.Name)
				}
				printf(w, "untracked:  %s\n", info.Untracked)
				printf(w, "user:       %s <%s>\n", info.UserName, info.UserEmail)
				return nil
			})
		},
	})
}

func addHeadCommand(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "head",
		Short: "Print the reference HEAD points to and its commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			head, err := git.GetHeadTuple(cmd.Context(), a.flags.Repo)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.flags.Output, head, func(w io.Writer) error {
				printf(w, "%s %s\n", head.ID, head.Name)
				return nil
			})
		},
	})
}

func addUntrackedCommand(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "untracked",
		Short: "Print the untracked-files policy from status.showUntrackedFiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := git.UntrackedFilesConfigByPath(cmd.Context(), a.flags.Repo)
			if err != nil {
				return err
			}
			out := struct {
				Policy           git.ShowUntrackedFiles `json:"policy"`
				IncludeUntracked bool                   `json:"include_untracked"`
				RecurseDirs      bool                   `json:"recurse_untracked_dirs"`
			}{mode, mode.IncludeUntracked(), mode.RecurseUntrackedDirs()}

			return render(cmd.OutOrStdout(), a.flags.Output, out, func(w io.Writer) error {
				printf(w, "%s\n", mode)
				return nil
			})
		},
	})
}
