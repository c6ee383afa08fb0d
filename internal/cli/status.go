// Package cli provides the command-line interface for gitstage.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitstage/internal/git"
)

func addStatusCommand(root *cobra.Command, a *app) {
	var untracked string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show staged, unstaged and untracked paths",
		Long: `Show staged, unstaged and untracked paths.

Untracked files follow status.showUntrackedFiles unless --untracked-files
is given (no, normal or all).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var (
				st  *git.Status
				err error
			)
			if untracked == "" {
				st, err = git.GetStatusWithPolicy(ctx, a.flags.Repo)
			} else {
				st, err = git.GetStatus(ctx, a.flags.Repo, git.ParseShowUntrackedFiles(untracked, true))
			}
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.flags.Output, st, func(w io.Writer) error {
				printStatus(w, st)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&untracked, "untracked-files", "u", "", "override the untracked-files policy (no|normal|all)")

	root.AddCommand(cmd)
}

func printStatus(w io.Writer, st *git.Status) {
	printf(w, "On branch %s\n", st.Branch)
	if st.IsClean() {
		printf(w, "nothing to stage\n")
		return
	}

	if len(st.Staged) > 0 {
		printf(w, "\nStaged:\n")
		for _, c := range st.Staged {
			printChange(w, c)
		}
	}
	if len(st.Unstaged) > 0 {
		printf(w, "\nNot staged:\n")
		for _, c := range st.Unstaged {
			printChange(w, c)
		}
	}
	if len(st.Conflicted) > 0 {
		printf(w, "\nConflicted:\n")
		for _, p := range st.Conflicted {
			printf(w, "  %s\n", p)
		}
	}
	if len(st.Untracked) > 0 {
		printf(w, "\nUntracked (%s):\n", st.Policy)
		for _, p := range st.Untracked {
			printf(w, "  %s\n", p)
		}
	}
}

func printChange(w io.Writer, c git.FileChange) {
	if c.OldPath != "" {
		printf(w, "  %s %s -> %s\n", c.Status, c.OldPath, c.Path)
		return
	}
	printf(w, "  %s %s\n", c.Status, c.Path)
}
