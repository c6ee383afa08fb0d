// Package cli provides the command-line interface for gitstage.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitstage/internal/git"
)

// stageResult is printed after every staging command.
type stageResult struct {
	Operation  string `json:"operation"`
	Target     string `json:"target"`
	Staged     int    `json:"staged"`
	WorkingDir int    `json:"working_dir"`
}

func addStageCommands(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Stage one file, ignore rules notwithstanding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stage(cmd, "add", args[0], func(ctx context.Context) error {
				return git.StageAddFile(ctx, a.flags.Repo, args[0])
			})
		},
	})

	var update, noUpdate bool
	addAll := &cobra.Command{
		Use:   "add-all <pathspec>",
		Short: "Stage every path matching a pathspec",
		Long: `Stage every path matching a pathspec (a glob or directory prefix).

By default tracked and untracked matches are added, deleted tracked paths
are staged as removals and ignored paths are skipped. With --update only
tracked paths are refreshed; untracked paths are left alone. The default
mode comes from stage.update_tracked_only.

If the matches include a nested repository the command fails and nothing
is staged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trackedOnly := a.settings.Stage.UpdateTrackedOnly
			switch {
			case update:
				trackedOnly = true
			case noUpdate:
				trackedOnly = false
			}
			return a.stage(cmd, "add-all", args[0], func(ctx context.Context) error {
				return git.StageAddAll(ctx, a.flags.Repo, args[0], trackedOnly)
			})
		},
	}
	addAll.Flags().BoolVarP(&update, "update", "u", false, "only refresh already tracked paths")
	addAll.Flags().BoolVar(&noUpdate, "no-update", false, "add untracked paths too, overriding settings")
	addAll.MarkFlagsMutuallyExclusive("update", "no-update")
	root.AddCommand(addAll)

	root.AddCommand(&cobra.Command{
		Use:   "rm <path>",
		Short: "Stage the deletion of a path without touching the working tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stage(cmd, "rm", args[0], func(ctx context.Context) error {
				return git.StageAddRemoved(ctx, a.flags.Repo, args[0])
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "unstage <path>",
		Short: "Restore a path's index entry from HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stage(cmd, "unstage", args[0], func(ctx context.Context) error {
				return git.StageReset(ctx, a.flags.Repo, args[0])
			})
		},
	})
}

// stage runs op and reports the resulting staged and working-dir counts.
func (a *app) stage(cmd *cobra.Command, op, target string, fn func(context.Context) error) error {
	ctx := cmd.Context()
	if err := fn(ctx); err != nil {
		return err
	}

	st, err := git.GetStatus(ctx, a.flags.Repo, git.UntrackedAll)
	if err != nil {
		return err
	}

	res := stageResult{
		Operation:  op,
		Target:     target,
		Staged:     st.StagedCount(),
		WorkingDir: st.WorkingDirCount(),
	}

	logger := GetLogger()
	logger.Debug().
		Str("operation", op).
		Str("target", target).
		Int("staged", res.Staged).
		Msg("staging complete")

	return render(cmd.OutOrStdout(), a.flags.Output, res, func(w io.Writer) error {
		if a.flags.Quiet {
			return nil
		}
		printf(w, "%s %s: %d staged, %d in working dir\n", op, target, res.Staged, res.WorkingDir)
		return nil
	})
}
