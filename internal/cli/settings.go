// Package cli provides the command-line interface for gitstage.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/gitstage/internal/config"
	"github.com/mrz1836/gitstage/internal/errors"
)

// settingsView is the printable form of the effective settings.
type settingsView struct {
	Log   config.LogConfig   `yaml:"log" json:"log"`
	Stage config.StageConfig `yaml:"stage" json:"stage"`
	Locks struct {
		StaleThreshold string `yaml:"stale_threshold" json:"stale_threshold"`
	} `yaml:"locks" json:"locks"`
	Files struct {
		Global  string `yaml:"global" json:"global"`
		Project string `yaml:"project,omitempty" json:"project,omitempty"`
		Log     string `yaml:"log" json:"log"`
	} `yaml:"files" json:"files"`
}

func addSettingsCommand(root *cobra.Command, a *app) {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect gitstage's own settings",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Display the effective settings",
		Long: `Display the effective settings after merging defaults, ~/.gitstage/config.yaml,
<repo>/.gitstage/config.yaml and GITSTAGE_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := a.settingsView(cmd)
			if a.flags.Output == OutputJSON {
				format = OutputJSON
			}
			return writeSettings(cmd.OutOrStdout(), format, view)
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml|json)")

	settingsCmd.AddCommand(show)
	root.AddCommand(settingsCmd)
}

func (a *app) settingsView(cmd *cobra.Command) settingsView {
	var view settingsView
	view.Log = a.settings.Log
	view.Stage = a.settings.Stage
	view.Locks.StaleThreshold = a.settings.Locks.StaleThreshold.String()

	if p, err := config.GlobalConfigPath(); err == nil {
		view.Files.Global = p
	}
	if dir := a.projectDir(cmd.Context()); dir != "" {
		view.Files.Project = config.ProjectConfigPath(dir)
	}
	if p, err := LogFilePath(); err == nil {
		view.Files.Log = p
	}
	return view
}

func writeSettings(w io.Writer, format string, view settingsView) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		return enc.Close()
	case OutputJSON:
		return render(w, OutputJSON, view, nil)
	default:
		return fmt.Errorf("%w: %q must be yaml or json", errors.ErrInvalidOutputFormat, format)
	}
}
