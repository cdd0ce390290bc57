package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-animator/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// config subcommands must work even when the current file is invalid
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd(a), newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			}
			if err := config.Default().Save(a.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", a.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			c := cfg.Style
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "node_color:          %s\n", c.NodeColor)
			fmt.Fprintf(out, "edge_color:          %s\n", c.EdgeColor)
			fmt.Fprintf(out, "selected_color:      %s\n", c.SelectedColor)
			fmt.Fprintf(out, "export_color:        %s\n", c.ExportColor)
			fmt.Fprintf(out, "line_thickness:      %d\n", c.LineThickness)
			fmt.Fprintf(out, "frame_jump:          %d\n", cfg.FrameJump)
			fmt.Fprintf(out, "repeat_on_navigate:  %t\n", cfg.RepeatOnNavigate)
			fmt.Fprintf(out, "selection_threshold: %d\n", cfg.SelectionThreshold)
			fmt.Fprintf(out, "canvas:              %dx%d\n", cfg.CanvasWidth, cfg.CanvasHeight)
			fmt.Fprintf(out, "history_capacity:    %d\n", cfg.HistoryCapacity)
			fmt.Fprintf(out, "log_level:           %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "metrics_addr:        %s\n", cfg.MetricsAddr)
			return nil
		},
	}
}
