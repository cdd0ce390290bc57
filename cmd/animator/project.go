package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-animator/pkg/project"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		rasterPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := project.WithExt(a.projectPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("project %s already exists (use --force to overwrite)", path)
			}

			s := a.newSession()
			if rasterPath != "" {
				if err := s.OpenRaster(rasterPath); err != nil {
					return err
				}
			}
			if err := s.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created project %s (%s)\n", path, s.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&rasterPath, "raster", "", "Directory or image file with background frames")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing project")
	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print every frame with its node count and edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(0)
			if err != nil {
				return err
			}
			seq := s.Sequence()
			out := cmd.OutOrStdout()
			if err := seq.WriteDescription(out); err != nil {
				return err
			}
			if stats {
				st := seq.Stats()
				fmt.Fprintf(out, "\nFrames: %d  Keyframes: %d  Nodes: %d  Edges: %d\n",
					st.Frames, st.Keyframes, st.Nodes, st.Edges)
				if gaps := seq.Gaps(); len(gaps) > 0 {
					fmt.Fprintf(out, "Gaps:")
					for _, g := range gaps {
						fmt.Fprintf(out, " [%d, %d]", g.Begin, g.End)
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Also print totals and fillable gaps")
	return cmd
}
