package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEdgeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Manage edges between nodes",
	}
	cmd.AddCommand(newEdgeAddCmd(a))
	return cmd
}

func newEdgeAddCmd(a *app) *cobra.Command {
	var (
		frame int
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Join two nodes of a frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ends, err := parseInts(args)
			if err != nil {
				return err
			}
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			if err := s.AddEdge(ends[0], ends[1], kind); err != nil {
				return err
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Added %s edge (%d, %d) to frame %d\n", kind, ends[0], ends[1], frame)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	cmd.Flags().StringVarP(&kind, "kind", "k", "line", "Edge kind (line or circle)")
	return cmd
}
