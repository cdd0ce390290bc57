package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Add, move, remove or list nodes of a frame",
	}
	cmd.AddCommand(
		newNodeAddCmd(a),
		newNodeMoveCmd(a),
		newNodeRmCmd(a),
		newNodeLsCmd(a),
	)
	return cmd
}

func newNodeAddCmd(a *app) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "add <x> <y>",
		Short: "Append a node to a frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseFloats(args)
			if err != nil {
				return err
			}
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			idx, err := s.AddNode(xy[0], xy[1])
			if err != nil {
				return err
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Added node %d to frame %d\n", idx, frame)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	return cmd
}

func newNodeMoveCmd(a *app) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "move <index> <x> <y>",
		Short: "Set the position of a node",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseInts(args[:1])
			if err != nil {
				return err
			}
			xy, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			if err := s.MoveNode(idx[0], xy[0], xy[1]); err != nil {
				return err
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Moved node %d of frame %d\n", idx[0], frame)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	return cmd
}

func newNodeRmCmd(a *app) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "rm <x> <y>",
		Short: "Remove the node nearest to a point",
		Long: "Remove the node nearest to (x, y) if it lies within the selection threshold. " +
			"Edges touching it are dropped and later nodes are renumbered.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseFloats(args)
			if err != nil {
				return err
			}
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			idx, ok := s.DeleteNodeAt(xy[0], xy[1])
			if !ok {
				return fmt.Errorf("no node within %d of (%g, %g) in frame %d",
					a.cfg.SelectionThreshold, xy[0], xy[1], frame)
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Removed node %d from frame %d\n", idx, frame)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	return cmd
}

func newNodeLsCmd(a *app) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the nodes of a frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			f, ok := s.Frame()
			if !ok {
				return fmt.Errorf("frame %d does not exist", frame)
			}
			out := cmd.OutOrStdout()
			for i, n := range f.Nodes() {
				fmt.Fprintf(out, "%d\t%d\t%d\n", i, n.X, n.Y)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	return cmd
}
