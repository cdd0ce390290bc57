package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every node and edge of a frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			if !s.ClearFrame() {
				fmt.Fprintf(cmd.OutOrStdout(), "Frame %d is already empty\n", frame)
				return nil
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Cleared frame %d\n", frame)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	return cmd
}

func newRepeatCmd(a *app) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "repeat",
		Short: "Copy the nearest earlier keyframe into an empty frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			if !s.Repeat() {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to copy into frame %d\n", frame)
				return nil
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Repeated keyframe into frame %d\n", frame)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	return cmd
}

func newInterpolateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interpolate",
		Short: "Fill the empty frames between keyframes by linear interpolation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(0)
			if err != nil {
				return err
			}
			filled := s.Interpolate()
			if filled == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No gaps to fill")
				return nil
			}
			if err := s.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Filled %d frames\n", filled)
			return nil
		},
	}
}
