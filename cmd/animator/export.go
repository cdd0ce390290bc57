package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-animator/pkg/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		dir    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every keyframe as an image",
		Long:  "Write every non-empty frame to the output directory as 0, 1, 2... in frame order.\n\nFormats:\n" + formatList(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(0)
			if err != nil {
				return err
			}
			res, err := s.Export(cmd.Context(), dir, format)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d frames to %s (%d empty skipped)\n",
				len(res.Files), dir, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", "export", "Output directory")
	cmd.Flags().StringVar(&format, "format", string(export.FormatPNG), "Output format")
	return cmd
}

func formatList() string {
	descriptions := export.FormatDescriptions()
	var b strings.Builder
	for _, f := range export.AvailableFormats() {
		fmt.Fprintf(&b, "  %-5s %s\n", f, descriptions[f])
	}
	return b.String()
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		frame int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame over its background as a PNG preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(frame)
			if err != nil {
				return err
			}
			img, err := s.RenderImage(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Rendered frame %d to %s\n", frame, out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "Frame index")
	cmd.Flags().StringVarP(&out, "out", "o", "preview.png", "Output PNG file")
	return cmd
}
