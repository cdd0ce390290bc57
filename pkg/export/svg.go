package export

import (
	"context"
	"io"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
	"github.com/dd0wney/cluso-animator/pkg/render"
)

// SVGExporter writes frames as SVG documents.
type SVGExporter struct{}

// Export implements Exporter.
func (e *SVGExporter) Export(ctx context.Context, seq *keyframe.Sequence, dir string, opts Options) (Result, error) {
	style := opts.style()
	return writeFrames(ctx, seq, dir, e.FileExtension(), func(w io.Writer, f *keyframe.Frame) error {
		return render.WriteSVG(w, opts.Width, opts.Height, f.Nodes(), f.Edges(), style)
	})
}

// FileExtension implements Exporter.
func (e *SVGExporter) FileExtension() string { return ".svg" }

// FormatName implements Exporter.
func (e *SVGExporter) FormatName() string { return "SVG" }
