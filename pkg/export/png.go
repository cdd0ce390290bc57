package export

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
	"github.com/dd0wney/cluso-animator/pkg/render"
)

// PNGExporter writes frames as PNG images with a transparent background.
type PNGExporter struct {
	renderer *render.Renderer
}

// Export implements Exporter.
func (e *PNGExporter) Export(ctx context.Context, seq *keyframe.Sequence, dir string, opts Options) (Result, error) {
	style := opts.style()
	return writeFrames(ctx, seq, dir, e.FileExtension(), func(w io.Writer, f *keyframe.Frame) error {
		img := e.RenderFrame(f, opts.Width, opts.Height, style)
		return png.Encode(w, img)
	})
}

// RenderFrame draws f on a black canvas and turns every untouched pixel
// transparent: a pixel is opaque exactly when its RGB sum is above zero.
func (e *PNGExporter) RenderFrame(f *keyframe.Frame, width, height int, style render.Style) *image.NRGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 255}), image.Point{}, draw.Src)
	e.renderer.DrawFrame(canvas, f.Nodes(), f.Edges(), style)

	out := image.NewNRGBA(canvas.Bounds())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := canvas.RGBAAt(x, y)
			if int(c.R)+int(c.G)+int(c.B) > 0 {
				out.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 255})
			}
		}
	}
	return out
}

// FileExtension implements Exporter.
func (e *PNGExporter) FileExtension() string { return ".png" }

// FormatName implements Exporter.
func (e *PNGExporter) FormatName() string { return "PNG" }
