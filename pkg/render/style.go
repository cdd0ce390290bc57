// Package render draws keyframe skeletons onto raster images and SVG
// documents.
//
// Drawing parameters travel in an explicit Style value; the package keeps no
// global drawing state, so concurrent renders with different styles are safe
// as long as they target different images.
package render

import "image/color"

// DefaultLineThickness is the stroke width used when none is configured.
const DefaultLineThickness = 10

// Style controls how a frame is drawn.
type Style struct {
	LineThickness int
	NodeColor     color.RGBA
	EdgeColor     color.RGBA
	SelectedColor color.RGBA
	DrawNodes     bool
}

// DefaultStyle mirrors the editor defaults: green nodes and edges, red
// selection, nodes visible.
func DefaultStyle() Style {
	return Style{
		LineThickness: DefaultLineThickness,
		NodeColor:     color.RGBA{0, 255, 0, 255},
		EdgeColor:     color.RGBA{0, 255, 0, 255},
		SelectedColor: color.RGBA{255, 0, 0, 255},
		DrawNodes:     true,
	}
}

// ExportStyle draws edges and nodes in a single color without node markers.
// Pure black is nudged to (1, 1, 1) so exported strokes stay distinguishable
// from the empty background.
func ExportStyle(c color.RGBA, thickness int) Style {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		c = color.RGBA{1, 1, 1, 255}
	}
	c.A = 255
	return Style{
		LineThickness: thickness,
		NodeColor:     c,
		EdgeColor:     c,
		SelectedColor: c,
		DrawNodes:     false,
	}
}

func (s Style) thickness() float64 {
	if s.LineThickness < 1 {
		return 1
	}
	return float64(s.LineThickness)
}
