package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
)

// Renderer draws frames with fogleman/gg.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// circleFor returns the center and radius of a circle edge: centered on the
// integer midpoint of its endpoints with a diameter equal to their distance.
func circleFor(a, b keyframe.Node) (cx, cy, r int) {
	cx = (a.X + b.X) / 2
	cy = (a.Y + b.Y) / 2
	r = int(a.DistanceTo(b) / 2)
	return cx, cy, r
}

// DrawFrame draws edges, then nodes when style.DrawNodes is set, onto dst.
// Edges whose endpoints are missing from nodes are skipped.
func (r *Renderer) DrawFrame(dst draw.Image, nodes []keyframe.Node, edges []keyframe.Edge, style Style) {
	bounds := dst.Bounds()
	rgba, direct := dst.(*image.RGBA)
	if !direct || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), dst, bounds.Min, draw.Src)
		direct = false
	}

	dc := gg.NewContextForRGBA(rgba)
	dc.SetLineWidth(style.thickness())
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, e := range edges {
		if e.From < 0 || e.From >= len(nodes) || e.To < 0 || e.To >= len(nodes) {
			continue
		}
		a, b := nodes[e.From], nodes[e.To]
		dc.SetColor(style.EdgeColor)
		switch e.Kind {
		case keyframe.EdgeCircle:
			cx, cy, radius := circleFor(a, b)
			dc.DrawCircle(float64(cx), float64(cy), float64(radius))
			dc.Fill()
		default:
			dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
			dc.Stroke()
		}
	}

	if style.DrawNodes {
		for _, n := range nodes {
			if n.Selected {
				dc.SetColor(style.SelectedColor)
			} else {
				dc.SetColor(style.NodeColor)
			}
			dc.DrawCircle(float64(n.X), float64(n.Y), style.thickness())
			dc.Fill()
		}
	}

	if !direct {
		draw.Draw(dst, bounds, rgba, image.Point{}, draw.Src)
	}
}

// RenderSequenceFrame draws frame index of seq onto dst. It reports false,
// leaving dst untouched, when the frame does not exist.
func (r *Renderer) RenderSequenceFrame(seq *keyframe.Sequence, index int, dst draw.Image, style Style) bool {
	f, ok := seq.Frame(index)
	if !ok {
		return false
	}
	r.DrawFrame(dst, f.Nodes(), f.Edges(), style)
	return true
}

// Bounds returns the smallest rectangle covering every node of a frame,
// grown by the stroke width. Empty frames yield an empty rectangle.
func Bounds(nodes []keyframe.Node, style Style) image.Rectangle {
	if len(nodes) == 0 {
		return image.Rectangle{}
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, n := range nodes {
		minX, maxX = min(minX, n.X), max(maxX, n.X)
		minY, maxY = min(minY, n.Y), max(maxY, n.Y)
	}
	pad := int(style.thickness())
	return image.Rect(minX-pad, minY-pad, maxX+pad+1, maxY+pad+1)
}
