package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Viewport fits a background frame into a fixed-size canvas. The image is
// scaled to Width+Zoom pixels wide, keeping its aspect ratio, and pasted at
// (OffsetX, OffsetY) on a black canvas. Parts falling outside are clipped.
type Viewport struct {
	Width   int
	Height  int
	Zoom    int
	OffsetX int
	OffsetY int
}

// NewViewport returns a viewport with no zoom or offset.
func NewViewport(width, height int) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// ZoomBy widens (d > 0) or narrows (d < 0) the scaled image.
func (v *Viewport) ZoomBy(d int) {
	v.Zoom += d
}

// Pan moves the image by (dx, dy) pixels.
func (v *Viewport) Pan(dx, dy int) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ScaledSize returns the size src is scaled to before pasting.
func (v *Viewport) ScaledSize(src image.Rectangle) (int, int) {
	w := v.Width + v.Zoom
	if src.Dx() == 0 || w <= 0 {
		return 0, 0
	}
	h := int(float64(w) * float64(src.Dy()) / float64(src.Dx()))
	return w, h
}

// Fit returns a new Width x Height canvas holding the visible part of src.
func (v *Viewport) Fit(src image.Image) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, v.Width, v.Height))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 255}), image.Point{}, xdraw.Src)
	if src == nil {
		return canvas
	}

	w, h := v.ScaledSize(src.Bounds())
	if w <= 0 || h <= 0 {
		return canvas
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	target := image.Rect(v.OffsetX, v.OffsetY, v.OffsetX+w, v.OffsetY+h)
	xdraw.Draw(canvas, target, scaled, image.Point{}, xdraw.Src)
	return canvas
}
