package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSolidPNG writes a w x h PNG filled with c.
func writeSolidPNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func shade(i int) color.RGBA {
	return color.RGBA{uint8(10 * (i + 1)), 0, 0, 255}
}

func TestOpenDirectoryOrdersNumerically(t *testing.T) {
	dir := t.TempDir()
	for _, i := range []int{10, 2, 0, 1} {
		writeSolidPNG(t, filepath.Join(dir, filepathName(i)), 4, 4, shade(i))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	seq, err := Open(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, seq.Len())
	assert.Equal(t, dir, seq.Path())
	var names []string
	for _, f := range seq.Files() {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"0.png", "1.png", "2.png", "10.png"}, names)
}

func filepathName(i int) string {
	return fmt.Sprintf("%d.png", i)
}

func TestFrameClampsIndex(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		writeSolidPNG(t, filepath.Join(dir, filepathName(i)), 2, 2, shade(i))
	}
	seq, err := Open(dir)
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		index int
		want  color.RGBA
	}{
		{0, shade(0)},
		{2, shade(2)},
		{7, shade(2)},
		{-3, shade(0)},
	}
	for _, tt := range tests {
		img, err := seq.Frame(ctx, tt.index)
		require.NoError(t, err)
		r, g, b, _ := img.At(0, 0).RGBA()
		assert.Equal(t, tt.want.R, uint8(r>>8), "index %d", tt.index)
		assert.Zero(t, g)
		assert.Zero(t, b)
	}
}

func TestOpenSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "still.png")
	writeSolidPNG(t, path, 3, 3, shade(4))

	seq, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, path, seq.Path())

	img, err := seq.Frame(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 3), img.Bounds())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = Open(t.TempDir())
	assert.True(t, errors.Is(err, ErrNoFrames), "empty dir: %v", err)

	_, err = NewImageSequence()
	assert.ErrorIs(t, err, ErrNoFrames)

	_, err = NewImageSequence("clip.avi")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFrameCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	seq, err := NewImageSequence(path)
	require.NoError(t, err)

	_, err = seq.Frame(context.Background(), 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFrameHonorsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.png")
	writeSolidPNG(t, path, 1, 1, shade(0))
	seq, err := NewImageSequence(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = seq.Frame(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestViewportFit(t *testing.T) {
	red := color.RGBA{200, 0, 0, 255}
	black := color.RGBA{0, 0, 0, 255}
	src := solid(200, 100, red)

	tests := []struct {
		name     string
		vp       Viewport
		inside   image.Point
		outside  image.Point
		wantSize [2]int
	}{
		{
			name:     "fit width",
			vp:       Viewport{Width: 100, Height: 100},
			inside:   image.Pt(50, 25),
			outside:  image.Pt(50, 75),
			wantSize: [2]int{100, 50},
		},
		{
			name:     "zoomed in",
			vp:       Viewport{Width: 100, Height: 100, Zoom: 100},
			inside:   image.Pt(50, 90),
			outside:  image.Pt(-1, -1),
			wantSize: [2]int{200, 100},
		},
		{
			name:     "panned right and down",
			vp:       Viewport{Width: 100, Height: 100, OffsetX: 60, OffsetY: 30},
			inside:   image.Pt(70, 40),
			outside:  image.Pt(30, 40),
			wantSize: [2]int{100, 50},
		},
		{
			name:     "panned off the left edge",
			vp:       Viewport{Width: 100, Height: 100, OffsetX: -90},
			inside:   image.Pt(5, 10),
			outside:  image.Pt(20, 10),
			wantSize: [2]int{100, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.vp.ScaledSize(src.Bounds())
			assert.Equal(t, tt.wantSize, [2]int{w, h})

			out := tt.vp.Fit(src)
			assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())
			assert.Equal(t, red, out.RGBAAt(tt.inside.X, tt.inside.Y))
			if tt.outside.In(out.Bounds()) {
				assert.Equal(t, black, out.RGBAAt(tt.outside.X, tt.outside.Y))
			}
		})
	}
}

func TestViewportZoomAndPan(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.ZoomBy(10)
	vp.ZoomBy(-30)
	vp.Pan(10, -10)
	vp.Pan(5, 0)

	assert.Equal(t, Viewport{Width: 800, Height: 600, Zoom: -20, OffsetX: 15, OffsetY: -10}, *vp)
}

func TestViewportDegenerate(t *testing.T) {
	vp := Viewport{Width: 10, Height: 10, Zoom: -10}
	out := vp.Fit(solid(4, 4, color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, out.RGBAAt(5, 5))

	out = (&Viewport{Width: 3, Height: 3}).Fit(nil)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, out.RGBAAt(1, 1))
}
