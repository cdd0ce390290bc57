// Package export writes the keyframes of a sequence to disk as one image per
// non-empty frame.
package export

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
	"github.com/dd0wney/cluso-animator/pkg/render"
)

// ErrUnknownFormat is returned for format names no exporter handles.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format represents an export format
type Format string

const (
	// FormatPNG writes transparent PNG images
	FormatPNG Format = "png"
	// FormatSVG writes SVG documents
	FormatSVG Format = "svg"
)

// Options controls the size and look of exported frames.
type Options struct {
	Width         int
	Height        int
	Color         color.RGBA
	LineThickness int
}

// DefaultOptions returns the editor defaults: an 800x600 canvas, black
// strokes, thickness 10.
func DefaultOptions() Options {
	return Options{
		Width:         800,
		Height:        600,
		Color:         color.RGBA{0, 0, 0, 255},
		LineThickness: render.DefaultLineThickness,
	}
}

func (o Options) style() render.Style {
	return render.ExportStyle(o.Color, o.LineThickness)
}

// Result lists the files an export wrote, in frame order, and how many empty
// frames it skipped.
type Result struct {
	Files   []string
	Skipped int
}

// Exporter writes a sequence in one format.
type Exporter interface {
	// Export writes every non-empty frame of seq into dir
	Export(ctx context.Context, seq *keyframe.Sequence, dir string, opts Options) (Result, error)
	// FileExtension returns the extension of written files, with the dot
	FileExtension() string
	// FormatName returns a human-readable name for this format
	FormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format, renderer *render.Renderer) (Exporter, error) {
	if renderer == nil {
		renderer = render.NewRenderer()
	}
	switch format {
	case FormatPNG:
		return &PNGExporter{renderer: renderer}, nil
	case FormatSVG:
		return &SVGExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png", "image":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// AvailableFormats returns every supported format
func AvailableFormats() []Format {
	return []Format{FormatPNG, FormatSVG}
}

// FormatDescriptions returns human-readable descriptions of all formats
func FormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatPNG: "Transparent PNG images, one per keyframe",
		FormatSVG: "SVG documents, one per keyframe",
	}
}

// frameWriter encodes one frame into w.
type frameWriter func(w io.Writer, f *keyframe.Frame) error

// writeFrames walks seq in index order and writes each non-empty frame to
// dir/<k><ext>, k counting written files from 0. Cancellation is checked
// between frames.
func writeFrames(ctx context.Context, seq *keyframe.Sequence, dir, ext string, write frameWriter) (Result, error) {
	var res Result
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("export: create %s: %w", dir, err)
	}

	for i := 0; i < seq.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		f, _ := seq.Frame(i)
		if f.IsEmpty() {
			res.Skipped++
			continue
		}

		path := filepath.Join(dir, strconv.Itoa(len(res.Files))+ext)
		if err := writeFile(path, func(w io.Writer) error { return write(w, f) }); err != nil {
			return res, fmt.Errorf("export: frame %d: %w", i, err)
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}

func writeFile(path string, fill func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return fill(file)
}
