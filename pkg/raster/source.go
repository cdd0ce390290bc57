// Package raster provides the read-only background frames an animation is
// drawn over, and the viewport that fits them into the editing canvas.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrNoFrames is returned when a source holds no decodable frames.
	ErrNoFrames = errors.New("raster: source has no frames")
	// ErrUnsupportedFormat is returned for files the image registry cannot decode.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")
)

// Source yields background frames by index.
type Source interface {
	Len() int
	Frame(ctx context.Context, index int) (image.Image, error)
	Path() string
}

var supportedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ImageSequence is a Source over an ordered list of still images.
type ImageSequence struct {
	path  string
	files []string

	mu        sync.Mutex
	lastIndex int
	last      image.Image
}

// NewImageSequence wraps files in the given order.
func NewImageSequence(files ...string) (*ImageSequence, error) {
	if len(files) == 0 {
		return nil, ErrNoFrames
	}
	for _, f := range files {
		if !supportedExt[strings.ToLower(filepath.Ext(f))] {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
		}
	}
	path := files[0]
	if len(files) > 1 {
		path = filepath.Dir(files[0])
	}
	return &ImageSequence{path: path, files: files, lastIndex: -1}, nil
}

// Open returns a Source for path: a directory of images, or a single image
// file used for every frame.
func Open(path string) (*ImageSequence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	if !info.IsDir() {
		return NewImageSequence(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("raster: read dir %s: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !supportedExt[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, path)
	}
	sortFrameFiles(files)

	seq, err := NewImageSequence(files...)
	if err != nil {
		return nil, err
	}
	seq.path = path
	return seq, nil
}

// sortFrameFiles orders numbered files numerically (2.png before 10.png)
// and everything else lexically after them.
func sortFrameFiles(files []string) {
	number := func(f string) (int, bool) {
		base := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		n, err := strconv.Atoi(base)
		return n, err == nil
	}
	sort.SliceStable(files, func(i, j int) bool {
		a, aok := number(files[i])
		b, bok := number(files[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return files[i] < files[j]
		}
	})
}

// Len returns the number of frames.
func (s *ImageSequence) Len() int {
	return len(s.files)
}

// Path returns the directory or file the sequence was opened from.
func (s *ImageSequence) Path() string {
	return s.path
}

// Files returns the ordered frame files.
func (s *ImageSequence) Files() []string {
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Frame decodes the frame at index. Indices past the end clamp to the last
// frame and negative indices to the first. The most recent frame is cached.
func (s *ImageSequence) Frame(ctx context.Context, index int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	index = max(0, min(index, len(s.files)-1))

	s.mu.Lock()
	defer s.mu.Unlock()
	if index == s.lastIndex && s.last != nil {
		return s.last, nil
	}

	f, err := os.Open(s.files[index])
	if err != nil {
		return nil, fmt.Errorf("raster: open frame %d: %w", index, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.files[index])
		}
		return nil, fmt.Errorf("raster: decode frame %d: %w", index, err)
	}

	s.lastIndex, s.last = index, img
	return img, nil
}
