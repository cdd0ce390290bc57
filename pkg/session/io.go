package session

import (
	"context"
	"image"
	"image/draw"

	"github.com/dd0wney/cluso-animator/pkg/export"
	"github.com/dd0wney/cluso-animator/pkg/history"
	"github.com/dd0wney/cluso-animator/pkg/keyframe"
	"github.com/dd0wney/cluso-animator/pkg/logging"
	"github.com/dd0wney/cluso-animator/pkg/metrics"
	"github.com/dd0wney/cluso-animator/pkg/project"
	"github.com/dd0wney/cluso-animator/pkg/raster"
	"github.com/dd0wney/cluso-animator/pkg/validation"
)

// OpenRaster loads background frames from a directory or image file.
func (s *Session) OpenRaster(path string) error {
	src, err := raster.Open(path)
	if err != nil {
		s.logger.Warn("failed to open raster source", logging.Path(path), logging.Error(err))
		return err
	}
	s.source = src
	s.rasterAt = src.Path()
	s.logger.Info("raster source opened", logging.Path(path), logging.Count(src.Len()))
	return nil
}

// Save writes the project to path, or to the last used path when path is
// empty. The project extension is added when path has none.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.path
	}
	path = project.WithExt(path)

	p := &project.Project{
		ID:         s.id,
		RasterPath: s.rasterAt,
		Sequence:   s.seq,
	}
	n, err := project.Save(path, p)
	if err != nil {
		s.logger.Error("failed to save project", logging.Path(path), logging.Error(err))
		return err
	}

	s.path = path
	s.metrics.RecordProjectBytes(metrics.DirectionWrite, n)
	s.logger.Info("project saved", logging.Path(path), logging.Int("bytes", n))
	return nil
}

// Load replaces the session state with the project at path. On failure the
// session is left untouched.
func (s *Session) Load(path string) error {
	p, n, err := project.Load(path)
	if err != nil {
		s.metrics.RecordLoadFailure()
		s.logger.Error("failed to load project", logging.Path(path), logging.Error(err))
		return err
	}

	seq := p.Sequence
	if seq == nil {
		seq = keyframe.NewSequence()
	}

	s.seq = seq
	s.id = p.ID
	s.path = path
	s.current = 0
	s.rasterAt = p.RasterPath
	s.source = nil
	if p.RasterPath != "" {
		if src, err := raster.Open(p.RasterPath); err != nil {
			s.logger.Warn("raster source unavailable", logging.Path(p.RasterPath), logging.Error(err))
		} else {
			s.source = src
		}
	}

	s.history = history.New(s.cfg.HistoryCapacity)
	s.history.SaveState(s.seq)
	s.metrics.RecordProjectBytes(metrics.DirectionRead, n)
	s.publish()

	st := s.seq.Stats()
	s.logger.Info("project loaded",
		logging.Path(path),
		logging.Int("frames", st.Frames),
		logging.Int("keyframes", st.Keyframes))
	return nil
}

// Export writes every keyframe to dir in the named format.
func (s *Session) Export(ctx context.Context, dir, format string) (export.Result, error) {
	opts := s.cfg.ExportOptions()
	req := validation.ExportRequest{Dir: dir, Format: format, Width: opts.Width, Height: opts.Height}
	if err := validation.ValidateExportRequest(&req); err != nil {
		return export.Result{}, err
	}

	f, err := export.ParseFormat(req.Format)
	if err != nil {
		return export.Result{}, err
	}
	exp, err := export.NewExporter(f, s.renderer)
	if err != nil {
		return export.Result{}, err
	}

	timer := logging.StartTimer(s.logger, "export", logging.Path(dir), logging.Format(exp.FormatName()))
	res, err := exp.Export(ctx, s.seq, req.Dir, opts)
	if err != nil {
		timer.EndError(err)
		return res, err
	}
	timer.EndWithLevel(logging.InfoLevel, "export finished")
	s.metrics.RecordExport(len(res.Files))
	return res, nil
}

// Render draws the current frame into dst over the background frame, fitted
// through the viewport. Without a raster source the background is black.
func (s *Session) Render(ctx context.Context, dst draw.Image) error {
	var bg image.Image
	if s.source != nil && s.source.Len() > 0 {
		img, err := s.source.Frame(ctx, s.current)
		if err != nil {
			return err
		}
		bg = img
	}

	canvas := s.viewport.Fit(bg)
	draw.Draw(dst, dst.Bounds(), canvas, image.Point{}, draw.Src)
	s.renderer.RenderSequenceFrame(s.seq, s.current, dst, s.cfg.Style.RenderStyle())
	return nil
}

// RenderImage renders the current frame onto a new canvas-sized image.
func (s *Session) RenderImage(ctx context.Context) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, s.cfg.CanvasWidth, s.cfg.CanvasHeight))
	if err := s.Render(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}
