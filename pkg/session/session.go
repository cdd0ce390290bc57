// Package session ties a keyframe sequence to the editing state around it:
// the current frame, undo history, background frames, configuration,
// logging and metrics.
//
// A Session is a single logical actor. It is not safe for concurrent use;
// callers that share one across goroutines must serialize access.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-animator/pkg/config"
	"github.com/dd0wney/cluso-animator/pkg/history"
	"github.com/dd0wney/cluso-animator/pkg/keyframe"
	"github.com/dd0wney/cluso-animator/pkg/logging"
	"github.com/dd0wney/cluso-animator/pkg/metrics"
	"github.com/dd0wney/cluso-animator/pkg/raster"
	"github.com/dd0wney/cluso-animator/pkg/render"
)

var (
	// ErrNodeNotFound is returned when an edit addresses a missing node.
	ErrNodeNotFound = errors.New("session: node not found")
	// ErrNoSelection is returned when an edit needs a selected node.
	ErrNoSelection = errors.New("session: no node selected")
)

// Session is an editing session over one sequence.
type Session struct {
	cfg      *config.Config
	seq      *keyframe.Sequence
	current  int
	id       uuid.UUID
	path     string
	source   raster.Source
	rasterAt string
	viewport *raster.Viewport
	history  *history.History
	renderer *render.Renderer
	logger   logging.Logger
	metrics  *metrics.Registry
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Session) {
		s.metrics = r
	}
}

// WithSource sets the background frame source.
func WithSource(src raster.Source) Option {
	return func(s *Session) {
		s.source = src
		if src != nil {
			s.rasterAt = src.Path()
		}
	}
}

// WithSequence starts the session from an existing sequence.
func WithSequence(seq *keyframe.Sequence) Option {
	return func(s *Session) {
		if seq != nil {
			s.seq = seq.Clone()
		}
	}
}

// New creates a session. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Session{
		cfg:      cfg,
		seq:      keyframe.NewSequence(),
		id:       uuid.New(),
		viewport: raster.NewViewport(cfg.CanvasWidth, cfg.CanvasHeight),
		history:  history.New(cfg.HistoryCapacity),
		renderer: render.NewRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.DefaultLogger()
	}
	if s.metrics == nil {
		s.metrics = metrics.DefaultRegistry()
	}
	s.logger = s.logger.With(logging.Component("session"))

	s.history.SaveState(s.seq)
	s.publish()
	return s
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// ID identifies the project being edited.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the index of the frame being edited.
func (s *Session) Current() int {
	return s.current
}

// Sequence returns a copy of the edited sequence.
func (s *Session) Sequence() *keyframe.Sequence {
	return s.seq.Clone()
}

// Frame returns a copy of the current frame. ok is false when the current
// index lies past the end of the sequence.
func (s *Session) Frame() (*keyframe.Frame, bool) {
	return s.seq.Frame(s.current)
}

// Path returns the project file the session was last saved to or loaded from.
func (s *Session) Path() string {
	return s.path
}

// RasterPath returns the location of the background frames, if any.
func (s *Session) RasterPath() string {
	return s.rasterAt
}

// Source returns the background frame source, which may be nil.
func (s *Session) Source() raster.Source {
	return s.source
}

// Viewport returns the viewport used to fit background frames.
func (s *Session) Viewport() *raster.Viewport {
	return s.viewport
}

// CanUndo reports whether Undo would change anything.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// HistoryStats returns the 1-based history position and snapshot count.
func (s *Session) HistoryStats() (current, total int) {
	return s.history.Stats()
}

// commit records the current sequence after a structural edit.
func (s *Session) commit(op string, fields ...logging.Field) {
	s.history.SaveState(s.seq)
	s.metrics.RecordOperation(op)
	s.publish()

	fields = append(fields, logging.Operation(op), logging.FrameIndex(s.current))
	s.logger.Debug("sequence edited", fields...)
}

func (s *Session) publish() {
	st := s.seq.Stats()
	s.metrics.UpdateSequence(st.Frames, st.Keyframes, st.Nodes)
	_, depth := s.history.Stats()
	s.metrics.SetHistoryDepth(depth)
}
