package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEditorMetrics() {
	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "animator_operations_total",
			Help: "Total number of editing operations applied to the sequence",
		},
		[]string{"operation"},
	)

	r.GapFillDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "animator_gap_fill_duration_seconds",
			Help:    "Time spent filling frames between keyframes",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"algorithm"},
	)

	r.FramesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "animator_frames_total",
			Help: "Number of frames in the sequence",
		},
	)

	r.KeyframesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "animator_keyframes_total",
			Help: "Number of frames holding at least one node",
		},
	)

	r.NodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "animator_nodes_total",
			Help: "Number of nodes across all frames",
		},
	)

	r.ExportedFrames = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "animator_exported_frames_total",
			Help: "Total number of frames written by exports",
		},
	)

	r.ProjectBytes = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "animator_project_bytes",
			Help: "Bytes of project data read or written",
		},
		[]string{"direction"},
	)

	r.HistoryDepth = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "animator_history_depth",
			Help: "Number of snapshots held by the undo history",
		},
	)

	r.ProjectLoadFailure = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "animator_project_load_failures_total",
			Help: "Total number of project files that failed to load",
		},
	)
}
