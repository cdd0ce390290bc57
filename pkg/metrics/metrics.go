package metrics

import (
	"runtime"
	"time"
)

// Project byte directions
const (
	DirectionRead  = "read"
	DirectionWrite = "write"
)

// RecordOperation counts one editing operation
func (r *Registry) RecordOperation(operation string) {
	r.OperationsTotal.WithLabelValues(operation).Inc()
}

// ObserveGapFill records how long a gap-filling pass took
func (r *Registry) ObserveGapFill(algorithm string, duration time.Duration) {
	r.GapFillDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// UpdateSequence sets the sequence size gauges
func (r *Registry) UpdateSequence(frames, keyframes, nodes int) {
	r.FramesTotal.Set(float64(frames))
	r.KeyframesTotal.Set(float64(keyframes))
	r.NodesTotal.Set(float64(nodes))
}

// RecordExport counts frames written by an export run
func (r *Registry) RecordExport(frames int) {
	r.ExportedFrames.Add(float64(frames))
}

// RecordProjectBytes counts project bytes moved in the given direction
func (r *Registry) RecordProjectBytes(direction string, n int) {
	r.ProjectBytes.WithLabelValues(direction).Add(float64(n))
}

// SetHistoryDepth reports how many undo snapshots are held
func (r *Registry) SetHistoryDepth(depth int) {
	r.HistoryDepth.Set(float64(depth))
}

// RecordLoadFailure counts a project file that could not be loaded
func (r *Registry) RecordLoadFailure() {
	r.ProjectLoadFailure.Inc()
}

// UpdateSystemMetrics refreshes uptime, goroutine and memory gauges
func (r *Registry) UpdateSystemMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.UptimeSeconds.Set(time.Since(r.started).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
	r.MemorySysBytes.Set(float64(mem.Sys))
}
