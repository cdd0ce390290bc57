package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/dd0wney/cluso-animator/pkg/health"
	"github.com/dd0wney/cluso-animator/pkg/logging"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.OperationsTotal == nil {
		t.Error("OperationsTotal not initialized")
	}
	if r.GapFillDuration == nil {
		t.Error("GapFillDuration not initialized")
	}
	if r.FramesTotal == nil {
		t.Error("FramesTotal not initialized")
	}
	if r.UptimeSeconds == nil {
		t.Error("UptimeSeconds not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestNewRegistryIsolated(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.RecordOperation("repeat")

	if got := testutil.ToFloat64(b.OperationsTotal.WithLabelValues("repeat")); got != 0 {
		t.Errorf("registries share state: b counter = %v", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordOperation(t *testing.T) {
	r := NewRegistry()

	r.RecordOperation("insert_node")
	r.RecordOperation("insert_node")
	r.RecordOperation("interpolate")

	counter, err := r.OperationsTotal.GetMetricWithLabelValues("insert_node")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Counter value = %v, want 2", metric.Counter.GetValue())
	}
	if got := testutil.ToFloat64(r.OperationsTotal.WithLabelValues("interpolate")); got != 1 {
		t.Errorf("interpolate counter = %v, want 1", got)
	}
}

func TestObserveGapFill(t *testing.T) {
	r := NewRegistry()

	r.ObserveGapFill("linear", 2*time.Millisecond)
	r.ObserveGapFill("linear", 3*time.Millisecond)

	if got := testutil.CollectAndCount(r.GapFillDuration, "animator_gap_fill_duration_seconds"); got != 1 {
		t.Errorf("series count = %d, want 1", got)
	}

	observer, err := r.GapFillDuration.GetMetricWithLabelValues("linear")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := observer.(interface{ Write(*dto.Metric) error }).Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("sample count = %d, want 2", metric.Histogram.GetSampleCount())
	}
}

func TestGaugeMetrics(t *testing.T) {
	r := NewRegistry()

	r.UpdateSequence(12, 3, 27)
	r.SetHistoryDepth(4)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"frames", testutil.ToFloat64(r.FramesTotal), 12},
		{"keyframes", testutil.ToFloat64(r.KeyframesTotal), 3},
		{"nodes", testutil.ToFloat64(r.NodesTotal), 27},
		{"history", testutil.ToFloat64(r.HistoryDepth), 4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s gauge = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCounters(t *testing.T) {
	r := NewRegistry()

	r.RecordExport(5)
	r.RecordExport(2)
	r.RecordProjectBytes(DirectionWrite, 100)
	r.RecordProjectBytes(DirectionRead, 40)
	r.RecordProjectBytes(DirectionRead, 2)
	r.RecordLoadFailure()

	if got := testutil.ToFloat64(r.ExportedFrames); got != 7 {
		t.Errorf("exported frames = %v, want 7", got)
	}
	if got := testutil.ToFloat64(r.ProjectBytes.WithLabelValues(DirectionRead)); got != 42 {
		t.Errorf("read bytes = %v, want 42", got)
	}
	if got := testutil.ToFloat64(r.ProjectBytes.WithLabelValues(DirectionWrite)); got != 100 {
		t.Errorf("write bytes = %v, want 100", got)
	}
	if got := testutil.ToFloat64(r.ProjectLoadFailure); got != 1 {
		t.Errorf("load failures = %v, want 1", got)
	}
}

func TestSystemMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateSystemMetrics()

	if testutil.ToFloat64(r.GoRoutines) < 1 {
		t.Error("goroutine gauge should be at least 1")
	}
	if testutil.ToFloat64(r.MemorySysBytes) <= 0 {
		t.Error("memory gauge should be positive")
	}
}

func TestGetPrometheusRegistry(t *testing.T) {
	r := NewRegistry()
	r.RecordOperation("select")
	r.RecordProjectBytes(DirectionWrite, 1)
	r.ObserveGapFill("linear", time.Millisecond)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	names := make(map[string]bool)
	for _, m := range families {
		names[m.GetName()] = true
	}

	for _, expected := range []string{
		"animator_operations_total",
		"animator_gap_fill_duration_seconds",
		"animator_frames_total",
		"animator_keyframes_total",
		"animator_exported_frames_total",
		"animator_project_bytes",
		"animator_uptime_seconds",
	} {
		if !names[expected] {
			t.Errorf("Expected metric %s not found", expected)
		}
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordOperation("clear_frame")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `animator_operations_total{operation="clear_frame"} 1`) {
		t.Errorf("exposition missing operation counter:\n%s", body)
	}
	if !strings.Contains(body, "animator_goroutines") {
		t.Error("exposition missing refreshed system gauges")
	}
}

func TestStartServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := StartServer(ctx, "127.0.0.1:0", NewRegistry(), nil, logging.NewNopLogger())
	if srv.Handler == nil {
		t.Fatal("server has no handler")
	}

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestStartServerWithHealthChecker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hc := health.NewHealthChecker()
	hc.RegisterCheck("broken", func() health.Check {
		return health.Check{Status: health.StatusUnhealthy, Message: "down"}
	})
	srv := StartServer(ctx, "127.0.0.1:0", NewRegistry(), hc, logging.NewNopLogger())

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("healthz = %d, want 503", resp.StatusCode)
	}
}

func TestConcurrentMetricUpdates(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.RecordOperation("insert_node")
				r.UpdateSystemMetrics()
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(r.OperationsTotal.WithLabelValues("insert_node")); got != 1000 {
		t.Errorf("counter = %v, want 1000", got)
	}
}

func BenchmarkRecordOperation(b *testing.B) {
	r := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordOperation("insert_node")
	}
}
