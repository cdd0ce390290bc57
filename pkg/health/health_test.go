package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func fixed(status Status) CheckFunc {
	return func() Check {
		return Check{Status: status}
	}
}

func TestCheckWorstStatusWins(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"no checks", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy beats degraded", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewHealthChecker()
			for i, s := range tt.statuses {
				hc.RegisterCheck(string(rune('a'+i)), fixed(s))
			}
			resp := hc.Check()
			if resp.Status != tt.want {
				t.Errorf("Status = %s, want %s", resp.Status, tt.want)
			}
			if len(resp.Checks) != len(tt.statuses) {
				t.Errorf("len(Checks) = %d, want %d", len(resp.Checks), len(tt.statuses))
			}
		})
	}
}

func TestCheckFillsName(t *testing.T) {
	hc := NewHealthChecker()
	hc.RegisterCheck("anon", fixed(StatusHealthy))

	resp := hc.Check()
	if got := resp.Checks["anon"].Name; got != "anon" {
		t.Errorf("Name = %q, want anon", got)
	}
	if resp.Checks["anon"].LastChecked.IsZero() {
		t.Error("LastChecked not set")
	}
}

func TestHTTPHandler(t *testing.T) {
	tests := []struct {
		status Status
		code   int
	}{
		{StatusHealthy, http.StatusOK},
		{StatusDegraded, http.StatusOK},
		{StatusUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			hc := NewHealthChecker()
			hc.RegisterCheck("x", fixed(tt.status))

			rec := httptest.NewRecorder()
			hc.HTTPHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			if rec.Code != tt.code {
				t.Errorf("code = %d, want %d", rec.Code, tt.code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var resp Response
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.status {
				t.Errorf("body status = %s, want %s", resp.Status, tt.status)
			}
		})
	}
}

func TestProjectFileCheck(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "walk.anm")
	if err := os.WriteFile(saved, []byte("ANM1"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want Status
	}{
		{"unsaved", "", StatusDegraded},
		{"missing", filepath.Join(dir, "nope.anm"), StatusDegraded},
		{"directory", dir, StatusUnhealthy},
		{"saved", saved, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := ProjectFileCheck(func() string { return tt.path })()
			if check.Status != tt.want {
				t.Errorf("Status = %s (%s), want %s", check.Status, check.Message, tt.want)
			}
		})
	}

	check := ProjectFileCheck(func() string { return saved })()
	if size, _ := check.Details["size_bytes"].(int64); size != 4 {
		t.Errorf("size_bytes = %v, want 4", check.Details["size_bytes"])
	}
}

func TestSourceCheck(t *testing.T) {
	none := SourceCheck(func() (string, int, bool) { return "", 0, false })()
	if none.Status != StatusHealthy {
		t.Errorf("no source: %s", none.Status)
	}

	empty := SourceCheck(func() (string, int, bool) { return "frames", 0, true })()
	if empty.Status != StatusUnhealthy {
		t.Errorf("empty source: %s", empty.Status)
	}

	ok := SourceCheck(func() (string, int, bool) { return "frames", 12, true })()
	if ok.Status != StatusHealthy || ok.Details["frames"] != 12 {
		t.Errorf("source: %s %v", ok.Status, ok.Details)
	}
}

func TestMemoryCheck(t *testing.T) {
	high := MemoryCheck(func() (uint64, uint64) { return 95, 100 })()
	if high.Status != StatusDegraded {
		t.Errorf("high usage: %s", high.Status)
	}

	normal := MemoryCheck(func() (uint64, uint64) { return 10, 100 })()
	if normal.Status != StatusHealthy {
		t.Errorf("normal usage: %s", normal.Status)
	}

	zero := MemoryCheck(func() (uint64, uint64) { return 0, 0 })()
	if zero.Status != StatusHealthy {
		t.Errorf("zero sys: %s", zero.Status)
	}
}
