package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-animator/pkg/health"
	"github.com/dd0wney/cluso-animator/pkg/logging"
)

// StartServer serves /metrics and /healthz on addr until ctx is cancelled.
// The returned server is already listening in the background. With a nil
// checker /healthz answers a plain "ok".
func StartServer(ctx context.Context, addr string, r *Registry, hc *health.HealthChecker, logger logging.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	if hc != nil {
		mux.Handle("/healthz", hc.HTTPHandler())
	} else {
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv
}
