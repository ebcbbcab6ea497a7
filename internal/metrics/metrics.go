// Package metrics defines the Prometheus collectors used by arttable and an
// optional listener that exposes them.
//
// Metrics:
//   - arttable_requests_total{status} (Counter): catalog requests by HTTP status
//   - arttable_request_duration_seconds (Histogram): catalog request latency
//   - arttable_errors_total{class} (Counter): failed fetches by error class
//   - arttable_stale_responses_total (Counter): responses dropped because a newer request was issued
//   - arttable_selected_records (Gauge): size of the current selection
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arttable/internal/logging"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arttable_requests_total",
		Help: "Total catalog requests by HTTP status",
	}, []string{"status"})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arttable_request_duration_seconds",
		Help:    "Catalog request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arttable_errors_total",
		Help: "Total failed catalog fetches by error class",
	}, []string{"class"})

	StaleResponsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arttable_stale_responses_total",
		Help: "Responses discarded because a newer page request was issued",
	})

	SelectedRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arttable_selected_records",
		Help: "Number of currently selected artwork records",
	})
)

// Serve exposes /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string) error {
	logger := logging.NewLogger("metrics")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("Metrics listener started")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
