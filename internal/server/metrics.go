// Package server exposes harness metrics over HTTP in Prometheus format.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kirill-bayborodov/bignum/internal/logging"
)

// Metrics holds the Prometheus collectors for a harness run. Each Metrics
// value owns its registry, so tests and repeated runs never collide on
// global collector registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	kernelOps     *prometheus.CounterVec
	mismatches    prometheus.Counter
	activeWorkers prometheus.Gauge
	datasetSize   prometheus.Gauge
}

// NewMetrics creates and registers the harness collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		kernelOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_kernel_ops_total",
			Help: "Kernel invocations by kernel and returned status.",
		}, []string{"kernel", "status"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bignum_oracle_mismatches_total",
			Help: "Kernel results that disagreed with the verification oracle.",
		}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bignum_active_workers",
			Help: "Stress worker goroutines currently running.",
		}),
		datasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bignum_dataset_size",
			Help: "Pre-generated operand sets per kernel.",
		}),
	}

	registry.MustRegister(m.kernelOps, m.mismatches, m.activeWorkers, m.datasetSize)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveKernelOp counts one kernel invocation with its returned status.
func (m *Metrics) ObserveKernelOp(kernel, status string) {
	m.kernelOps.WithLabelValues(kernel, status).Inc()
}

// ObserveKernelOps adds a batch of kernel invocations with a shared status.
// The stress harness flushes its counters periodically instead of paying a
// collector update per operation.
func (m *Metrics) ObserveKernelOps(kernel, status string, n float64) {
	m.kernelOps.WithLabelValues(kernel, status).Add(n)
}

// ObserveMismatch counts one oracle disagreement.
func (m *Metrics) ObserveMismatch() {
	m.mismatches.Inc()
}

// IncrementActiveWorkers records a worker start.
func (m *Metrics) IncrementActiveWorkers() {
	m.activeWorkers.Inc()
}

// DecrementActiveWorkers records a worker exit.
func (m *Metrics) DecrementActiveWorkers() {
	m.activeWorkers.Dec()
}

// SetDatasetSize records the dataset gauge.
func (m *Metrics) SetDatasetSize(n int) {
	m.datasetSize.Set(float64(n))
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Serve runs an HTTP server exposing /metrics on addr until ctx is
// canceled. It returns once the server has shut down; startup failures are
// logged, not fatal, so a stress run survives an occupied port.
func (m *Metrics) Serve(ctx context.Context, addr string, log logging.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", err, logging.String("addr", addr))
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	case <-done:
	}
	<-done
}
