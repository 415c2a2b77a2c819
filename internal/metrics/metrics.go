// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SyncRuns counts bootstrap sync attempts by outcome ("success"/"failed").
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fpl_sync_runs_total",
		Help: "Bootstrap sync runs by outcome.",
	}, []string{"status"})

	// OptimizeRequests counts optimization runs served.
	OptimizeRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpl_optimize_requests_total",
		Help: "Optimization requests served.",
	})

	// OptimizeDuration observes end-to-end optimization handler time.
	OptimizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fpl_optimize_duration_seconds",
		Help:    "Optimization request duration, including data sourcing.",
		Buckets: prometheus.DefBuckets,
	})

	// RecommendationsReturned observes how many recommendations each run produced.
	RecommendationsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fpl_recommendations_returned",
		Help:    "Recommendations returned per optimization.",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	})
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
