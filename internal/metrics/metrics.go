// Package metrics provides Prometheus metrics for the catalog server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Catalog activity, one increment per activity record
	catalogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsrecovery_catalog_operations_total",
			Help: "Total catalog activity records by operation",
		},
		[]string{"operation"},
	)

	// gRPC request metrics
	grpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsrecovery_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	grpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fsrecovery_grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Compaction metrics
	compactionRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fsrecovery_compaction_runs_total",
			Help: "Total compaction passes performed by the controller",
		},
	)

	compactionRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fsrecovery_compaction_removed_entries_total",
			Help: "Total deleted entries removed by compaction",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordGRPCRequest records a finished gRPC request.
func RecordGRPCRequest(method, code string, duration time.Duration) {
	grpcRequestsTotal.WithLabelValues(method, code).Inc()
	grpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordCompaction records one compaction pass.
func RecordCompaction(removed int) {
	compactionRunsTotal.Inc()
	compactionRemovedTotal.Add(float64(removed))
}
