package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

// MetricsCollector records operation metrics and exposes factories for custom
// Prometheus metrics.
//
// This interface is implemented by the concrete *Metrics type. Because it
// embeds observability.Observer, a collector can be handed directly to
// redis.RedisClient.WithObserver.
type MetricsCollector interface {
	observability.Observer

	// IncrementOperations increments the operation counter.
	IncrementOperations(component, operation, status string)

	// RecordOperationDuration records how long an operation took.
	RecordOperationDuration(component, operation string, d time.Duration)

	// RegisterPool exports connection pool statistics under the given pool name.
	RegisterPool(name string, stats func() PoolSnapshot) error

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
