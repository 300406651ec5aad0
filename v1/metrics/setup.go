package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// operationBuckets span 100µs to roughly 3s, which covers a cache round trip
// as well as a slow pipeline flush.
var operationBuckets = prometheus.ExponentialBuckets(0.0001, 2, 16)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing operation metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationSize     *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, wraps it with a constant
// `service` label, registers the operation metrics and creates an HTTP server
// exposing the /metrics endpoint.
//
// The registered metrics are:
//   - <namespace>_operations_total{component, operation, status}
//   - <namespace>_operation_duration_seconds{component, operation}
//   - <namespace>_operation_size{component, operation}
//
// status is one of "success", "miss" or "error".
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	client.WithObserver(m)
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	cfg = cfg.WithDefaults()

	registry := prometheus.NewRegistry()

	// All metrics emitted by this service carry service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: wrappedRegistry,
	}

	m.operationsTotal = createCounterVec(m.namespace, "operations_total", "Total number of completed operations", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec(m.namespace, "operation_duration_seconds", "Duration of operations in seconds", []string{"component", "operation"}, operationBuckets)
	m.operationSize = createHistogramVec(m.namespace, "operation_size", "Reply size or batch length of operations", []string{"component", "operation"}, prometheus.ExponentialBuckets(1, 4, 10))

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.operationSize,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}
