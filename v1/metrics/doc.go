// Package metrics provides Prometheus-based metrics for rediskit clients.
//
// A *Metrics value owns an isolated Prometheus registry, an HTTP server that
// exposes it on /metrics, and a small set of operation metrics. It implements
// observability.Observer, so it can be attached to a client directly:
//
//	import (
//		"github.com/Aleph-Alpha/rediskit/v1/metrics"
//		"github.com/Aleph-Alpha/rediskit/v1/redis"
//	)
//
//	m := metrics.NewMetrics(metrics.Config{
//		Namespace:   "checkout",
//		ServiceName: "cart-service",
//	})
//	client.WithObserver(m)
//	_ = m.RegisterPool("cache", func() metrics.PoolSnapshot {
//		s := client.PoolStats()
//		return metrics.PoolSnapshot(s)
//	})
//	go m.Server.ListenAndServe()
//
// # Exported Metrics
//
//   - <namespace>_operations_total{component, operation, status}
//   - <namespace>_operation_duration_seconds{component, operation}
//   - <namespace>_operation_size{component, operation}
//   - <namespace>_pool_* gauges and counters per registered pool
//
// status is "success", "miss" (a Nil reply) or "error". Every metric carries a
// constant service label.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{ServiceName: "cart-service"}
//		}),
//	)
//
// The server is started in OnStart and shut down in OnStop.
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=checkout
//	METRICS_SERVICE_NAME=cart-service
//
// # Custom Metrics
//
// CreateCounter, CreateHistogram and CreateGauge register additional vectors in
// the same namespace and with the same service label.
//
// # Thread Safety
//
// All methods on Metrics are safe for concurrent use.
package metrics
