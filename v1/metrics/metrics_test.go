package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

func TestNewMetricsDefaults(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "cart"})

	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
	assert.NotNil(t, m.Registry)
}

func TestObserveOperation(t *testing.T) {
	m := NewMetrics(Config{Namespace: "kit", ServiceName: "cart"})

	m.ObserveOperation(observability.OperationContext{
		Context:   context.Background(),
		Component: "redis",
		Operation: "get",
		Duration:  2 * time.Millisecond,
		Size:      5,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "redis",
		Operation: "get",
		Metadata:  map[string]interface{}{"miss": true},
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "redis",
		Operation: "get",
		Error:     errors.New("boom"),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("redis", "get", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("redis", "get", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("redis", "get", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))

	expected := `
# HELP kit_operations_total Total number of completed operations
# TYPE kit_operations_total counter
kit_operations_total{component="redis",operation="get",service="cart",status="error"} 1
kit_operations_total{component="redis",operation="get",service="cart",status="miss"} 1
kit_operations_total{component="redis",operation="get",service="cart",status="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "kit_operations_total"))
}

func TestRegisterPool(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "cart"})

	snap := PoolSnapshot{Hits: 10, Misses: 2, TotalConns: 4, IdleConns: 3}
	require.NoError(t, m.RegisterPool("cache", func() PoolSnapshot { return snap }))

	expected := `
# HELP pool_connections Number of connections in the pool
# TYPE pool_connections gauge
pool_connections{pool="cache",service="cart"} 4
# HELP pool_idle_connections Number of idle connections in the pool
# TYPE pool_idle_connections gauge
pool_idle_connections{pool="cache",service="cart"} 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "pool_connections", "pool_idle_connections"))

	assert.Error(t, m.RegisterPool("cache", func() PoolSnapshot { return snap }))
}

func TestCustomMetrics(t *testing.T) {
	m := NewMetrics(Config{Namespace: "kit", ServiceName: "cart"})

	c := m.CreateCounter("evictions_total", "Evicted keys", []string{"reason"})
	c.WithLabelValues("ttl").Add(3)
	g := m.CreateGauge("queue_depth", "Queue depth", []string{"queue"})
	g.WithLabelValues("jobs").Set(7)
	h := m.CreateHistogram("payload_bytes", "Payload size", []string{"kind"}, []float64{10, 100})
	h.WithLabelValues("json").Observe(42)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.WithLabelValues("ttl")))
	assert.Equal(t, 7.0, testutil.ToFloat64(g.WithLabelValues("jobs")))
	assert.Equal(t, 1, testutil.CollectAndCount(h))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "cart"})
	m.IncrementOperations("redis", "set", "success")

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `operations_total{component="redis",operation="set",service="cart",status="success"} 1`)
}
