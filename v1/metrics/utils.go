package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PoolSnapshot is a point-in-time view of a connection pool.
type PoolSnapshot struct {
	Hits       uint32
	Misses     uint32
	Timeouts   uint32
	TotalConns uint32
	IdleConns  uint32
	StaleConns uint32
}

// IncrementOperations increments the operation counter.
// Example: m.IncrementOperations("redis", "get", "success")
func (m *Metrics) IncrementOperations(component, operation, status string) {
	m.operationsTotal.WithLabelValues(component, operation, status).Inc()
}

// RecordOperationDuration records the duration (in seconds) of an operation.
func (m *Metrics) RecordOperationDuration(component, operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(component, operation).Observe(d.Seconds())
}

// RegisterPool exports the pool statistics returned by stats as gauges
// labelled pool=<name>. stats is called on every scrape.
func (m *Metrics) RegisterPool(name string, stats func() PoolSnapshot) error {
	return m.registerer.Register(&poolCollector{
		stats: stats,
		desc: map[string]*prometheus.Desc{
			"hits":        m.poolDesc(name, "pool_hits_total", "Number of times a free connection was found in the pool"),
			"misses":      m.poolDesc(name, "pool_misses_total", "Number of times a free connection was not found in the pool"),
			"timeouts":    m.poolDesc(name, "pool_timeouts_total", "Number of times a wait for a connection timed out"),
			"total_conns": m.poolDesc(name, "pool_connections", "Number of connections in the pool"),
			"idle_conns":  m.poolDesc(name, "pool_idle_connections", "Number of idle connections in the pool"),
			"stale_conns": m.poolDesc(name, "pool_stale_connections_total", "Number of stale connections removed from the pool"),
		},
	})
}

func (m *Metrics) poolDesc(pool, name, help string) *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName(m.namespace, "", name),
		help,
		nil,
		prometheus.Labels{"pool": pool},
	)
}

type poolCollector struct {
	stats func() PoolSnapshot
	desc  map[string]*prometheus.Desc
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.desc {
		ch <- d
	}
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.desc["hits"], prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.desc["misses"], prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.desc["timeouts"], prometheus.CounterValue, float64(s.Timeouts))
	ch <- prometheus.MustNewConstMetric(c.desc["total_conns"], prometheus.GaugeValue, float64(s.TotalConns))
	ch <- prometheus.MustNewConstMetric(c.desc["idle_conns"], prometheus.GaugeValue, float64(s.IdleConns))
	ch <- prometheus.MustNewConstMetric(c.desc["stale_conns"], prometheus.CounterValue, float64(s.StaleConns))
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(m.namespace, name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(gauge)
	return gauge
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

func createGaugeVec(namespace, name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}
