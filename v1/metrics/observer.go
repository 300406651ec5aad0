package metrics

import (
	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

var _ MetricsCollector = (*Metrics)(nil)

// ObserveOperation implements observability.Observer. Operations flagged with
// Metadata["miss"] are counted with status "miss".
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := operationStatus(op)
	m.IncrementOperations(op.Component, op.Operation, status)
	m.RecordOperationDuration(op.Component, op.Operation, op.Duration)
	if op.Size > 0 {
		m.operationSize.WithLabelValues(op.Component, op.Operation).Observe(float64(op.Size))
	}
}

func operationStatus(op observability.OperationContext) string {
	if op.Error != nil {
		return "error"
	}
	if miss, _ := op.Metadata["miss"].(bool); miss {
		return "miss"
	}
	return "success"
}
