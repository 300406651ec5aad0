package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

var _ observability.Observer = (*Tracer)(nil)

// ObserveOperation implements observability.Observer. Each operation becomes
// a client span named "<component>.<operation>" whose start time is
// back-dated by the operation's duration. Misses are not recorded as errors.
func (t *Tracer) ObserveOperation(op observability.OperationContext) {
	ctx := op.Context
	if ctx == nil {
		ctx = context.Background()
	}

	end := time.Now()
	attrs := []attribute.KeyValue{
		attribute.String("db.system", op.Component),
		attribute.String("db.operation", op.Operation),
	}
	if op.Resource != "" {
		attrs = append(attrs, attribute.String("db.redis.key", op.Resource))
	}
	if op.SubResource != "" {
		attrs = append(attrs, attribute.String("rediskit.mode", op.SubResource))
	}
	if op.Size > 0 {
		attrs = append(attrs, attribute.Int64("rediskit.size", op.Size))
	}

	_, span := t.StartSpan(ctx, op.Component+"."+op.Operation,
		traceSpan.WithSpanKind(traceSpan.SpanKindClient),
		traceSpan.WithTimestamp(end.Add(-op.Duration)),
		traceSpan.WithAttributes(attrs...),
	)
	if len(op.Metadata) > 0 {
		meta := make(map[string]interface{}, len(op.Metadata))
		for k, v := range op.Metadata {
			meta["rediskit."+k] = v
		}
		t.SetAttributes(span, meta)
	}
	if op.Error != nil {
		t.RecordErrorOnSpan(span, op.Error)
	}
	span.End(traceSpan.WithTimestamp(end))
}
