package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

func newRecordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewWithProvider(tp, nil), sr
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestObserveOperationCreatesSpan(t *testing.T) {
	tr, sr := newRecordingTracer(t)

	tr.ObserveOperation(observability.OperationContext{
		Context:     context.Background(),
		Component:   "redis",
		Operation:   "hgetall",
		Resource:    "user:1",
		SubResource: "direct",
		Duration:    20 * time.Millisecond,
		Size:        4,
		Metadata:    map[string]interface{}{"driver": "goredis"},
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "redis.hgetall", span.Name())
	assert.Equal(t, traceSpan.SpanKindClient, span.SpanKind())
	assert.GreaterOrEqual(t, span.EndTime().Sub(span.StartTime()), 20*time.Millisecond)

	attrs := attrMap(span.Attributes())
	assert.Equal(t, "redis", attrs["db.system"].AsString())
	assert.Equal(t, "hgetall", attrs["db.operation"].AsString())
	assert.Equal(t, "user:1", attrs["db.redis.key"].AsString())
	assert.Equal(t, "direct", attrs["rediskit.mode"].AsString())
	assert.Equal(t, int64(4), attrs["rediskit.size"].AsInt64())
	assert.Equal(t, "goredis", attrs["rediskit.driver"].AsString())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestObserveOperationRecordsError(t *testing.T) {
	tr, sr := newRecordingTracer(t)

	tr.ObserveOperation(observability.OperationContext{
		Component: "redis",
		Operation: "pipeline",
		Error:     errors.New("connection reset"),
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "connection reset", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestObserveOperationNestsUnderParent(t *testing.T) {
	tr, sr := newRecordingTracer(t)

	ctx, parent := tr.StartSpan(context.Background(), "load-cart")
	tr.ObserveOperation(observability.OperationContext{Context: ctx, Component: "redis", Operation: "get"})
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestSetAttributes(t *testing.T) {
	tr, sr := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "attrs")
	tr.SetAttributes(span, map[string]interface{}{
		"s": "v",
		"i": 3,
		"f": 1.5,
		"b": true,
		"d": time.Second,
	})
	tr.SetAttributes(span, nil)
	span.End()

	attrs := attrMap(sr.Ended()[0].Attributes())
	assert.Equal(t, "v", attrs["s"].AsString())
	assert.Equal(t, int64(3), attrs["i"].AsInt64())
	assert.Equal(t, 1.5, attrs["f"].AsFloat64())
	assert.True(t, attrs["b"].AsBool())
	assert.Equal(t, "1s", attrs["d"].AsString())
}

func TestCarrierRoundTrip(t *testing.T) {
	tr, _ := newRecordingTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "publish")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	remote := traceSpan.SpanContextFromContext(tr.SetCarrierOnContext(context.Background(), carrier))
	assert.Equal(t, span.SpanContext().TraceID(), remote.TraceID())
	assert.True(t, remote.IsRemote())
}

func TestNewClientWithoutExport(t *testing.T) {
	tr, err := NewClient(Config{ServiceName: "cart", AppEnv: "test"}, nil)
	require.NoError(t, err)
	assert.NoError(t, tr.Shutdown(context.Background()))

	var nilTracer *Tracer
	assert.NoError(t, nilTracer.Shutdown(context.Background()))
}
