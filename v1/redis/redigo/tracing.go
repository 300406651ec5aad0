package redigo

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Aleph-Alpha/rediskit/v1/redis/redigo"

// tracer creates one client span per operation. A nil tracer is a no-op.
type tracer struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

func newTracer(addr string) *tracer {
	return &tracer{
		tracer: otel.Tracer(instrumentationName),
		attrs: []attribute.KeyValue{
			attribute.String("db.system", "redis"),
			attribute.String("server.address", addr),
		},
	}
}

func (t *tracer) start(ctx context.Context, kind string, args []interface{}) (context.Context, func(error)) {
	if t == nil {
		return ctx, func(error) {}
	}
	name := kind
	if len(args) > 0 {
		name = strings.ToLower(fmt.Sprint(args[0]))
	}
	return t.span(ctx, name, attribute.String("db.operation.name", name))
}

func (t *tracer) startBatch(ctx context.Context, kind string, n int) (context.Context, func(error)) {
	if t == nil {
		return ctx, func(error) {}
	}
	return t.span(ctx, kind,
		attribute.String("db.operation.name", kind),
		attribute.Int("db.operation.batch.size", n),
	)
}

func (t *tracer) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := t.tracer.Start(ctx, "redis."+name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(t.attrs...),
		trace.WithAttributes(attrs...),
	)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
