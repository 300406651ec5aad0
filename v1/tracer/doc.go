// Package tracer provides OpenTelemetry tracing for rediskit clients.
//
// A *Tracer wraps an SDK TracerProvider. It offers span helpers (StartSpan,
// SetAttributes, RecordErrorOnSpan), W3C context propagation through plain
// string maps (GetCarrier, SetCarrierOnContext) and implements
// observability.Observer, turning every completed command, pipeline or
// transaction into a client span:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "cart-service"}, log)
//	if err != nil {
//		return err
//	}
//	defer t.Shutdown(context.Background())
//
//	client.WithObserver(observability.Multi(m, t))
//
// Spans are named "<component>.<operation>", for example "redis.get" or
// "redis.pipeline", and carry db.system, db.operation and db.redis.key
// attributes. A Nil reply is recorded as rediskit.miss=true rather than as an
// error.
//
// Trace context can be carried across a Pub/Sub channel by publishing the
// carrier next to the payload:
//
//	carrier := t.GetCarrier(ctx)
//	_, _ = client.PublishObject(ctx, "orders", envelope{Trace: carrier, Body: order})
//
//	// receiver
//	ctx = t.SetCarrierOnContext(ctx, env.Trace)
//
// # Configuration
//
//	TRACER_SERVICE_NAME=cart-service
//	APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//
// The exporter endpoint follows the OTEL_EXPORTER_OTLP_ENDPOINT conventions.
package tracer
