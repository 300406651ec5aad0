// Package observability defines the hook used by rediskit components to report
// completed operations to metrics and tracing backends.
//
// Components such as the redis client call Observer.ObserveOperation once per
// operation. *metrics.Metrics and *tracer.Tracer both implement Observer;
// Multi combines several of them:
//
//	obs := observability.Multi(m, t)
//	client.WithObserver(obs)
package observability
