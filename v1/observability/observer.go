package observability

import (
	"context"
	"time"
)

// OperationContext describes a single completed operation performed by one of
// the rediskit packages (for example a Redis command or a pipeline flush).
type OperationContext struct {
	// Context is the context the operation ran with. It may be nil.
	Context context.Context

	// Component is the name of the component emitting the event, e.g. "redis".
	Component string

	// Operation is the lower-case operation name, e.g. "get" or "pipeline".
	Operation string

	// Resource is the primary resource touched by the operation (a key, a channel).
	Resource string

	// SubResource carries secondary context such as a hash field.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	Error error

	// Size is an operation specific size (bytes read, items returned, ...).
	Size int64

	// Metadata holds optional additional attributes.
	Metadata map[string]interface{}
}

// Observer receives events about operations performed by rediskit packages.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

type multiObserver []Observer

func (m multiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}

// Multi returns an Observer that forwards every event to all given observers.
// Nil observers are skipped. If no observer remains, nil is returned.
func Multi(observers ...Observer) Observer {
	var out multiObserver
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return out
}
