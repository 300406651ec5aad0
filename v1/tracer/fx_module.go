package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/rediskit/v1/logger"
)

// FXModule provides *Tracer to an Fx application and shuts the provider down
// on application stop so that pending spans are flushed.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "cart-service"}
//	    }),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies of NewClientWithDI.
type TracerParams struct {
	fx.In

	Config Config
	Logger logger.Logger `optional:"true"`
}

// NewClientWithDI creates a Tracer from injected dependencies.
func NewClientWithDI(params TracerParams) (*Tracer, error) {
	var l Logger
	if params.Logger != nil {
		l = params.Logger
	}
	return NewClient(params.Config, l)
}

// RegisterTracerLifecycle registers an OnStop hook that flushes and stops the
// tracer provider.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.logger != nil {
				tracer.logger.Info("shutting down tracer", nil)
			}
			return tracer.Shutdown(ctx)
		},
	})
}
