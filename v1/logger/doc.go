// Package logger provides zap-based structured logging for rediskit.
//
// *LoggerClient implements the Logger interface. Every method takes a message,
// an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "cart-service",
//	})
//
//	log.Info("cache ready", nil, map[string]interface{}{"addr": "localhost:6379"})
//	log.Error("refresh failed", err, map[string]interface{}{"key": "cart:42"})
//
// The *WithContext variants add trace_id and span_id when tracing is enabled
// and ctx carries an OpenTelemetry span:
//
//	log.ErrorWithContext(ctx, "lock lost", err)
//
// *LoggerClient also satisfies redis.Logger, so it can be set as
// redis.Config.Logger. In an fx application redis.FXModule picks it up from
// logger.FXModule automatically:
//
//	app := fx.New(
//		logger.FXModule,
//		redis.FXModule,
//		fx.Provide(
//			func() logger.Config { return logger.Config{Level: logger.Info} },
//			func() redis.Config { return redis.Config{Host: "localhost"} },
//		),
//	)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=info
//	LOGGER_ENABLE_TRACING=true
//	LOGGER_SERVICE_NAME=cart-service
//	LOGGER_ENCODING=json
//	LOGGER_OUTPUT_PATHS=stderr
//
// All methods are safe for concurrent use.
package logger
