package redis

import (
	"errors"

	"go.uber.org/zap"
)

// zapLogger is the Logger used when none is configured. It writes through
// the global zap logger so zap.ReplaceGlobals takes effect.
type zapLogger struct{}

func (zapLogger) Error(msg string, err error, fields ...map[string]interface{}) {
	zap.L().Error(msg, zapFields(err, fields)...)
}

func (zapLogger) Info(msg string, err error, fields ...map[string]interface{}) {
	zap.L().Info(msg, zapFields(err, fields)...)
}

func (zapLogger) Warn(msg string, err error, fields ...map[string]interface{}) {
	zap.L().Warn(msg, zapFields(err, fields)...)
}

func zapFields(err error, fields []map[string]interface{}) []zap.Field {
	out := []zap.Field{zap.String("component", "redis")}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, m := range fields {
		for k, v := range m {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

// logCommandError logs failed commands. Nil replies are not failures and
// aborted transactions are expected under contention.
func (r *RedisClient) logCommandError(cmd Cmder) {
	err := cmd.Err()
	if err == nil || errors.Is(err, Nil) {
		return
	}
	fields := map[string]interface{}{
		"command": cmd.FullName(),
	}
	if key := cmd.firstKey(); key != "" {
		fields["key"] = key
	}
	if errors.Is(err, ErrTxAborted) {
		r.getLogger().Warn("Redis transaction aborted", err, fields)
		return
	}
	r.getLogger().Error("Redis command failed", err, fields)
}
