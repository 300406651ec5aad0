package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedClient(tracing bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), tracing), logs
}

func TestNewLoggerClientLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLoggerClient(Config{Level: tt.level, ServiceName: "cart"})
			require.NotNil(t, l.Zap)
			assert.True(t, l.Zap.Core().Enabled(tt.want))
			assert.False(t, l.Zap.Core().Enabled(tt.want-1))
		})
	}
}

func TestLevelMethods(t *testing.T) {
	l, logs := newObservedClient(false)
	boom := errors.New("boom")

	l.Debug("debug", nil)
	l.Info("info", nil, map[string]interface{}{"key": "user:1"})
	l.Warn("warn", boom)
	l.Error("error", boom, map[string]interface{}{"attempt": 2})

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "user:1", entries[1].ContextMap()["key"])
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.EqualValues(t, 2, entries[3].ContextMap()["attempt"])
}

func TestWithContextAddsTraceFields(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03},
		SpanID:     trace.SpanID{0x0a, 0x0b},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	l, logs := newObservedClient(true)
	l.InfoWithContext(ctx, "with span", nil)
	l.WarnWithContext(context.Background(), "without span", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, sc.TraceID().String(), entries[0].ContextMap()["trace_id"])
	assert.Equal(t, sc.SpanID().String(), entries[0].ContextMap()["span_id"])
	assert.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestWithContextTracingDisabled(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x01},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	l, logs := newObservedClient(false)
	l.ErrorWithContext(ctx, "failed", errors.New("boom"))
	l.DebugWithContext(ctx, "detail", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0].ContextMap(), "trace_id")
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}
