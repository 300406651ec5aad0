package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestObserveOperationNilObserverNoPanic(t *testing.T) {
	r := &RedisClient{
		observer: nil,
	}

	// Should not panic.
	r.observeOperation(context.Background(), "get", "test-key", "direct", 10*time.Millisecond, nil, 0, nil)
}

func TestObserveOperationCallsObserver(t *testing.T) {
	obs := &TestObserver{}
	r := &RedisClient{
		observer: obs,
	}

	r.observeOperation(context.Background(), "set", "my-key", "direct", 10*time.Millisecond, nil, 100, map[string]interface{}{"ttl": "60s"})

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Component != "redis" {
		t.Fatalf("expected component redis, got %q", ops[0].Component)
	}
	if ops[0].Operation != "set" {
		t.Fatalf("expected operation set, got %q", ops[0].Operation)
	}
	if ops[0].Resource != "my-key" {
		t.Fatalf("expected resource my-key, got %q", ops[0].Resource)
	}
	if ops[0].SubResource != "direct" {
		t.Fatalf("expected sub resource direct, got %q", ops[0].SubResource)
	}
	if ops[0].Size != 100 {
		t.Fatalf("expected size 100, got %d", ops[0].Size)
	}
	if ops[0].Context == nil {
		t.Fatalf("expected context to be forwarded")
	}
	if ops[0].Metadata == nil || ops[0].Metadata["ttl"] != "60s" {
		t.Fatalf("expected metadata ttl=60s, got %#v", ops[0].Metadata)
	}
}

func TestWithObserver(t *testing.T) {
	obs := &TestObserver{}
	r := &RedisClient{
		observer: nil,
	}

	if r.observer != nil {
		t.Fatalf("expected no observer initially")
	}

	out := r.WithObserver(obs)
	if out != r {
		t.Fatalf("WithObserver should return same instance for chaining")
	}
	if r.observer != obs {
		t.Fatalf("expected observer to be set")
	}
}

func TestObserveCommandReportsMiss(t *testing.T) {
	obs := &TestObserver{}
	r := &RedisClient{observer: obs}

	cmd := newCmd(toString, "GET", "missing")
	cmd.setReply(nil, nil)
	r.observeCommand(context.Background(), cmd, nil, time.Millisecond)

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Error != nil {
		t.Fatalf("expected a miss not to be reported as error, got %v", ops[0].Error)
	}
	if ops[0].Metadata["miss"] != true {
		t.Fatalf("expected miss metadata, got %#v", ops[0].Metadata)
	}
	if ops[0].Operation != "get" || ops[0].Resource != "missing" {
		t.Fatalf("unexpected operation %q on %q", ops[0].Operation, ops[0].Resource)
	}
}

func TestObserveBatchCountsFailures(t *testing.T) {
	obs := &TestObserver{}
	r := &RedisClient{observer: obs}

	ok := newCmd(toStatus, "SET", "a", "1")
	ok.setReply("OK", nil)
	miss := newCmd(toString, "GET", "b")
	miss.setReply(nil, nil)
	failed := newCmd(toInt64, "INCR", "c")
	failed.setReply(nil, ErrWrongType)

	r.observeBatch(context.Background(), "pipeline", []Cmder{ok, miss, failed}, time.Millisecond, nil)

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Size != 3 {
		t.Fatalf("expected size 3, got %d", ops[0].Size)
	}
	if ops[0].Metadata["failed"] != 1 {
		t.Fatalf("expected 1 failed command, got %#v", ops[0].Metadata["failed"])
	}
}

func TestReplySize(t *testing.T) {
	cases := []struct {
		reply interface{}
		want  int64
	}{
		{nil, 0},
		{"hello", 5},
		{int64(42), 0},
		{[]interface{}{"a", "b"}, 2},
		{map[interface{}]interface{}{"a": "b"}, 1},
	}
	for _, c := range cases {
		if got := replySize(c.reply); got != c.want {
			t.Fatalf("replySize(%#v) = %d, want %d", c.reply, got, c.want)
		}
	}
}
