package redis

import (
	"context"
	"errors"
	"time"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
//
// Notes:
//   - resource: the first key of the command, or empty for keyless commands
//   - subResource: the execution mode ("direct", "pipeline", "multi", "watch")
func (r *RedisClient) observeOperation(ctx context.Context, operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	observer := r.getObserver()
	if observer == nil {
		return
	}

	observer.ObserveOperation(observability.OperationContext{
		Context:     ctx,
		Component:   "redis",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

// observeCommand reports a single command. A Nil reply is reported as a miss
// rather than an error.
func (r *RedisClient) observeCommand(ctx context.Context, cmd Cmder, reply interface{}, duration time.Duration) {
	err := cmd.Err()
	metadata := map[string]interface{}{"driver": r.driverName()}
	if errors.Is(err, Nil) {
		err = nil
		metadata["miss"] = true
	}
	r.observeOperation(ctx, cmd.FullName(), cmd.firstKey(), "direct", duration, err, replySize(reply), metadata)
}

// observeBatch reports a pipeline or transaction flush.
func (r *RedisClient) observeBatch(ctx context.Context, mode string, cmds []Cmder, duration time.Duration, err error) {
	failed := 0
	for _, cmd := range cmds {
		if e := cmd.Err(); e != nil && !errors.Is(e, Nil) {
			failed++
		}
	}
	r.observeOperation(ctx, mode, "", mode, duration, err, int64(len(cmds)), map[string]interface{}{
		"driver": r.driverName(),
		"failed": failed,
	})
}

// replySize returns the length of string and aggregate replies.
func replySize(reply interface{}) int64 {
	switch v := reply.(type) {
	case string:
		return int64(len(v))
	case []interface{}:
		return int64(len(v))
	case map[interface{}]interface{}:
		return int64(len(v))
	}
	return 0
}
