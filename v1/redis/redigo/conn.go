package redigo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/gomodule/redigo/redis"
)

// conn adapts a single redigo connection to rediskit.Conn.
type conn struct {
	rc redis.Conn
}

var _ rediskit.Conn = conn{}

func (c conn) Do(ctx context.Context, args ...interface{}) (interface{}, error) {
	name, rest, err := splitArgs(args)
	if err != nil {
		return nil, err
	}
	reply, err := doContext(ctx, c.rc, name, rest...)
	if err != nil {
		return nil, translate(err)
	}
	return normalize(reply), nil
}

// Pipeline sends all commands, flushes once and reads the replies in order.
// A connection level failure is reported for every command not yet read.
func (c conn) Pipeline(ctx context.Context, cmds [][]interface{}) ([]rediskit.Reply, error) {
	replies := make([]rediskit.Reply, len(cmds))
	for _, args := range cmds {
		name, rest, err := splitArgs(args)
		if err != nil {
			return nil, err
		}
		if err := c.rc.Send(name, rest...); err != nil {
			return nil, translate(err)
		}
	}
	if err := c.rc.Flush(); err != nil {
		return nil, translate(err)
	}

	for i := range replies {
		reply, err := receiveContext(ctx, c.rc)
		if err != nil {
			replies[i].Err = translate(err)
			if c.rc.Err() != nil {
				fillErr(replies[i+1:], replies[i].Err)
				break
			}
			continue
		}
		replies[i].Val = normalize(reply)
	}
	return replies, nil
}

// TxPipeline wraps cmds in MULTI/EXEC. A nil EXEC reply means a watched
// key changed and is reported as ErrTxAborted for every command.
func (c conn) TxPipeline(ctx context.Context, cmds [][]interface{}) ([]rediskit.Reply, error) {
	if err := c.rc.Send("MULTI"); err != nil {
		return nil, translate(err)
	}
	for _, args := range cmds {
		name, rest, err := splitArgs(args)
		if err != nil {
			return nil, err
		}
		if err := c.rc.Send(name, rest...); err != nil {
			return nil, translate(err)
		}
	}

	replies := make([]rediskit.Reply, len(cmds))
	reply, err := doContext(ctx, c.rc, "EXEC")
	if err != nil {
		fillErr(replies, translate(err))
		return replies, nil
	}
	if reply == nil {
		fillErr(replies, rediskit.ErrTxAborted)
		return replies, nil
	}

	results, ok := reply.([]interface{})
	if !ok || len(results) != len(cmds) {
		return nil, fmt.Errorf("redigo: unexpected EXEC reply %T", reply)
	}
	for i, result := range results {
		if e, ok := result.(redis.Error); ok {
			replies[i].Err = translate(e)
			continue
		}
		replies[i].Val = normalize(result)
	}
	return replies, nil
}

func fillErr(replies []rediskit.Reply, err error) {
	for i := range replies {
		replies[i].Err = err
	}
}

func splitArgs(args []interface{}) (string, []interface{}, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: empty command", rediskit.ErrInvalidArgument)
	}
	name, ok := args[0].(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: command name must be a string, got %T", rediskit.ErrInvalidArgument, args[0])
	}
	return name, args[1:], nil
}

// doContext uses the context aware API when the connection offers it.
func doContext(ctx context.Context, c redis.Conn, name string, args ...interface{}) (interface{}, error) {
	if cwc, ok := c.(redis.ConnWithContext); ok {
		return cwc.DoContext(ctx, name, args...)
	}
	return c.Do(name, args...)
}

func receiveContext(ctx context.Context, c redis.Conn) (interface{}, error) {
	if cwc, ok := c.(redis.ConnWithContext); ok {
		return cwc.ReceiveContext(ctx)
	}
	return c.Receive()
}

// translate classifies redigo's error replies, which carry no marker method.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var replyErr redis.Error
	if errors.As(err, &replyErr) {
		return fmt.Errorf("%w: %w", rediskit.ClassifyReply(string(replyErr)), err)
	}
	if errors.Is(err, redis.ErrPoolExhausted) {
		return fmt.Errorf("%w: %w", rediskit.ErrPoolTimeout, err)
	}
	if strings.Contains(err.Error(), "redigo: connection closed") {
		return fmt.Errorf("%w: %w", rediskit.ErrConnectionFailure, err)
	}
	return rediskit.TranslateError(err)
}

// normalize converts bulk strings to string and error elements to
// translated errors, recursively.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case []byte:
		return string(v)
	case []interface{}:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	case redis.Error:
		return translate(v)
	}
	return v
}
