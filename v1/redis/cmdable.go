package redis

import (
	"context"
	"time"
)

// cmdable dispatches a command. RedisClient sends it right away, Pipeline
// queues it and Tx sends it on the watched connection. Every command method
// is defined once on cmdable and shared by all three.
type cmdable func(ctx context.Context, cmd Cmder) error

// run builds a command whose first key is at position 1 and dispatches it.
func run[T any](ctx context.Context, c cmdable, conv func(interface{}) (T, error), args ...interface{}) *Cmd[T] {
	cmd := newCmd(conv, args...)
	_ = c(ctx, cmd)
	return cmd
}

// runAt is run for commands whose first key is at pos. Zero marks a command
// without keys.
func runAt[T any](ctx context.Context, c cmdable, pos int, conv func(interface{}) (T, error), args ...interface{}) *Cmd[T] {
	cmd := newCmd(conv, args...).setFirstKeyPos(pos)
	_ = c(ctx, cmd)
	return cmd
}

// runNoKey is run for commands without keys.
func runNoKey[T any](ctx context.Context, c cmdable, conv func(interface{}) (T, error), args ...interface{}) *Cmd[T] {
	return runAt(ctx, c, 0, conv, args...)
}

type validatable interface {
	Validate() error
}

// validate returns the first validation error of the given arguments.
func validate(args ...validatable) error {
	for _, a := range args {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func keysArgs(prefix []interface{}, keys []string) []interface{} {
	args := make([]interface{}, 0, len(prefix)+len(keys))
	args = append(args, prefix...)
	return appendStrings(args, keys)
}

func requireKeys(name string, keys []string) error {
	if len(keys) == 0 {
		return invalidArgument("%s requires at least one key", name)
	}
	return nil
}

func timeoutSec(timeout time.Duration) string {
	return formatFloat(timeout.Seconds())
}

// Do sends an arbitrary command. Use it for commands without a typed method.
func (c cmdable) Do(ctx context.Context, args ...interface{}) *InterfaceCmd {
	if len(args) == 0 {
		return fail[interface{}](ctx, c, invalidArgument("empty command"))
	}
	return runNoKey(ctx, c, toInterface, args...)
}
