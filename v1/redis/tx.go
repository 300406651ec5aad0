package redis

import (
	"context"
	"time"
)

// Tx is a connection bound by Watch. Its command methods run directly on
// that connection, so reads observe the watched keys; TxPipelined queues
// the writes that EXEC applies only if no watched key changed.
//
// A Tx must not be used after the Watch callback returns.
type Tx struct {
	cmdable

	client *RedisClient
	conn   Conn
}

// Watch runs fn with a connection that watches keys. When a watched key
// changes before the EXEC issued by Tx.TxPipelined, the transaction fails
// with ErrTxAborted; callers typically retry fn in that case.
//
// Example:
//
//	err := client.Watch(ctx, func(tx *redis.Tx) error {
//		n, err := tx.Get(ctx, "counter").Result()
//		if err != nil && !errors.Is(err, redis.Nil) {
//			return err
//		}
//		_, err = tx.TxPipelined(ctx, func(p *redis.Pipeline) error {
//			p.Set(ctx, "counter", next(n), 0)
//			return nil
//		})
//		return err
//	}, "counter")
func (r *RedisClient) Watch(ctx context.Context, fn func(*Tx) error, keys ...string) error {
	if len(keys) == 0 {
		return invalidArgument("WATCH requires at least one key")
	}
	drv, err := r.current()
	if err != nil {
		return err
	}

	start := time.Now()
	err = TranslateError(drv.Watch(ctx, func(conn Conn) error {
		return fn(r.newTx(conn))
	}, keys...))

	r.observeOperation(ctx, "watch", keys[0], "watch", time.Since(start), err, int64(len(keys)), map[string]interface{}{
		"driver": r.driverName(),
	})
	return err
}

func (r *RedisClient) newTx(conn Conn) *Tx {
	tx := &Tx{client: r, conn: conn}
	tx.cmdable = tx.process
	return tx
}

func (tx *Tx) process(ctx context.Context, cmd Cmder) error {
	if err := cmd.Err(); err != nil {
		return err
	}
	start := time.Now()
	reply, err := tx.conn.Do(ctx, cmd.Args()...)
	cmd.setReply(reply, TranslateError(err))

	tx.client.observeCommand(ctx, cmd, reply, time.Since(start))
	tx.client.logCommandError(cmd)
	return cmd.Err()
}

// Process sends a command built with NewCmd on the watched connection.
func (tx *Tx) Process(ctx context.Context, cmd Cmder) error {
	return tx.process(ctx, cmd)
}

// TxPipeline returns a MULTI/EXEC pipeline on the watched connection.
func (tx *Tx) TxPipeline() *Pipeline {
	return tx.client.newPipeline(true, tx.conn.TxPipeline)
}

// TxPipelined queues the commands issued by fn and executes them with
// MULTI/EXEC on the watched connection.
func (tx *Tx) TxPipelined(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error) {
	return tx.TxPipeline().run(ctx, fn)
}

// Pipelined queues the commands issued by fn and sends them without
// MULTI/EXEC on the watched connection.
func (tx *Tx) Pipelined(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error) {
	return tx.client.newPipeline(false, tx.conn.Pipeline).run(ctx, fn)
}

// Watch adds keys to the watched set of the connection.
func (tx *Tx) Watch(ctx context.Context, keys ...string) *StatusCmd {
	if err := requireKeys("WATCH", keys); err != nil {
		return fail[string](ctx, tx.cmdable, err, "WATCH")
	}
	return run(ctx, tx.cmdable, toStatus, keysArgs([]interface{}{"WATCH"}, keys)...)
}

// Unwatch forgets all watched keys of the connection.
func (tx *Tx) Unwatch(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, tx.cmdable, toStatus, "UNWATCH")
}
