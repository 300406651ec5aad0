package goredis

import (
	"context"
	"errors"
	"fmt"
	"sync"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Name is the name the driver is registered under.
const Name = "goredis"

func init() {
	rediskit.Register(Name, factory{})
}

var setLoggerOnce sync.Once

// zapPrintf routes go-redis' internal log output to the global zap logger.
type zapPrintf struct{}

func (zapPrintf) Printf(_ context.Context, format string, v ...interface{}) {
	zap.L().Sugar().Named("go-redis").Warnf(format, v...)
}

type factory struct{}

func (factory) Open(cfg rediskit.Config) (rediskit.Driver, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}
	return open(redis.NewClient(opts), cfg.EnableTracing)
}

func (factory) OpenCluster(cfg rediskit.ClusterConfig) (rediskit.Driver, error) {
	opts, err := clusterOptions(cfg)
	if err != nil {
		return nil, err
	}
	return open(redis.NewClusterClient(opts), cfg.EnableTracing)
}

func (factory) OpenFailover(cfg rediskit.FailoverConfig) (rediskit.Driver, error) {
	opts, err := failoverOptions(cfg)
	if err != nil {
		return nil, err
	}
	return open(redis.NewFailoverClient(opts), cfg.EnableTracing)
}

func open(client redis.UniversalClient, tracing bool) (rediskit.Driver, error) {
	setLoggerOnce.Do(func() {
		redis.SetLogger(zapPrintf{})
	})

	if tracing {
		if err := redisotel.InstrumentTracing(client); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
		}
	}
	return NewDriver(client), nil
}

// Driver sends commands through a go-redis UniversalClient.
type Driver struct {
	client redis.UniversalClient
}

var _ rediskit.Driver = (*Driver)(nil)

// NewDriver wraps an existing go-redis client. The driver takes ownership of
// client and closes it on Close.
func NewDriver(client redis.UniversalClient) *Driver {
	return &Driver{client: client}
}

// Client returns the wrapped go-redis client.
func (d *Driver) Client() redis.UniversalClient {
	return d.client
}

// Name implements rediskit.Driver.
func (d *Driver) Name() string {
	return Name
}

// Do implements rediskit.Conn.
func (d *Driver) Do(ctx context.Context, args ...interface{}) (interface{}, error) {
	return do(ctx, d.client, args)
}

// Pipeline implements rediskit.Conn.
func (d *Driver) Pipeline(ctx context.Context, cmds [][]interface{}) ([]rediskit.Reply, error) {
	return batch(ctx, d.client.Pipelined, cmds)
}

// TxPipeline implements rediskit.Conn.
func (d *Driver) TxPipeline(ctx context.Context, cmds [][]interface{}) ([]rediskit.Reply, error) {
	return batch(ctx, d.client.TxPipelined, cmds)
}

// Watch implements rediskit.Driver.
func (d *Driver) Watch(ctx context.Context, fn func(rediskit.Conn) error, keys ...string) error {
	err := d.client.Watch(ctx, func(tx *redis.Tx) error {
		return fn(txConn{tx: tx})
	}, keys...)
	return translate(err)
}

// Subscribe implements rediskit.Driver.
func (d *Driver) Subscribe(ctx context.Context, channels ...string) (rediskit.Subscription, error) {
	return subscribe(ctx, d.client.Subscribe(ctx, channels...))
}

// PSubscribe implements rediskit.Driver.
func (d *Driver) PSubscribe(ctx context.Context, patterns ...string) (rediskit.Subscription, error) {
	return subscribe(ctx, d.client.PSubscribe(ctx, patterns...))
}

// PoolStats implements rediskit.Driver.
func (d *Driver) PoolStats() rediskit.PoolStats {
	s := d.client.PoolStats()
	if s == nil {
		return rediskit.PoolStats{}
	}
	return rediskit.PoolStats{
		Hits:       s.Hits,
		Misses:     s.Misses,
		Timeouts:   s.Timeouts,
		TotalConns: s.TotalConns,
		IdleConns:  s.IdleConns,
		StaleConns: s.StaleConns,
	}
}

// Close implements rediskit.Driver.
func (d *Driver) Close() error {
	return translate(d.client.Close())
}

// processor is implemented by redis.UniversalClient and *redis.Tx.
type processor interface {
	Process(ctx context.Context, cmd redis.Cmder) error
}

type pipelinedFunc func(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)

func do(ctx context.Context, p processor, args []interface{}) (interface{}, error) {
	cmd := redis.NewCmd(ctx, args...)
	_ = p.Process(ctx, cmd)
	return result(cmd)
}

// batch queues cmds with fn and collects one reply per command. Errors that
// hit the whole batch are set on every command by go-redis, so they surface
// as per command errors.
func batch(ctx context.Context, fn pipelinedFunc, cmds [][]interface{}) ([]rediskit.Reply, error) {
	queued := make([]*redis.Cmd, len(cmds))
	_, _ = fn(ctx, func(p redis.Pipeliner) error {
		for i, args := range cmds {
			queued[i] = redis.NewCmd(ctx, args...)
			_ = p.Process(ctx, queued[i])
		}
		return nil
	})

	replies := make([]rediskit.Reply, len(queued))
	for i, cmd := range queued {
		replies[i].Val, replies[i].Err = result(cmd)
	}
	return replies, nil
}

func result(cmd *redis.Cmd) (interface{}, error) {
	val, err := cmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return normalize(val), nil
}

// translate maps the go-redis errors that cannot be recognized by their
// message. Server replies are left to rediskit.TranslateError.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rediskit.ErrTxAborted), errors.Is(err, rediskit.ErrClosed):
		return err
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%w: %w", rediskit.ErrTxAborted, err)
	case errors.Is(err, redis.ErrClosed):
		return fmt.Errorf("%w: %w", rediskit.ErrClosed, err)
	case errors.Is(err, redis.ErrPoolTimeout):
		return fmt.Errorf("%w: %w", rediskit.ErrPoolTimeout, err)
	}
	return err
}

// normalize converts go-redis reply values to the shapes the redis package
// expects. RESP2 replies already match; RESP3 adds maps, sets and big numbers.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case []interface{}:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	case map[interface{}]interface{}:
		for k, item := range v {
			v[k] = normalize(item)
		}
		return v
	case map[string]interface{}:
		out := make(map[interface{}]interface{}, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out
	case []byte:
		return string(v)
	case int:
		return int64(v)
	case fmt.Stringer:
		return v.String()
	}
	return v
}

// txConn runs commands on the connection bound by Watch.
type txConn struct {
	tx *redis.Tx
}

func (c txConn) Do(ctx context.Context, args ...interface{}) (interface{}, error) {
	return do(ctx, c.tx, args)
}

func (c txConn) Pipeline(ctx context.Context, cmds [][]interface{}) ([]rediskit.Reply, error) {
	return batch(ctx, c.tx.Pipelined, cmds)
}

func (c txConn) TxPipeline(ctx context.Context, cmds [][]interface{}) ([]rediskit.Reply, error) {
	return batch(ctx, c.tx.TxPipelined, cmds)
}
