package redigo

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/gomodule/redigo/redis"
)

// Name is the name the driver is registered under.
const Name = "redigo"

func init() {
	rediskit.Register(Name, factory{})
}

type factory struct{}

func (factory) Open(cfg rediskit.Config) (rediskit.Driver, error) {
	if cfg.Protocol > 2 {
		return nil, fmt.Errorf("%w: redigo speaks RESP2 only", rediskit.ErrNotSupported)
	}
	opts, err := dialOptions(cfg.Username, cfg.Password, cfg.DB, cfg.ClientName, cfg.DialTimeout, cfg.ReadTimeout, cfg.WriteTimeout, cfg.TLS, cfg.Host)
	if err != nil {
		return nil, err
	}
	addr := cfg.Addr()
	pool := newPool(cfg.PoolSize, cfg.IdleTimeout, cfg.MaxConnAge, func(ctx context.Context) (redis.Conn, error) {
		return redis.DialContext(ctx, "tcp", addr, opts...)
	})
	return newDriver(pool, cfg), nil
}

func (factory) OpenCluster(cfg rediskit.ClusterConfig) (rediskit.Driver, error) {
	if cfg.Protocol > 2 {
		return nil, fmt.Errorf("%w: redigo speaks RESP2 only", rediskit.ErrNotSupported)
	}
	return newClusterDriver(cfg)
}

func (factory) OpenFailover(rediskit.FailoverConfig) (rediskit.Driver, error) {
	return nil, fmt.Errorf("%w: redigo driver has no sentinel support", rediskit.ErrNotSupported)
}

func dialOptions(username, password string, db int, clientName string, dial, read, write time.Duration, tlsCfg rediskit.TLSConfig, serverName string) ([]redis.DialOption, error) {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dial),
		redis.DialReadTimeout(read),
		redis.DialWriteTimeout(write),
	}
	if username != "" {
		opts = append(opts, redis.DialUsername(username))
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	if db != 0 {
		opts = append(opts, redis.DialDatabase(db))
	}
	if clientName != "" {
		opts = append(opts, redis.DialClientName(clientName))
	}
	if tlsCfg.Enabled {
		tlsConfig, err := rediskit.NewTLSConfig(tlsCfg, serverName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, redis.DialUseTLS(true), redis.DialTLSConfig(tlsConfig))
	}
	return opts, nil
}

func newPool(size int, idleTimeout, maxAge time.Duration, dial func(ctx context.Context) (redis.Conn, error)) *redis.Pool {
	if size <= 0 {
		size = 10 * runtime.GOMAXPROCS(0)
	}
	return &redis.Pool{
		DialContext:     dial,
		MaxIdle:         size,
		MaxActive:       size,
		IdleTimeout:     idleTimeout,
		MaxConnLifetime: maxAge,
		Wait:            true,
	}
}

// Driver sends commands through a redigo connection pool.
type Driver struct {
	pool        *redis.Pool
	poolTimeout time.Duration
	retry       retryPolicy
	tracer      *tracer
}

var _ rediskit.Driver = (*Driver)(nil)

func newDriver(pool *redis.Pool, cfg rediskit.Config) *Driver {
	d := &Driver{
		pool:        pool,
		poolTimeout: poolTimeout(cfg.PoolTimeout, cfg.ReadTimeout),
		retry:       retryPolicy{max: cfg.MaxRetries, min: cfg.MinRetryBackoff, maxBackoff: cfg.MaxRetryBackoff},
	}
	if cfg.EnableTracing {
		d.tracer = newTracer(cfg.Addr())
	}
	return d
}

// NewDriver wraps an existing redigo pool. The driver takes ownership of
// pool and closes it on Close.
func NewDriver(pool *redis.Pool) *Driver {
	return newDriver(pool, rediskit.Config{}.WithDefaults())
}

func poolTimeout(timeout, read time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return read + time.Second
}

// Name implements rediskit.Driver.
func (d *Driver) Name() string {
	return Name
}

// get takes a connection from the pool, waiting at most poolTimeout.
func (d *Driver) get(ctx context.Context) (redis.Conn, error) {
	getCtx, cancel := context.WithTimeout(ctx, d.poolTimeout)
	defer cancel()

	rc, err := d.pool.GetContext(getCtx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(getCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", rediskit.ErrPoolTimeout, err)
		}
		return nil, translate(err)
	}
	return rc, nil
}

func (d *Driver) with(ctx context.Context, fn func(conn) error) error {
	rc, err := d.get(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()
	return fn(conn{rc: rc})
}

// Do implements rediskit.Conn. Connection failures are retried with
// backoff up to MaxRetries times.
func (d *Driver) Do(ctx context.Context, args ...interface{}) (reply interface{}, err error) {
	ctx, end := d.tracer.start(ctx, "command", args)
	defer func() { end(err) }()

	err = d.retry.do(ctx, func() error {
		return d.with(ctx, func(c conn) error {
			var doErr error
			reply, doErr = c.Do(ctx, args...)
			return doErr
		})
	})
	return reply, err
}

// Pipeline implements rediskit.Conn.
func (d *Driver) Pipeline(ctx context.Context, cmds [][]interface{}) (replies []rediskit.Reply, err error) {
	ctx, end := d.tracer.startBatch(ctx, "pipeline", len(cmds))
	defer func() { end(err) }()

	err = d.with(ctx, func(c conn) error {
		replies, err = c.Pipeline(ctx, cmds)
		return err
	})
	return replies, err
}

// TxPipeline implements rediskit.Conn.
func (d *Driver) TxPipeline(ctx context.Context, cmds [][]interface{}) (replies []rediskit.Reply, err error) {
	ctx, end := d.tracer.startBatch(ctx, "multi", len(cmds))
	defer func() { end(err) }()

	err = d.with(ctx, func(c conn) error {
		replies, err = c.TxPipeline(ctx, cmds)
		return err
	})
	return replies, err
}

// Watch implements rediskit.Driver. The pool sends UNWATCH when the
// connection is returned without EXEC.
func (d *Driver) Watch(ctx context.Context, fn func(rediskit.Conn) error, keys ...string) (err error) {
	ctx, end := d.tracer.startBatch(ctx, "watch", len(keys))
	defer func() { end(err) }()

	return d.with(ctx, func(c conn) error {
		if _, err := c.Do(ctx, watchArgs(keys)...); err != nil {
			return err
		}
		return fn(c)
	})
}

func watchArgs(keys []string) []interface{} {
	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, "WATCH")
	for _, k := range keys {
		args = append(args, k)
	}
	return args
}

// Subscribe implements rediskit.Driver.
func (d *Driver) Subscribe(ctx context.Context, channels ...string) (rediskit.Subscription, error) {
	rc, err := d.get(ctx)
	if err != nil {
		return nil, err
	}
	return openSubscription(ctx, rc, false, channels)
}

// PSubscribe implements rediskit.Driver.
func (d *Driver) PSubscribe(ctx context.Context, patterns ...string) (rediskit.Subscription, error) {
	rc, err := d.get(ctx)
	if err != nil {
		return nil, err
	}
	return openSubscription(ctx, rc, true, patterns)
}

// PoolStats implements rediskit.Driver.
func (d *Driver) PoolStats() rediskit.PoolStats {
	return poolStats(d.pool.Stats())
}

// poolStats maps the redigo pool counters. redigo does not track hits or
// stale connections; a Get that had to wait for a free connection counts as
// a miss.
func poolStats(s redis.PoolStats) rediskit.PoolStats {
	return rediskit.PoolStats{
		Misses:     uint32(s.WaitCount),
		TotalConns: uint32(s.ActiveCount),
		IdleConns:  uint32(s.IdleCount),
	}
}

// Close implements rediskit.Driver.
func (d *Driver) Close() error {
	return translate(d.pool.Close())
}

// retryPolicy retries operations that failed on the network.
type retryPolicy struct {
	max        int
	min        time.Duration
	maxBackoff time.Duration
}

func (p retryPolicy) do(ctx context.Context, op func() error) error {
	backoff := p.min
	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil || attempt >= p.max || !retryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(backoff):
		}
		if backoff *= 2; backoff > p.maxBackoff {
			backoff = p.maxBackoff
		}
	}
}

func retryable(err error) bool {
	return errors.Is(err, rediskit.ErrConnectionFailure) ||
		errors.Is(err, rediskit.ErrLoading) ||
		errors.Is(err, rediskit.ErrTryAgain)
}
