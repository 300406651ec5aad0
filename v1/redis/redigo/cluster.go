package redigo

import (
	"context"
	"errors"
	"fmt"
	"time"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/gomodule/redigo/redis"
	"github.com/mna/redisc"
	"golang.org/x/sync/errgroup"
)

// tryAgainDelay is how long RetryConn waits after a TRYAGAIN reply.
const tryAgainDelay = 100 * time.Millisecond

// ClusterDriver sends commands to a Redis Cluster through redisc. Single
// commands follow MOVED and ASK redirections. Pipelines are split by hash
// slot: the commands of one slot are pipelined in order on one node, and the
// slots are served concurrently.
type ClusterDriver struct {
	cluster     nodes
	attempts    int
	concurrency int
	tracer      *tracer
}

// nodes is the part of redisc.Cluster used by ClusterDriver.
type nodes interface {
	Get() redis.Conn
	Dial() (redis.Conn, error)
	Stats() map[string]redis.PoolStats
	Close() error
}

var _ rediskit.Driver = (*ClusterDriver)(nil)

func newClusterDriver(cfg rediskit.ClusterConfig) (*ClusterDriver, error) {
	opts, err := dialOptions(cfg.Username, cfg.Password, 0, cfg.ClientName, cfg.DialTimeout, cfg.ReadTimeout, cfg.WriteTimeout, cfg.TLS, "")
	if err != nil {
		return nil, err
	}

	cluster := &redisc.Cluster{
		StartupNodes: cfg.Addrs,
		DialOptions:  opts,
		CreatePool: func(addr string, opts ...redis.DialOption) (*redis.Pool, error) {
			return newPool(cfg.PoolSize, cfg.IdleTimeout, cfg.MaxConnAge, func(ctx context.Context) (redis.Conn, error) {
				return redis.DialContext(ctx, "tcp", addr, opts...)
			}), nil
		},
	}
	if err := cluster.Refresh(); err != nil {
		_ = cluster.Close()
		return nil, fmt.Errorf("failed to load cluster slots: %w", translate(err))
	}

	d := &ClusterDriver{
		cluster:     cluster,
		attempts:    cfg.MaxRedirects + 1,
		concurrency: 16,
	}
	if cfg.EnableTracing && len(cfg.Addrs) > 0 {
		d.tracer = newTracer(cfg.Addrs[0])
	}
	return d, nil
}

// NewClusterDriver wraps an existing redisc cluster. The driver takes
// ownership of cluster and closes it on Close.
func NewClusterDriver(cluster *redisc.Cluster) *ClusterDriver {
	return &ClusterDriver{
		cluster:     cluster,
		attempts:    rediskit.DefaultClusterMaxRedirects + 1,
		concurrency: 16,
	}
}

// Name implements rediskit.Driver.
func (d *ClusterDriver) Name() string {
	return Name
}

// Do implements rediskit.Conn.
func (d *ClusterDriver) Do(ctx context.Context, args ...interface{}) (reply interface{}, err error) {
	ctx, end := d.tracer.start(ctx, "command", args)
	defer func() { end(err) }()

	return d.do(ctx, args)
}

func (d *ClusterDriver) do(ctx context.Context, args []interface{}) (interface{}, error) {
	rc := d.cluster.Get()
	defer rc.Close()

	retry, err := redisc.RetryConn(rc, d.attempts, tryAgainDelay)
	if err != nil {
		return nil, translate(err)
	}
	return conn{rc: retry}.Do(ctx, args...)
}

// Pipeline implements rediskit.Conn. Commands for the same slot keep their
// relative order; replies keep the order of cmds.
func (d *ClusterDriver) Pipeline(ctx context.Context, cmds [][]interface{}) (replies []rediskit.Reply, err error) {
	ctx, end := d.tracer.startBatch(ctx, "pipeline", len(cmds))
	defer func() { end(err) }()

	replies = make([]rediskit.Reply, len(cmds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for _, group := range groupBySlot(cmds) {
		group := group
		g.Go(func() error {
			d.pipelineSlot(gctx, cmds, group, replies)
			return nil
		})
	}
	_ = g.Wait()
	return replies, nil
}

// pipelineSlot sends the commands of one slot group on a bound connection.
// Commands answered with a redirection are sent again one by one through
// RetryConn, in order.
func (d *ClusterDriver) pipelineSlot(ctx context.Context, cmds [][]interface{}, group slotGroup, replies []rediskit.Reply) {
	batch := make([][]interface{}, len(group.idx))
	for j, i := range group.idx {
		batch[j] = cmds[i]
	}

	var out []rediskit.Reply
	err := d.bound(group.keys(), func(c conn) error {
		var err error
		out, err = c.Pipeline(ctx, batch)
		return err
	})

	for j, i := range group.idx {
		if err != nil {
			replies[i].Err = err
			continue
		}
		replies[i] = out[j]
		if redirected(out[j].Err) {
			replies[i].Val, replies[i].Err = d.do(ctx, cmds[i])
		}
	}
}

func redirected(err error) bool {
	return errors.Is(err, rediskit.ErrMoved) || errors.Is(err, rediskit.ErrAsk) || errors.Is(err, rediskit.ErrTryAgain)
}

// TxPipeline implements rediskit.Conn. All keys must hash to the same slot.
func (d *ClusterDriver) TxPipeline(ctx context.Context, cmds [][]interface{}) (replies []rediskit.Reply, err error) {
	ctx, end := d.tracer.startBatch(ctx, "multi", len(cmds))
	defer func() { end(err) }()

	err = d.bound(commandKeys(cmds), func(c conn) error {
		replies, err = c.TxPipeline(ctx, cmds)
		return err
	})
	return replies, err
}

// Watch implements rediskit.Driver. All keys must hash to the same slot, and
// so must the keys of the commands fn sends.
func (d *ClusterDriver) Watch(ctx context.Context, fn func(rediskit.Conn) error, keys ...string) (err error) {
	ctx, end := d.tracer.startBatch(ctx, "watch", len(keys))
	defer func() { end(err) }()

	return d.bound(keys, func(c conn) error {
		if _, err := c.Do(ctx, watchArgs(keys)...); err != nil {
			return err
		}
		return fn(c)
	})
}

// bound runs fn on a connection bound to the node serving keys.
func (d *ClusterDriver) bound(keys []string, fn func(conn) error) error {
	rc := d.cluster.Get()
	defer rc.Close()

	if err := redisc.BindConn(rc, keys...); err != nil {
		if len(keys) > 1 {
			return fmt.Errorf("%w: %w", rediskit.ErrCrossSlot, err)
		}
		return translate(err)
	}
	return fn(conn{rc: rc})
}

// Subscribe implements rediskit.Driver. Cluster Pub/Sub is broadcast, so
// any node can serve the subscription.
func (d *ClusterDriver) Subscribe(ctx context.Context, channels ...string) (rediskit.Subscription, error) {
	rc, err := d.cluster.Dial()
	if err != nil {
		return nil, translate(err)
	}
	return openSubscription(ctx, rc, false, channels)
}

// PSubscribe implements rediskit.Driver.
func (d *ClusterDriver) PSubscribe(ctx context.Context, patterns ...string) (rediskit.Subscription, error) {
	rc, err := d.cluster.Dial()
	if err != nil {
		return nil, translate(err)
	}
	return openSubscription(ctx, rc, true, patterns)
}

// PoolStats implements rediskit.Driver. It sums the pools of all nodes.
func (d *ClusterDriver) PoolStats() rediskit.PoolStats {
	var total rediskit.PoolStats
	for _, s := range d.cluster.Stats() {
		ps := poolStats(s)
		total.Misses += ps.Misses
		total.TotalConns += ps.TotalConns
		total.IdleConns += ps.IdleConns
	}
	return total
}

// Close implements rediskit.Driver.
func (d *ClusterDriver) Close() error {
	return translate(d.cluster.Close())
}
