package redis

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Reply is the outcome of a single command sent as part of a batch.
type Reply struct {
	// Val is the normalized reply: nil, string, int64, float64, bool,
	// []interface{} or map[interface{}]interface{}.
	Val interface{}

	// Err is the error returned for this command, already translated.
	Err error
}

// Conn executes commands. Every argument slice starts with the command name
// followed by its arguments, exactly as sent on the wire.
//
//go:generate mockgen -source=driver.go -destination=mock_driver.go -package=redis
type Conn interface {
	// Do sends a single command and returns its normalized reply.
	// A nil bulk or multi-bulk reply is returned as (nil, nil).
	Do(ctx context.Context, args ...interface{}) (interface{}, error)

	// Pipeline sends all commands in one round trip without MULTI/EXEC.
	// The returned slice always has one entry per command unless err is non-nil.
	Pipeline(ctx context.Context, cmds [][]interface{}) ([]Reply, error)

	// TxPipeline sends all commands wrapped in MULTI/EXEC.
	// An aborted EXEC is reported as ErrTxAborted.
	TxPipeline(ctx context.Context, cmds [][]interface{}) ([]Reply, error)
}

// Subscription is a driver level Pub/Sub connection.
type Subscription interface {
	// Receive blocks until the next published message arrives or ctx is done.
	Receive(ctx context.Context) (*Message, error)
	Subscribe(ctx context.Context, channels ...string) error
	PSubscribe(ctx context.Context, patterns ...string) error
	Unsubscribe(ctx context.Context, channels ...string) error
	PUnsubscribe(ctx context.Context, patterns ...string) error
	Close() error
}

// Driver adapts a concrete Redis client SDK to the command API of this package.
type Driver interface {
	Conn

	// Name returns the registered driver name, e.g. "goredis".
	Name() string

	// Watch runs fn on a single connection with WATCH applied to keys.
	// The connection passed to fn must not be used after fn returns.
	Watch(ctx context.Context, fn func(Conn) error, keys ...string) error

	// Subscribe opens a Pub/Sub connection subscribed to channels.
	Subscribe(ctx context.Context, channels ...string) (Subscription, error)

	// PSubscribe opens a Pub/Sub connection subscribed to patterns.
	PSubscribe(ctx context.Context, patterns ...string) (Subscription, error)

	// PoolStats returns connection pool statistics.
	PoolStats() PoolStats

	// Close releases all connections.
	Close() error
}

// DriverFactory opens drivers for the supported deployment modes.
type DriverFactory interface {
	Open(cfg Config) (Driver, error)
	OpenCluster(cfg ClusterConfig) (Driver, error)
	OpenFailover(cfg FailoverConfig) (Driver, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]DriverFactory)
)

// Register makes a driver available under the provided name. It is intended to
// be called from the init function of driver packages. Register panics if
// called twice with the same name or with a nil factory.
func Register(name string, factory DriverFactory) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if factory == nil {
		panic("redis: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("redis: Register called twice for driver " + name)
	}
	drivers[name] = factory
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupDriver(name string) (DriverFactory, error) {
	if name == "" {
		name = DefaultDriver
	}

	driversMu.RLock()
	factory, ok := drivers[name]
	driversMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (forgotten import?)", ErrDriverNotFound, name)
	}
	return factory, nil
}
