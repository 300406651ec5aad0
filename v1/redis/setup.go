package redis

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

// RedisClient is the entry point of this package. It sends every command
// of the Cmdable interface through the configured Driver and owns the
// driver's connections.
//
// RedisClient implements the Client interface and is safe for concurrent use.
type RedisClient struct {
	cmdable

	// driver is the SDK adapter all commands are sent through
	driver Driver

	// cfg stores the configuration for this Redis client
	cfg interface{} // Can be Config, ClusterConfig, or FailoverConfig

	// keyPrefix is prepended to keys by the object helpers
	keyPrefix string

	// serializer encodes values for the object helpers
	serializer Serializer

	// logger is used for structured logging
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// mu protects logger, observer and serializer
	mu sync.RWMutex

	// shutdownSignal is closed when the client is being shut down
	shutdownSignal chan struct{}

	closeShutdownOnce sync.Once
}

// NewClient creates a client for a standalone Redis server using the driver
// named by cfg.Driver. The driver package must be imported, e.g.
//
//	import _ "github.com/Aleph-Alpha/rediskit/v1/redis/goredis"
//
// Example:
//
//	client, err := redis.NewClient(redis.Config{
//		Host: "localhost",
//		Port: 6379,
//	})
//	if err != nil {
//		return nil, err
//	}
//	defer client.Close()
func NewClient(cfg Config) (*RedisClient, error) {
	cfg = cfg.WithDefaults()

	factory, err := lookupDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}
	drv, err := factory.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s driver: %w", cfg.Driver, err)
	}

	r := newRedisClient(drv, cfg, cfg.KeyPrefix, cfg.Logger)
	r.getLogger().Info("Redis client initialized", nil, map[string]interface{}{
		"driver": drv.Name(),
		"addr":   cfg.Addr(),
	})
	return r, nil
}

// NewClusterClient creates a client for a Redis Cluster deployment.
//
// Example:
//
//	client, err := redis.NewClusterClient(redis.ClusterConfig{
//		Addrs: []string{"localhost:7000", "localhost:7001", "localhost:7002"},
//	})
func NewClusterClient(cfg ClusterConfig) (*RedisClient, error) {
	cfg = cfg.WithDefaults()
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("%w: cluster config requires at least one address", ErrInvalidArgument)
	}

	factory, err := lookupDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}
	drv, err := factory.OpenCluster(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s cluster driver: %w", cfg.Driver, err)
	}

	r := newRedisClient(drv, cfg, cfg.KeyPrefix, cfg.Logger)
	r.getLogger().Info("Redis Cluster client initialized", nil, map[string]interface{}{
		"driver": drv.Name(),
		"addrs":  cfg.Addrs,
	})
	return r, nil
}

// NewFailoverClient creates a client for a Redis Sentinel setup.
//
// Example:
//
//	client, err := redis.NewFailoverClient(redis.FailoverConfig{
//		MasterName:    "mymaster",
//		SentinelAddrs: []string{"localhost:26379", "localhost:26380"},
//	})
func NewFailoverClient(cfg FailoverConfig) (*RedisClient, error) {
	cfg = cfg.WithDefaults()
	if cfg.MasterName == "" || len(cfg.SentinelAddrs) == 0 {
		return nil, fmt.Errorf("%w: failover config requires a master name and sentinel addresses", ErrInvalidArgument)
	}

	factory, err := lookupDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}
	drv, err := factory.OpenFailover(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s failover driver: %w", cfg.Driver, err)
	}

	r := newRedisClient(drv, cfg, cfg.KeyPrefix, cfg.Logger)
	r.getLogger().Info("Redis Failover client initialized", nil, map[string]interface{}{
		"driver":      drv.Name(),
		"master_name": cfg.MasterName,
	})
	return r, nil
}

// NewDeploymentClient creates the client matching d.Mode.
func NewDeploymentClient(d DeploymentConfig) (*RedisClient, error) {
	switch normalizeMode(d.Mode) {
	case ModeStandalone:
		return NewClient(d.Standalone)
	case ModeCluster:
		return NewClusterClient(d.Cluster)
	case ModeSentinel:
		return NewFailoverClient(d.Failover)
	}
	return nil, fmt.Errorf("%w: unknown redis mode %q", ErrInvalidArgument, d.Mode)
}

// NewClientWithDriver wraps an already opened driver. It is meant for custom
// drivers and tests; the client takes ownership of drv.
func NewClientWithDriver(drv Driver, logger Logger) *RedisClient {
	return newRedisClient(drv, nil, "", logger)
}

func newRedisClient(drv Driver, cfg interface{}, keyPrefix string, logger Logger) *RedisClient {
	if logger == nil {
		logger = zapLogger{}
	}
	r := &RedisClient{
		driver:         drv,
		cfg:            cfg,
		keyPrefix:      keyPrefix,
		serializer:     JSONSerializer{},
		logger:         logger,
		shutdownSignal: make(chan struct{}),
	}
	r.cmdable = r.process
	return r
}

// NewTLSConfig builds a *tls.Config from cfg. defaultServerName is used when
// cfg.ServerName is empty. Drivers call it when cfg.Enabled is set.
func NewTLSConfig(cfg TLSConfig, defaultServerName string) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}

	if cfg.ServerName != "" {
		tlsConfig.ServerName = cfg.ServerName
	} else if defaultServerName != "" {
		tlsConfig.ServerName = defaultServerName
	}

	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = caCertPool
	}

	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// process sends a single command through the driver.
func (r *RedisClient) process(ctx context.Context, cmd Cmder) error {
	if err := cmd.Err(); err != nil {
		return err
	}
	start := time.Now()

	var reply interface{}
	drv, err := r.current()
	if err == nil {
		reply, err = drv.Do(ctx, cmd.Args()...)
	}
	cmd.setReply(reply, TranslateError(err))

	r.observeCommand(ctx, cmd, reply, time.Since(start))
	r.logCommandError(cmd)
	return cmd.Err()
}

// Process sends a command built with NewCmd.
func (r *RedisClient) Process(ctx context.Context, cmd Cmder) error {
	return r.process(ctx, cmd)
}

func (r *RedisClient) current() (Driver, error) {
	select {
	case <-r.shutdownSignal:
		return nil, ErrClosed
	default:
	}
	return r.driver, nil
}

// Driver returns the underlying driver for advanced operations.
func (r *RedisClient) Driver() Driver {
	return r.driver
}

func (r *RedisClient) driverName() string {
	if r.driver == nil {
		return ""
	}
	return r.driver.Name()
}

// PoolStats returns connection pool statistics of the driver.
func (r *RedisClient) PoolStats() PoolStats {
	return r.driver.PoolStats()
}

// Close closes the driver and releases all connections. Commands issued
// afterwards fail with ErrClosed. Close is idempotent.
func (r *RedisClient) Close() error {
	var err error
	r.closeShutdownOnce.Do(func() {
		close(r.shutdownSignal)

		r.getLogger().Info("Closing Redis client", nil)
		if r.driver != nil {
			if err = TranslateError(r.driver.Close()); err != nil {
				r.getLogger().Warn("Failed to close Redis client", err)
			}
		}
	})
	return err
}

// WithObserver sets the observer for this client and returns the client for method chaining.
// The observer receives one event per command, pipeline flush and Watch call.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (r *RedisClient) WithObserver(observer observability.Observer) *RedisClient {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = observer
	return r
}

// WithLogger sets the logger for this client and returns the client for method chaining.
// A nil logger restores the zap-backed default.
func (r *RedisClient) WithLogger(logger Logger) *RedisClient {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger == nil {
		logger = zapLogger{}
	}
	r.logger = logger
	return r
}

func (r *RedisClient) getLogger() Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.logger == nil {
		return zapLogger{}
	}
	return r.logger
}

func (r *RedisClient) getObserver() observability.Observer {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.observer
}
