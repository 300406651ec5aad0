package redis

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/rediskit/v1/logger"
	"github.com/Aleph-Alpha/rediskit/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Redis client.
// This module registers the Redis client with the Fx dependency injection framework,
// making it available to other components in the application.
//
// The module:
// 1. Provides the Redis client factory function as *RedisClient and Client
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// A driver package must be imported for its side effect:
//
//	import _ "github.com/Aleph-Alpha/rediskit/v1/redis/goredis"
//
// Usage:
//
//	app := fx.New(
//	    redis.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("redis",
	fx.Provide(
		NewClientWithDI,
		asClient,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// RedisParams groups the dependencies needed to create a Redis client
type RedisParams struct {
	fx.In

	Config   Config
	Logger       Logger                 `optional:"true"`
	LoggerClient *logger.LoggerClient   `optional:"true"` // provided by logger.FXModule
	Observer     observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new Redis client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection framework
// where dependencies are automatically provided via the RedisParams struct.
//
// Example usage with fx:
//
//	app := fx.New(
//	    redis.FXModule,
//	    logger.FXModule, // Optional: provides logger
//	    fx.Provide(
//	        func() (redis.Config, error) {
//	            return redis.LoadConfigFromEnv("REDIS")
//	        },
//	    ),
//	)
func NewClientWithDI(params RedisParams) (*RedisClient, error) {
	if l := injectedLogger(params.Logger, params.LoggerClient); l != nil {
		params.Config.Logger = l
	}

	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	return withOptionalObserver(client, params.Observer), nil
}

func asClient(c *RedisClient) Client {
	return c
}

// injectedLogger prefers an explicitly provided Logger over the client of
// logger.FXModule.
func injectedLogger(l Logger, lc *logger.LoggerClient) Logger {
	if l != nil {
		return l
	}
	if lc != nil {
		return lc
	}
	return nil
}

func withOptionalObserver(c *RedisClient, o observability.Observer) *RedisClient {
	if o != nil {
		c.WithObserver(o)
	}
	return c
}

// RedisLifecycleParams groups the dependencies needed for Redis lifecycle management
type RedisLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RedisClient
}

// RegisterRedisLifecycle registers the Redis client with the fx lifecycle system.
//
// The function:
//  1. On application start: Pings Redis to ensure the connection is healthy
//  2. On application stop: Closes the client and its driver connections
func RegisterRedisLifecycle(params RedisLifecycleParams) {
	client := params.Client
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				client.getLogger().Warn("Failed to ping Redis on startup", err)
				return err
			}
			client.getLogger().Info("Redis client started and healthy", nil, map[string]interface{}{
				"driver": client.driverName(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}

// ClusterFXModule is an fx.Module for Redis Cluster configuration.
var ClusterFXModule = fx.Module("redis-cluster",
	fx.Provide(
		NewClusterClientWithDI,
		asClient,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// ClusterRedisParams groups the dependencies needed to create a Redis Cluster client
type ClusterRedisParams struct {
	fx.In

	Config   ClusterConfig
	Logger       Logger                 `optional:"true"`
	LoggerClient *logger.LoggerClient   `optional:"true"`
	Observer     observability.Observer `optional:"true"`
}

// NewClusterClientWithDI creates a new Redis Cluster client using dependency injection.
func NewClusterClientWithDI(params ClusterRedisParams) (*RedisClient, error) {
	if l := injectedLogger(params.Logger, params.LoggerClient); l != nil {
		params.Config.Logger = l
	}

	client, err := NewClusterClient(params.Config)
	if err != nil {
		return nil, err
	}
	return withOptionalObserver(client, params.Observer), nil
}

// FailoverFXModule is an fx.Module for Redis Sentinel (failover) configuration.
var FailoverFXModule = fx.Module("redis-failover",
	fx.Provide(
		NewFailoverClientWithDI,
		asClient,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// FailoverRedisParams groups the dependencies needed to create a Redis Sentinel client
type FailoverRedisParams struct {
	fx.In

	Config   FailoverConfig
	Logger       Logger                 `optional:"true"`
	LoggerClient *logger.LoggerClient   `optional:"true"`
	Observer     observability.Observer `optional:"true"`
}

// NewFailoverClientWithDI creates a new Redis Sentinel client using dependency injection.
func NewFailoverClientWithDI(params FailoverRedisParams) (*RedisClient, error) {
	if l := injectedLogger(params.Logger, params.LoggerClient); l != nil {
		params.Config.Logger = l
	}

	client, err := NewFailoverClient(params.Config)
	if err != nil {
		return nil, err
	}
	return withOptionalObserver(client, params.Observer), nil
}

// DeploymentFXModule picks the deployment mode at runtime from a
// DeploymentConfig, typically loaded with LoadDeploymentFromEnv.
var DeploymentFXModule = fx.Module("redis-deployment",
	fx.Provide(
		NewDeploymentClientWithDI,
		asClient,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// DeploymentRedisParams groups the dependencies needed by NewDeploymentClientWithDI.
type DeploymentRedisParams struct {
	fx.In

	Config   DeploymentConfig
	Logger       Logger                 `optional:"true"`
	LoggerClient *logger.LoggerClient   `optional:"true"`
	Observer     observability.Observer `optional:"true"`
}

// NewDeploymentClientWithDI creates the client matching params.Config.Mode.
func NewDeploymentClientWithDI(params DeploymentRedisParams) (*RedisClient, error) {
	if l := injectedLogger(params.Logger, params.LoggerClient); l != nil {
		params.Config.Standalone.Logger = l
		params.Config.Cluster.Logger = l
		params.Config.Failover.Logger = l
	}

	client, err := NewDeploymentClient(params.Config)
	if err != nil {
		return nil, err
	}
	return withOptionalObserver(client, params.Observer), nil
}
