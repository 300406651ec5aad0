// Package redis provides a driver-neutral Redis client.
//
// The package defines the complete Redis command API once and sends every
// command through a Driver. Drivers adapt a concrete client SDK and register
// themselves by name, the same way database/sql drivers do:
//
//	import (
//		"github.com/Aleph-Alpha/rediskit/v1/redis"
//		_ "github.com/Aleph-Alpha/rediskit/v1/redis/goredis" // go-redis
//		_ "github.com/Aleph-Alpha/rediskit/v1/redis/redigo"  // redigo + redisc
//	)
//
// Config.Driver selects the driver; the default is "goredis".
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Client interface: Defines the contract for Redis operations
//   - Cmdable interface: The command API shared by clients, pipelines and transactions
//   - RedisClient struct: Concrete implementation of the Client interface
//   - Driver interface: The SDK adapter contract implemented by driver packages
//   - FX modules: Provide both *RedisClient and Client for dependency injection
//
// Every command method returns a typed command (StringCmd, IntCmd, ...) that
// carries the result and the error. On a RedisClient the command has been
// executed when the method returns; on a Pipeline the result is filled in by
// Exec.
//
// # Direct Usage (Without FX)
//
//	client, err := redis.NewClient(redis.Config{
//		Host: "localhost",
//		Port: 6379,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	if err := client.Set(ctx, "user:123", "John Doe", 5*time.Minute).Err(); err != nil {
//		return err
//	}
//	name, err := client.Get(ctx, "user:123").Result()
//	if errors.Is(err, redis.Nil) {
//		// key does not exist
//	}
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule, // Optional: provides the zap logger
//		redis.FXModule,  // Provides *RedisClient and redis.Client
//		fx.Provide(func() (redis.Config, error) {
//			return redis.LoadConfigFromEnv("REDIS")
//		}),
//	)
//	app.Run()
//
// ClusterFXModule, FailoverFXModule and DeploymentFXModule do the same for
// the other deployment modes.
//
// # Configuration
//
// Configs can be loaded from the environment with LoadConfigFromEnv,
// LoadClusterConfigFromEnv, LoadFailoverConfigFromEnv or
// LoadDeploymentFromEnv:
//
//	REDIS_MODE=standalone
//	REDIS_HOST=localhost
//	REDIS_PORT=6379
//	REDIS_PASSWORD=secret
//	REDIS_POOL_SIZE=10
//	REDIS_TLS_ENABLED=true
//
// DecodeConfig decodes a map read from a YAML or JSON file.
//
// # Pipelines and Transactions
//
//	cmds, err := client.Pipelined(ctx, func(p *redis.Pipeline) error {
//		p.Set(ctx, "key1", "value1", 0)
//		p.Incr(ctx, "counter")
//		return nil
//	})
//
// TxPipelined wraps the batch in MULTI/EXEC. Watch binds a connection for
// optimistic locking; a conflicting write makes EXEC fail with ErrTxAborted.
//
// # Pub/Sub Messaging
//
//	pubsub, err := client.Subscribe(ctx, "events")
//	if err != nil {
//		return err
//	}
//	defer pubsub.Close()
//
//	for msg := range pubsub.Channel(100) {
//		fmt.Println("Received:", msg.Channel, msg.Payload)
//	}
//
// # Errors
//
// Server and driver errors are translated to the sentinel errors of this
// package, e.g. ErrWrongType, ErrNoScript or ErrMoved, so they can be
// checked with errors.Is regardless of the driver. Server errors keep their
// message in a *ServerError.
//
// # Observability (Observer Hook)
//
// WithObserver installs an observability.Observer that receives one event
// per command, pipeline flush, Watch call and subscription:
//   - Component: "redis"
//   - Operation: the lower case command name, or "pipeline", "multi", "watch"
//   - Resource: the first key, or the channel
//   - SubResource: "direct", "pipeline", "multi", "watch" or "pubsub"
//   - Duration, Error and Size (reply length or command count)
//   - Metadata: driver name, and miss=true for nil replies
//
// # Distributed Locking and Rate Limiting
//
//	lock, err := client.AcquireLock(ctx, "resource:123", 10*time.Second)
//	if errors.Is(err, redis.ErrLockNotAcquired) {
//		return err
//	}
//	defer lock.Release(ctx)
//
//	if err := client.Allow(ctx, "api:user:123", 100, time.Minute); err != nil {
//		return err // ErrRateLimitExceeded
//	}
//
// # Caching Pattern with Automatic Serialization
//
//	err := client.SetObject(ctx, "user:123", user, 10*time.Minute)
//	err = client.GetObject(ctx, "user:123", &cachedUser)
//
// The serializer is JSON by default; WithSerializer(redis.ProtoSerializer{})
// switches to protobuf.
//
// # Thread Safety
//
// RedisClient is safe for concurrent use. A Pipeline or Tx belongs to the
// goroutine that created it.
package redis
