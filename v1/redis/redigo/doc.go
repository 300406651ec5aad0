// Package redigo registers the "redigo" driver, backed by
// github.com/gomodule/redigo for standalone servers and
// github.com/mna/redisc for Redis Cluster.
//
//	import (
//		"github.com/Aleph-Alpha/rediskit/v1/redis"
//		_ "github.com/Aleph-Alpha/rediskit/v1/redis/redigo"
//	)
//
//	client, err := redis.NewClient(redis.Config{Driver: "redigo", Host: "localhost"})
//
// Limitations compared to the goredis driver:
//   - Sentinel deployments are not supported (ErrNotSupported).
//   - Only RESP2 is spoken; Protocol 3 is rejected.
//   - In cluster mode pipelines are sent as concurrent single commands, and
//     transactions and Watch require all keys to hash to the same slot.
//   - ClusterConfig.ReadOnly, RouteByLatency and RouteRandomly are ignored.
//
// With EnableTracing every command, batch and Watch call gets an
// OpenTelemetry span from the global tracer provider.
package redigo
