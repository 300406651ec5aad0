// Package goredis registers the "goredis" driver, backed by
// github.com/redis/go-redis/v9. It is the default driver.
//
//	import (
//		"github.com/Aleph-Alpha/rediskit/v1/redis"
//		_ "github.com/Aleph-Alpha/rediskit/v1/redis/goredis"
//	)
//
// Standalone, Cluster and Sentinel deployments are supported. With
// Config.EnableTracing the client is instrumented with redisotel, which
// creates a span per command in addition to the observer events of the
// redis package.
//
// An existing go-redis client can be wrapped with NewDriver and
// redis.NewClientWithDriver.
package goredis
