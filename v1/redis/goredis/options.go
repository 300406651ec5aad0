package goredis

import (
	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/redis/go-redis/v9"
)

func clientOptions(cfg rediskit.Config) (*redis.Options, error) {
	opts := &redis.Options{
		Addr:            cfg.Addr(),
		Username:        cfg.Username,
		Password:        cfg.Password,
		DB:              cfg.DB,
		ClientName:      cfg.ClientName,
		Protocol:        cfg.Protocol,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxLifetime: cfg.MaxConnAge,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: cfg.MinRetryBackoff,
		MaxRetryBackoff: cfg.MaxRetryBackoff,
		DialTimeout:     cfg.DialTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
	}

	if cfg.TLS.Enabled {
		tlsConfig, err := rediskit.NewTLSConfig(cfg.TLS, cfg.Host)
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = tlsConfig
	}
	return opts, nil
}

func clusterOptions(cfg rediskit.ClusterConfig) (*redis.ClusterOptions, error) {
	opts := &redis.ClusterOptions{
		Addrs:           cfg.Addrs,
		Username:        cfg.Username,
		Password:        cfg.Password,
		ClientName:      cfg.ClientName,
		Protocol:        cfg.Protocol,
		MaxRedirects:    cfg.MaxRedirects,
		ReadOnly:        cfg.ReadOnly,
		RouteByLatency:  cfg.RouteByLatency,
		RouteRandomly:   cfg.RouteRandomly,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxLifetime: cfg.MaxConnAge,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: cfg.MinRetryBackoff,
		MaxRetryBackoff: cfg.MaxRetryBackoff,
		DialTimeout:     cfg.DialTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
	}

	if cfg.TLS.Enabled {
		tlsConfig, err := rediskit.NewTLSConfig(cfg.TLS, "")
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = tlsConfig
	}
	return opts, nil
}

func failoverOptions(cfg rediskit.FailoverConfig) (*redis.FailoverOptions, error) {
	opts := &redis.FailoverOptions{
		MasterName:              cfg.MasterName,
		SentinelAddrs:           cfg.SentinelAddrs,
		SentinelUsername:        cfg.SentinelUsername,
		SentinelPassword:        cfg.SentinelPassword,
		Username:                cfg.Username,
		Password:                cfg.Password,
		DB:                      cfg.DB,
		ClientName:              cfg.ClientName,
		Protocol:                cfg.Protocol,
		ReplicaOnly:             cfg.ReplicaOnly,
		UseDisconnectedReplicas: cfg.UseDisconnectedReplicas,
		PoolSize:                cfg.PoolSize,
		MinIdleConns:            cfg.MinIdleConns,
		ConnMaxLifetime:         cfg.MaxConnAge,
		PoolTimeout:             cfg.PoolTimeout,
		ConnMaxIdleTime:         cfg.IdleTimeout,
		MaxRetries:              cfg.MaxRetries,
		MinRetryBackoff:         cfg.MinRetryBackoff,
		MaxRetryBackoff:         cfg.MaxRetryBackoff,
		DialTimeout:             cfg.DialTimeout,
		ReadTimeout:             cfg.ReadTimeout,
		WriteTimeout:            cfg.WriteTimeout,
	}

	if cfg.TLS.Enabled {
		tlsConfig, err := rediskit.NewTLSConfig(cfg.TLS, "")
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = tlsConfig
	}
	return opts, nil
}
