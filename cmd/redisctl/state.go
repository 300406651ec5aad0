package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Aleph-Alpha/rediskit/v1/logger"
	"github.com/Aleph-Alpha/rediskit/v1/redis"
	_ "github.com/Aleph-Alpha/rediskit/v1/redis/goredis"
	_ "github.com/Aleph-Alpha/rediskit/v1/redis/redigo"
)

type globalFlags struct {
	envPrefix string
	mode      string
	driver    string
	addrs     []string
	username  string
	password  string
	db        int
	timeout   time.Duration
	logLevel  string
}

type globalState struct {
	ctx    context.Context
	flags  globalFlags
	stdOut io.Writer
	stdErr io.Writer
}

func newGlobalState(ctx context.Context, stdOut, stdErr io.Writer) *globalState {
	return &globalState{
		ctx:    ctx,
		stdOut: stdOut,
		stdErr: stdErr,
		flags: globalFlags{
			envPrefix: "REDIS",
			db:        -1,
			timeout:   5 * time.Second,
			logLevel:  logger.Warning,
		},
	}
}

// resolveDeployment loads the deployment from the environment and overlays
// the values given on the command line.
func (gs *globalState) resolveDeployment() (redis.DeploymentConfig, error) {
	d, err := redis.LoadDeploymentFromEnv(gs.flags.envPrefix)
	if err != nil {
		return redis.DeploymentConfig{}, err
	}

	f := gs.flags
	if f.mode != "" {
		switch strings.ToLower(f.mode) {
		case redis.ModeStandalone:
			d.Mode = redis.ModeStandalone
		case redis.ModeCluster:
			d.Mode = redis.ModeCluster
		case redis.ModeSentinel, "failover":
			d.Mode = redis.ModeSentinel
		default:
			return redis.DeploymentConfig{}, fmt.Errorf("%w: unknown mode %q", redis.ErrInvalidArgument, f.mode)
		}
	}

	if f.driver != "" {
		d.Standalone.Driver = f.driver
		d.Cluster.Driver = f.driver
		d.Failover.Driver = f.driver
	}
	if f.username != "" {
		d.Standalone.Username = f.username
		d.Cluster.Username = f.username
		d.Failover.Username = f.username
	}
	if f.password != "" {
		d.Standalone.Password = f.password
		d.Cluster.Password = f.password
		d.Failover.Password = f.password
	}
	if f.db >= 0 {
		d.Standalone.DB = f.db
		d.Failover.DB = f.db
	}

	if len(f.addrs) > 0 {
		switch d.Mode {
		case redis.ModeCluster:
			d.Cluster.Addrs = f.addrs
		case redis.ModeSentinel:
			d.Failover.SentinelAddrs = f.addrs
		default:
			host, port, err := splitAddr(f.addrs[0])
			if err != nil {
				return redis.DeploymentConfig{}, err
			}
			d.Standalone.Host = host
			d.Standalone.Port = port
		}
	}
	return d, nil
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid address %q: %v", redis.ErrInvalidArgument, addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid port in %q", redis.ErrInvalidArgument, addr)
	}
	return host, port, nil
}

func (gs *globalState) newLogger() *logger.LoggerClient {
	return logger.NewLoggerClient(logger.Config{
		Level:       gs.flags.logLevel,
		ServiceName: "redisctl",
	})
}

// newClient opens a client for the resolved deployment.
func (gs *globalState) newClient() (*redis.RedisClient, error) {
	d, err := gs.resolveDeployment()
	if err != nil {
		return nil, err
	}

	log := gs.newLogger()
	d.Standalone.Logger = log
	d.Cluster.Logger = log
	d.Failover.Logger = log

	return redis.NewDeploymentClient(d)
}

// withClient runs fn with a connected client and a context bounded by the
// --timeout flag.
func (gs *globalState) withClient(ctx context.Context, fn func(ctx context.Context, c *redis.RedisClient) error) error {
	client, err := gs.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if gs.flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gs.flags.timeout)
		defer cancel()
	}
	return fn(ctx, client)
}
