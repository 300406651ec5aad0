package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/rediskit/v1/redis"
)

func getCmdPing(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the deployment answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				start := time.Now()
				res, err := c.Ping(ctx).Result()
				if err != nil {
					return err
				}
				printf(gs, "%s (%s via %s)\n", res, time.Since(start).Round(time.Microsecond), c.Driver().Name())
				return nil
			})
		},
	}
}

func getCmdGet(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the string value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				val, err := c.Get(ctx, args[0]).Result()
				if errors.Is(err, redis.Nil) {
					printf(gs, "(nil)\n")
					return nil
				}
				if err != nil {
					return err
				}
				printf(gs, "%s\n", val)
				return nil
			})
		},
	}
}

func getCmdSet(gs *globalState) *cobra.Command {
	var ttl time.Duration
	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set the string value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				res, err := c.Set(ctx, args[0], args[1], ttl).Result()
				if err != nil {
					return err
				}
				printf(gs, "%s\n", res)
				return nil
			})
		},
	}
	setCmd.Flags().DurationVar(&ttl, "ttl", 0, "expiration, 0 keeps the key forever")
	return setCmd
}

func getCmdDel(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "del <key>...",
		Short: "Delete keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				n, err := c.Del(ctx, args...).Result()
				if err != nil {
					return err
				}
				printf(gs, "(integer) %d\n", n)
				return nil
			})
		},
	}
}

func getCmdScan(gs *globalState) *cobra.Command {
	var arg redis.ScanArgument
	var limit int
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "List keys with SCAN",
		Long: `List keys with SCAN.

  In cluster mode only the node serving the first command is scanned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				var cursor uint64
				printed := 0
				for {
					res, err := c.Scan(ctx, cursor, &arg).Result()
					if err != nil {
						return err
					}
					for _, key := range res.Items {
						printf(gs, "%s\n", key)
						printed++
						if limit > 0 && printed >= limit {
							return nil
						}
					}
					if res.Cursor == 0 {
						return nil
					}
					cursor = res.Cursor
				}
			})
		},
	}
	scanCmd.Flags().StringVar(&arg.Match, "match", "", "glob-style pattern")
	scanCmd.Flags().Int64Var(&arg.Count, "count", 0, "COUNT hint per iteration")
	scanCmd.Flags().StringVar(&arg.Type, "type", "", "only keys of this type")
	scanCmd.Flags().IntVar(&limit, "limit", 0, "stop after this many keys, 0 means all")
	return scanCmd
}

func getCmdInfo(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "info [section]...",
		Short: "Print server information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				info, err := c.Info(ctx, args...).Result()
				if err != nil {
					return err
				}
				sections := make([]string, 0, len(info))
				for s := range info {
					sections = append(sections, s)
				}
				sort.Strings(sections)
				for _, s := range sections {
					printf(gs, "# %s\n", s)
					fields := make([]string, 0, len(info[s]))
					for k := range info[s] {
						fields = append(fields, k)
					}
					sort.Strings(fields)
					for _, k := range fields {
						printf(gs, "%s:%s\n", k, info[s][k])
					}
				}
				return nil
			})
		},
	}
}

func getCmdPublish(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <channel> <message>",
		Short: "Publish a message to a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				n, err := c.Publish(ctx, args[0], args[1]).Result()
				if err != nil {
					return err
				}
				printf(gs, "(integer) %d\n", n)
				return nil
			})
		},
	}
}

func getCmdClusterNodes(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "cluster-nodes",
		Short: "List the nodes of a cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gs.withClient(cmd.Context(), func(ctx context.Context, c *redis.RedisClient) error {
				nodes, err := c.ClusterNodes(ctx).Result()
				if err != nil {
					return err
				}
				for _, n := range nodes {
					slots := make([]string, 0, len(n.Slots))
					for _, s := range n.Slots {
						slots = append(slots, fmt.Sprintf("%d-%d", s.Start, s.End))
					}
					printf(gs, "%s %s %s %s\n", n.ID, n.Addr, strings.Join(n.Flags, ","), strings.Join(slots, " "))
				}
				return nil
			})
		},
	}
}

func getCmdConfig(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved connection config as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := gs.resolveDeployment()
			if err != nil {
				return err
			}
			d.Standalone.Password = mask(d.Standalone.Password)
			d.Cluster.Password = mask(d.Cluster.Password)
			d.Failover.Password = mask(d.Failover.Password)
			d.Failover.SentinelPassword = mask(d.Failover.SentinelPassword)

			enc := json.NewEncoder(gs.stdOut)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		},
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "******"
}
