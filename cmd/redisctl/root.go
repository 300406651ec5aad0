package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand(gs *globalState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "redisctl",
		Short: "Inspect and exercise Redis deployments",
		Long: `redisctl talks to a Redis deployment through rediskit.

  Connection settings are read from <prefix>_* environment variables
  (REDIS_MODE, REDIS_HOST, REDIS_ADDRS, ...) and overridden by flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(gs.stdOut)
			cmd.SetErr(gs.stdErr)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&gs.flags.envPrefix, "env-prefix", gs.flags.envPrefix, "prefix of the environment variables holding the connection config")
	flags.StringVar(&gs.flags.mode, "mode", "", "deployment mode: standalone, cluster or sentinel")
	flags.StringVar(&gs.flags.driver, "driver", "", "driver: goredis or redigo")
	flags.StringSliceVarP(&gs.flags.addrs, "addr", "a", nil, "server, cluster seed or sentinel address (host:port), repeatable")
	flags.StringVar(&gs.flags.username, "user", "", "ACL user")
	flags.StringVar(&gs.flags.password, "password", "", "password")
	flags.IntVarP(&gs.flags.db, "db", "n", gs.flags.db, "database number")
	flags.DurationVar(&gs.flags.timeout, "timeout", gs.flags.timeout, "deadline of the whole command, 0 disables it")
	flags.StringVar(&gs.flags.logLevel, "log-level", gs.flags.logLevel, "log level: debug, info, warning or error")

	rootCmd.AddCommand(
		getCmdPing(gs),
		getCmdGet(gs),
		getCmdSet(gs),
		getCmdDel(gs),
		getCmdScan(gs),
		getCmdInfo(gs),
		getCmdPublish(gs),
		getCmdClusterNodes(gs),
		getCmdConfig(gs),
		getCmdBench(gs),
	)
	return rootCmd
}

func printf(gs *globalState, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(gs.stdOut, format, args...)
}
