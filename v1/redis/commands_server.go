package redis

import (
	"context"
	"errors"
	"io"
)

// BgRewriteAOF starts an append-only file rewrite in the background.
func (c cmdable) BgRewriteAOF(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "BGREWRITEAOF")
}

// BgSave saves the dataset in the background.
func (c cmdable) BgSave(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "BGSAVE")
}

// ConfigGet returns the configuration parameters matching pattern.
func (c cmdable) ConfigGet(ctx context.Context, pattern string) *StringMapCmd {
	return runNoKey(ctx, c, toStringMap, "CONFIG", "GET", pattern)
}

// ConfigSet sets a configuration parameter.
func (c cmdable) ConfigSet(ctx context.Context, parameter, value string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CONFIG", "SET", parameter, value)
}

// ConfigResetStat resets the statistics reported by INFO.
func (c cmdable) ConfigResetStat(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CONFIG", "RESETSTAT")
}

// ConfigRewrite writes the running configuration to the config file.
func (c cmdable) ConfigRewrite(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CONFIG", "REWRITE")
}

// DBSize returns the number of keys in the selected database.
func (c cmdable) DBSize(ctx context.Context) *IntCmd {
	return runNoKey(ctx, c, toInt64, "DBSIZE")
}

func flushArgs(args []interface{}, mode FlushMode) []interface{} {
	if mode != "" {
		args = append(args, string(mode))
	}
	return args
}

// FlushAll deletes every key of every database. An empty mode uses the
// server default.
func (c cmdable) FlushAll(ctx context.Context, mode FlushMode) *StatusCmd {
	return runNoKey(ctx, c, toStatus, flushArgs([]interface{}{"FLUSHALL"}, mode)...)
}

// FlushDB removes all keys of the selected database.
func (c cmdable) FlushDB(ctx context.Context, mode FlushMode) *StatusCmd {
	return runNoKey(ctx, c, toStatus, flushArgs([]interface{}{"FLUSHDB"}, mode)...)
}

// Info returns the requested sections, or the default ones when none are
// given, parsed per section.
func (c cmdable) Info(ctx context.Context, sections ...string) *InfoCmd {
	return runNoKey(ctx, c, toInfo, appendStrings([]interface{}{"INFO"}, sections)...)
}

// LastSave returns the Unix time of the last successful save.
func (c cmdable) LastSave(ctx context.Context) *TimeCmd {
	return runNoKey(ctx, c, toUnixTime, "LASTSAVE")
}

// Time returns the server clock.
func (c cmdable) Time(ctx context.Context) *TimeCmd {
	return runNoKey(ctx, c, toTime, "TIME")
}

// Save saves the dataset synchronously.
func (c cmdable) Save(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "SAVE")
}

// SlowLogGet returns up to count entries; a negative count returns all of them.
func (c cmdable) SlowLogGet(ctx context.Context, count int64) *SlowLogCmd {
	return runNoKey(ctx, c, toSlowLogs, "SLOWLOG", "GET", count)
}

// SlowLogLen returns the number of entries in the slow log.
func (c cmdable) SlowLogLen(ctx context.Context) *IntCmd {
	return runNoKey(ctx, c, toInt64, "SLOWLOG", "LEN")
}

// SlowLogReset clears the slow log.
func (c cmdable) SlowLogReset(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "SLOWLOG", "RESET")
}

// MemoryUsage returns the bytes used by key. samples limits the nested
// values inspected; zero uses the server default.
func (c cmdable) MemoryUsage(ctx context.Context, key string, samples int) *IntCmd {
	args := []interface{}{"MEMORY", "USAGE", key}
	if samples > 0 {
		args = append(args, "SAMPLES", samples)
	}
	return runAt(ctx, c, 2, toInt64, args...)
}

// MemoryDoctor returns a memory problems report.
func (c cmdable) MemoryDoctor(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "MEMORY", "DOCTOR")
}

// Role returns the replication role of the server.
func (c cmdable) Role(ctx context.Context) *RoleCmd {
	return runNoKey(ctx, c, toRole, "ROLE")
}

// ReplicaOf makes the server a replica of the primary at host and port.
func (c cmdable) ReplicaOf(ctx context.Context, host string, port int) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "REPLICAOF", host, port)
}

// ReplicaOfNoOne promotes a replica to a primary.
func (c cmdable) ReplicaOfNoOne(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "REPLICAOF", "NO", "ONE")
}

// Shutdown stops the server. The server closes the connection instead of
// replying, so a lost connection counts as success. Shutdown with Abort
// replies normally.
func (c cmdable) Shutdown(ctx context.Context, arg *ShutdownArgument) *StatusCmd {
	if err := arg.Validate(); err != nil {
		return fail[string](ctx, c, err, "SHUTDOWN")
	}
	cmd := runNoKey(ctx, c, toStatus, append([]interface{}{"SHUTDOWN"}, arg.Args()...)...)
	if err := cmd.Err(); errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, ErrConnectionFailure) {
		cmd.SetErr(nil)
	}
	return cmd
}

// CommandCount returns the number of commands the server supports.
func (c cmdable) CommandCount(ctx context.Context) *IntCmd {
	return runNoKey(ctx, c, toInt64, "COMMAND", "COUNT")
}

// LatencyDoctor returns a latency analysis report.
func (c cmdable) LatencyDoctor(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "LATENCY", "DOCTOR")
}
