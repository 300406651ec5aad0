package redis

import (
	"context"
	"time"
)

// Del removes keys and returns how many existed.
func (c cmdable) Del(ctx context.Context, keys ...string) *IntCmd {
	if err := requireKeys("DEL", keys); err != nil {
		return fail[int64](ctx, c, err, "DEL")
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"DEL"}, keys)...)
}

// Unlink is Del with the memory reclaimed in the background.
func (c cmdable) Unlink(ctx context.Context, keys ...string) *IntCmd {
	if err := requireKeys("UNLINK", keys); err != nil {
		return fail[int64](ctx, c, err, "UNLINK")
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"UNLINK"}, keys)...)
}

// Exists returns how many of the keys exist.
func (c cmdable) Exists(ctx context.Context, keys ...string) *IntCmd {
	if err := requireKeys("EXISTS", keys); err != nil {
		return fail[int64](ctx, c, err, "EXISTS")
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"EXISTS"}, keys)...)
}

// Expire sets a time to live on key. It returns false if key does not exist.
func (c cmdable) Expire(ctx context.Context, key string, expiration time.Duration) *BoolCmd {
	return run(ctx, c, toBool, "EXPIRE", key, formatSec(expiration))
}

// ExpireWithOption is EXPIRE with an NX, XX, GT or LT condition.
func (c cmdable) ExpireWithOption(ctx context.Context, key string, expiration time.Duration, option ExpireOption) *BoolCmd {
	return run(ctx, c, toBool, "EXPIRE", key, formatSec(expiration), string(option))
}

// ExpireAt sets an absolute expiration time on key.
func (c cmdable) ExpireAt(ctx context.Context, key string, tm time.Time) *BoolCmd {
	return run(ctx, c, toBool, "EXPIREAT", key, tm.Unix())
}

// PExpire is Expire with millisecond precision.
func (c cmdable) PExpire(ctx context.Context, key string, expiration time.Duration) *BoolCmd {
	return run(ctx, c, toBool, "PEXPIRE", key, formatMs(expiration))
}

// PExpireAt is ExpireAt with millisecond precision.
func (c cmdable) PExpireAt(ctx context.Context, key string, tm time.Time) *BoolCmd {
	return run(ctx, c, toBool, "PEXPIREAT", key, tm.UnixMilli())
}

// ExpireTime returns the absolute Unix expiration time in seconds,
// -1 without expiration and -2 for a missing key.
func (c cmdable) ExpireTime(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "EXPIRETIME", key)
}

// PExpireTime is ExpireTime in milliseconds.
func (c cmdable) PExpireTime(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "PEXPIRETIME", key)
}

// Persist removes the expiration of key.
func (c cmdable) Persist(ctx context.Context, key string) *BoolCmd {
	return run(ctx, c, toBool, "PERSIST", key)
}

// TTL returns the remaining time to live. The raw -1 and -2 replies are kept
// as negative durations.
func (c cmdable) TTL(ctx context.Context, key string) *DurationCmd {
	return run(ctx, c, toDuration(time.Second), "TTL", key)
}

// PTTL returns the remaining time to live of key with millisecond precision.
func (c cmdable) PTTL(ctx context.Context, key string) *DurationCmd {
	return run(ctx, c, toDuration(time.Millisecond), "PTTL", key)
}

// Type returns the type of the value stored at key, or "none".
func (c cmdable) Type(ctx context.Context, key string) *StatusCmd {
	return run(ctx, c, toStatus, "TYPE", key)
}

// Keys returns the keys matching pattern. Prefer Scan on large databases.
func (c cmdable) Keys(ctx context.Context, pattern string) *StringSliceCmd {
	return runNoKey(ctx, c, toStringSliceOrEmpty, "KEYS", pattern)
}

// RandomKey returns a random key.
func (c cmdable) RandomKey(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "RANDOMKEY")
}

// Rename renames key to newKey, overwriting newKey.
func (c cmdable) Rename(ctx context.Context, key, newKey string) *StatusCmd {
	return run(ctx, c, toStatus, "RENAME", key, newKey)
}

// RenameNX renames key only if newKey does not exist.
func (c cmdable) RenameNX(ctx context.Context, key, newKey string) *BoolCmd {
	return run(ctx, c, toBool, "RENAMENX", key, newKey)
}

// Copy copies the value of source to destination.
func (c cmdable) Copy(ctx context.Context, source, destination string, arg *CopyArgument) *BoolCmd {
	return run(ctx, c, toBool, append([]interface{}{"COPY", source, destination}, arg.Args()...)...)
}

// Dump returns the serialized value of key, for use with Restore.
func (c cmdable) Dump(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "DUMP", key)
}

// Restore creates key from a Dump payload. ttl is in milliseconds, or a Unix
// time in milliseconds with ABSTTL; zero means no expiration.
func (c cmdable) Restore(ctx context.Context, key string, ttl int64, value string, arg *RestoreArgument) *StatusCmd {
	if err := arg.Validate(); err != nil {
		return fail[string](ctx, c, err, "RESTORE", key)
	}
	return run(ctx, c, toStatus, append([]interface{}{"RESTORE", key, ttl, value}, arg.Args()...)...)
}

// Move moves key to another logical database.
func (c cmdable) Move(ctx context.Context, key string, db int) *BoolCmd {
	return run(ctx, c, toBool, "MOVE", key, db)
}

// ObjectEncoding returns the internal encoding of the value at key.
func (c cmdable) ObjectEncoding(ctx context.Context, key string) *StringCmd {
	return runAt(ctx, c, 2, toString, "OBJECT", "ENCODING", key)
}

// ObjectFreq returns the LFU access frequency of key.
func (c cmdable) ObjectFreq(ctx context.Context, key string) *IntCmd {
	return runAt(ctx, c, 2, toInt64, "OBJECT", "FREQ", key)
}

// ObjectIdleTime returns how long key has not been accessed.
func (c cmdable) ObjectIdleTime(ctx context.Context, key string) *DurationCmd {
	return runAt(ctx, c, 2, toDuration(time.Second), "OBJECT", "IDLETIME", key)
}

// ObjectRefCount returns the reference count of the value at key.
func (c cmdable) ObjectRefCount(ctx context.Context, key string) *IntCmd {
	return runAt(ctx, c, 2, toInt64, "OBJECT", "REFCOUNT", key)
}

// Scan iterates the keyspace. Start with cursor 0 and stop when the returned
// cursor is 0 again.
func (c cmdable) Scan(ctx context.Context, cursor uint64, arg *ScanArgument) *ScanCmd {
	if err := arg.Validate(); err != nil {
		return fail[ScanResult[string]](ctx, c, err, "SCAN", cursor)
	}
	return runNoKey(ctx, c, toScan, append([]interface{}{"SCAN", cursor}, arg.Args()...)...)
}

// Sort sorts the elements of a list, set or sorted set.
func (c cmdable) Sort(ctx context.Context, key string, arg *SortArgument) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"SORT", key}, arg.Args()...)...)
}

// SortRO is the read-only variant of Sort.
func (c cmdable) SortRO(ctx context.Context, key string, arg *SortArgument) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"SORT_RO", key}, arg.Args()...)...)
}

// SortStore sorts key into destination and returns the number of stored elements.
func (c cmdable) SortStore(ctx context.Context, key, destination string, arg *SortArgument) *IntCmd {
	args := append([]interface{}{"SORT", key}, arg.Args()...)
	return run(ctx, c, toInt64, append(args, "STORE", destination)...)
}

// Touch updates the last access time of keys and returns how many exist.
func (c cmdable) Touch(ctx context.Context, keys ...string) *IntCmd {
	if err := requireKeys("TOUCH", keys); err != nil {
		return fail[int64](ctx, c, err, "TOUCH")
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"TOUCH"}, keys)...)
}

// Wait blocks until the previous writes were acknowledged by numReplicas
// replicas or timeout elapsed.
func (c cmdable) Wait(ctx context.Context, numReplicas int, timeout time.Duration) *IntCmd {
	return runNoKey(ctx, c, toInt64, "WAIT", numReplicas, formatMs(timeout))
}

// Migrate moves key to another instance. To move several keys leave key
// empty and set arg.Keys.
func (c cmdable) Migrate(ctx context.Context, host string, port int, key string, db int, timeout time.Duration, arg *MigrateArgument) *StatusCmd {
	multi := arg != nil && len(arg.Keys) > 0
	switch {
	case multi && key != "":
		return fail[string](ctx, c, invalidArgument("MIGRATE takes either a key or KEYS"), "MIGRATE", host, port, key)
	case !multi && key == "":
		return fail[string](ctx, c, invalidArgument("MIGRATE requires a key"), "MIGRATE", host, port, key)
	}
	args := []interface{}{"MIGRATE", host, port, key, db, formatMs(timeout)}
	return runAt(ctx, c, 3, toStatus, append(args, arg.Args()...)...)
}
