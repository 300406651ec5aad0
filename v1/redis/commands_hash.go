package redis

import (
	"context"
	"time"
)

func requireFields(name string, fields []string) error {
	if len(fields) == 0 {
		return invalidArgument("%s requires at least one field", name)
	}
	return nil
}

// fieldsArgs appends FIELDS numfields field....
func fieldsArgs(args []interface{}, fields []string) []interface{} {
	args = append(args, "FIELDS", len(fields))
	return appendStrings(args, fields)
}

// HDel removes fields from the hash and returns how many were removed.
func (c cmdable) HDel(ctx context.Context, key string, fields ...string) *IntCmd {
	if err := requireFields("HDEL", fields); err != nil {
		return fail[int64](ctx, c, err, "HDEL", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"HDEL", key}, fields)...)
}

// HExists reports whether field exists in the hash.
func (c cmdable) HExists(ctx context.Context, key, field string) *BoolCmd {
	return run(ctx, c, toBool, "HEXISTS", key, field)
}

// HGet returns Nil when the field does not exist.
func (c cmdable) HGet(ctx context.Context, key, field string) *StringCmd {
	return run(ctx, c, toString, "HGET", key, field)
}

// HGetAll returns all fields and values of the hash.
func (c cmdable) HGetAll(ctx context.Context, key string) *StringMapCmd {
	return run(ctx, c, toStringMap, "HGETALL", key)
}

// HIncrBy increments the integer value of field by incr.
func (c cmdable) HIncrBy(ctx context.Context, key, field string, incr int64) *IntCmd {
	return run(ctx, c, toInt64, "HINCRBY", key, field, incr)
}

// HIncrByFloat increments the float value of field by incr.
func (c cmdable) HIncrByFloat(ctx context.Context, key, field string, incr float64) *FloatCmd {
	return run(ctx, c, toFloat64, "HINCRBYFLOAT", key, field, formatFloat(incr))
}

// HKeys returns the field names of the hash.
func (c cmdable) HKeys(ctx context.Context, key string) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "HKEYS", key)
}

// HLen returns the number of fields in the hash.
func (c cmdable) HLen(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "HLEN", key)
}

// HMGet returns one entry per field; missing fields are nil.
func (c cmdable) HMGet(ctx context.Context, key string, fields ...string) *StringPtrSliceCmd {
	if err := requireFields("HMGET", fields); err != nil {
		return fail[[]*string](ctx, c, err, "HMGET", key)
	}
	return run(ctx, c, toStringPtrSlice, keysArgs([]interface{}{"HMGET", key}, fields)...)
}

// HSet sets the given fields and returns the number of fields added.
func (c cmdable) HSet(ctx context.Context, key string, values map[string]string) *IntCmd {
	if len(values) == 0 {
		return fail[int64](ctx, c, invalidArgument("HSET requires at least one field"), "HSET", key)
	}
	return run(ctx, c, toInt64, appendSortedMap([]interface{}{"HSET", key}, values)...)
}

// HMSet is the deprecated form of HSet.
func (c cmdable) HMSet(ctx context.Context, key string, values map[string]string) *BoolCmd {
	if len(values) == 0 {
		return fail[bool](ctx, c, invalidArgument("HMSET requires at least one field"), "HMSET", key)
	}
	return run(ctx, c, toBool, appendSortedMap([]interface{}{"HMSET", key}, values)...)
}

// HSetNX sets field only if it does not exist yet.
func (c cmdable) HSetNX(ctx context.Context, key, field, value string) *BoolCmd {
	return run(ctx, c, toBool, "HSETNX", key, field, value)
}

// HStrLen returns the length of the value of field.
func (c cmdable) HStrLen(ctx context.Context, key, field string) *IntCmd {
	return run(ctx, c, toInt64, "HSTRLEN", key, field)
}

// HVals returns the values of the hash.
func (c cmdable) HVals(ctx context.Context, key string) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "HVALS", key)
}

// HRandField returns up to count random fields. A negative count allows repetitions.
func (c cmdable) HRandField(ctx context.Context, key string, count int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "HRANDFIELD", key, count)
}

// HRandFieldWithValues returns up to count random fields together with their values.
func (c cmdable) HRandFieldWithValues(ctx context.Context, key string, count int64) *KeyValueSliceCmd {
	return run(ctx, c, toKeyValueSlice, "HRANDFIELD", key, count, "WITHVALUES")
}

// HScan iterates the fields of the hash.
func (c cmdable) HScan(ctx context.Context, key string, cursor uint64, arg *ScanArgument) *KeyValueScanCmd {
	if err := arg.Validate(); err != nil {
		return fail[ScanResult[KeyValue]](ctx, c, err, "HSCAN", key, cursor)
	}
	return run(ctx, c, toKeyValueScan, append([]interface{}{"HSCAN", key, cursor}, arg.Args()...)...)
}

func (c cmdable) hexpire(ctx context.Context, name, key string, value int64, option ExpireOption, fields []string) *IntSliceCmd {
	if err := requireFields(name, fields); err != nil {
		return fail[[]int64](ctx, c, err, name, key)
	}
	args := []interface{}{name, key, value}
	if option != "" {
		args = append(args, string(option))
	}
	return run(ctx, c, toInt64Slice, fieldsArgs(args, fields)...)
}

// HExpire sets a TTL on hash fields. Each reply entry is -2 (no such field),
// 0 (condition not met), 1 (set) or 2 (deleted). option may be empty.
func (c cmdable) HExpire(ctx context.Context, key string, expiration time.Duration, option ExpireOption, fields ...string) *IntSliceCmd {
	return c.hexpire(ctx, "HEXPIRE", key, formatSec(expiration), option, fields)
}

// HPExpire is HExpire with millisecond precision.
func (c cmdable) HPExpire(ctx context.Context, key string, expiration time.Duration, option ExpireOption, fields ...string) *IntSliceCmd {
	return c.hexpire(ctx, "HPEXPIRE", key, formatMs(expiration), option, fields)
}

// HExpireAt sets an absolute expiration time on fields.
func (c cmdable) HExpireAt(ctx context.Context, key string, tm time.Time, option ExpireOption, fields ...string) *IntSliceCmd {
	return c.hexpire(ctx, "HEXPIREAT", key, tm.Unix(), option, fields)
}

// HPExpireAt is HExpireAt with millisecond precision.
func (c cmdable) HPExpireAt(ctx context.Context, key string, tm time.Time, option ExpireOption, fields ...string) *IntSliceCmd {
	return c.hexpire(ctx, "HPEXPIREAT", key, tm.UnixMilli(), option, fields)
}

func (c cmdable) hfields(ctx context.Context, name, key string, fields []string) *IntSliceCmd {
	if err := requireFields(name, fields); err != nil {
		return fail[[]int64](ctx, c, err, name, key)
	}
	return run(ctx, c, toInt64Slice, fieldsArgs([]interface{}{name, key}, fields)...)
}

// HExpireTime returns the absolute Unix expiration time of each field in seconds.
func (c cmdable) HExpireTime(ctx context.Context, key string, fields ...string) *IntSliceCmd {
	return c.hfields(ctx, "HEXPIRETIME", key, fields)
}

// HPExpireTime returns the absolute expiration time of fields in milliseconds.
func (c cmdable) HPExpireTime(ctx context.Context, key string, fields ...string) *IntSliceCmd {
	return c.hfields(ctx, "HPEXPIRETIME", key, fields)
}

// HPersist removes the expiration of fields.
func (c cmdable) HPersist(ctx context.Context, key string, fields ...string) *IntSliceCmd {
	return c.hfields(ctx, "HPERSIST", key, fields)
}

// HTTL returns the remaining TTL of each field; -1 and -2 are kept as-is.
func (c cmdable) HTTL(ctx context.Context, key string, fields ...string) *DurationSliceCmd {
	if err := requireFields("HTTL", fields); err != nil {
		return fail[[]time.Duration](ctx, c, err, "HTTL", key)
	}
	return run(ctx, c, toDurationSlice(time.Second), fieldsArgs([]interface{}{"HTTL", key}, fields)...)
}

// HPTTL returns the remaining time to live of fields in milliseconds.
func (c cmdable) HPTTL(ctx context.Context, key string, fields ...string) *DurationSliceCmd {
	if err := requireFields("HPTTL", fields); err != nil {
		return fail[[]time.Duration](ctx, c, err, "HPTTL", key)
	}
	return run(ctx, c, toDurationSlice(time.Millisecond), fieldsArgs([]interface{}{"HPTTL", key}, fields)...)
}

// HGetDel returns and deletes the given fields.
func (c cmdable) HGetDel(ctx context.Context, key string, fields ...string) *StringPtrSliceCmd {
	if err := requireFields("HGETDEL", fields); err != nil {
		return fail[[]*string](ctx, c, err, "HGETDEL", key)
	}
	return run(ctx, c, toStringPtrSlice, fieldsArgs([]interface{}{"HGETDEL", key}, fields)...)
}

// HGetEx returns the given fields and optionally changes their expiration.
// KeepTTL is not supported.
func (c cmdable) HGetEx(ctx context.Context, key string, expiration Expiration, fields ...string) *StringPtrSliceCmd {
	if err := requireFields("HGETEX", fields); err != nil {
		return fail[[]*string](ctx, c, err, "HGETEX", key)
	}
	if err := expiration.validate(false, true); err != nil {
		return fail[[]*string](ctx, c, err, "HGETEX", key)
	}
	args := append([]interface{}{"HGETEX", key}, expiration.args()...)
	return run(ctx, c, toStringPtrSlice, fieldsArgs(args, fields)...)
}

// HSetEx sets fields with an optional condition and expiration. It reports
// whether the fields were set.
func (c cmdable) HSetEx(ctx context.Context, key string, arg *HSetExArgument, values map[string]string) *BoolCmd {
	if len(values) == 0 {
		return fail[bool](ctx, c, invalidArgument("HSETEX requires at least one field"), "HSETEX", key)
	}
	if err := arg.Validate(); err != nil {
		return fail[bool](ctx, c, err, "HSETEX", key)
	}
	args := append([]interface{}{"HSETEX", key}, arg.Args()...)
	args = append(args, "FIELDS", len(values))
	return run(ctx, c, toBool, appendSortedMap(args, values)...)
}
