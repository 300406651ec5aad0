package redis

import (
	"context"
	"time"
)

// Append appends value to the string and returns its new length.
func (c cmdable) Append(ctx context.Context, key, value string) *IntCmd {
	return run(ctx, c, toInt64, "APPEND", key, value)
}

// Get returns Nil when the key does not exist.
func (c cmdable) Get(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "GET", key)
}

// GetDel returns the value of key and deletes it.
func (c cmdable) GetDel(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "GETDEL", key)
}

// GetEx returns the value of key and optionally changes its expiration.
func (c cmdable) GetEx(ctx context.Context, key string, arg *GetExArgument) *StringCmd {
	if err := arg.Validate(); err != nil {
		return fail[string](ctx, c, err, "GETEX", key)
	}
	return run(ctx, c, toString, append([]interface{}{"GETEX", key}, arg.Args()...)...)
}

// GetRange returns the substring from start to end, both inclusive.
func (c cmdable) GetRange(ctx context.Context, key string, start, end int64) *StringCmd {
	return run(ctx, c, toString, "GETRANGE", key, start, end)
}

// GetSet sets key to value and returns the old value.
func (c cmdable) GetSet(ctx context.Context, key, value string) *StringCmd {
	return run(ctx, c, toString, "GETSET", key, value)
}

// Set stores value at key. A zero expiration stores the key without a TTL.
func (c cmdable) Set(ctx context.Context, key, value string, expiration time.Duration) *StatusCmd {
	if expiration < 0 {
		return fail[string](ctx, c, invalidArgument("negative expiration %s", expiration), "SET", key)
	}
	arg := &SetArgument{Expiration: Expiration{TTL: expiration}}
	return c.SetArgs(ctx, key, value, arg)
}

// SetArgs is SET with the full set of options. With NX or XX the command
// returns Nil when the condition is not met; with GET it returns the old value.
func (c cmdable) SetArgs(ctx context.Context, key, value string, arg *SetArgument) *StatusCmd {
	if err := arg.Validate(); err != nil {
		return fail[string](ctx, c, err, "SET", key)
	}
	args := append([]interface{}{"SET", key, value}, arg.Args()...)
	if arg != nil && arg.Get {
		return run(ctx, c, toString, args...)
	}
	return run(ctx, c, toStatus, args...)
}

// SetEx sets key with an expiration in seconds.
func (c cmdable) SetEx(ctx context.Context, key, value string, expiration time.Duration) *StatusCmd {
	return run(ctx, c, toStatus, "SETEX", key, formatSec(expiration), value)
}

// PSetEx sets key with an expiration in milliseconds.
func (c cmdable) PSetEx(ctx context.Context, key, value string, expiration time.Duration) *StatusCmd {
	return run(ctx, c, toStatus, "PSETEX", key, formatMs(expiration), value)
}

// SetNX sets key only if it does not exist. A non-zero expiration uses
// SET ... NX with a TTL.
func (c cmdable) SetNX(ctx context.Context, key, value string, expiration time.Duration) *BoolCmd {
	if expiration == 0 {
		return run(ctx, c, toBool, "SETNX", key, value)
	}
	return c.setCond(ctx, NX, key, value, expiration)
}

// SetXX sets key only if it already exists.
func (c cmdable) SetXX(ctx context.Context, key, value string, expiration time.Duration) *BoolCmd {
	return c.setCond(ctx, XX, key, value, expiration)
}

func (c cmdable) setCond(ctx context.Context, mode Condition, key, value string, expiration time.Duration) *BoolCmd {
	arg := &SetArgument{Mode: mode, Expiration: Expiration{TTL: expiration}}
	if err := arg.Validate(); err != nil {
		return fail[bool](ctx, c, err, "SET", key)
	}
	return run(ctx, c, toSetBool, append([]interface{}{"SET", key, value}, arg.Args()...)...)
}

// SetRange overwrites part of the string starting at offset.
func (c cmdable) SetRange(ctx context.Context, key string, offset int64, value string) *IntCmd {
	return run(ctx, c, toInt64, "SETRANGE", key, offset, value)
}

// StrLen returns the length of the string value.
func (c cmdable) StrLen(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "STRLEN", key)
}

// MGet returns one entry per key; missing keys are nil.
func (c cmdable) MGet(ctx context.Context, keys ...string) *StringPtrSliceCmd {
	if err := requireKeys("MGET", keys); err != nil {
		return fail[[]*string](ctx, c, err, "MGET")
	}
	return run(ctx, c, toStringPtrSlice, keysArgs([]interface{}{"MGET"}, keys)...)
}

// MSet sets all key/value pairs, sorted by key.
func (c cmdable) MSet(ctx context.Context, values map[string]string) *StatusCmd {
	if len(values) == 0 {
		return fail[string](ctx, c, invalidArgument("MSET requires at least one pair"), "MSET")
	}
	return run(ctx, c, toStatus, appendSortedMap([]interface{}{"MSET"}, values)...)
}

// MSetNX sets all pairs only if none of the keys exist.
func (c cmdable) MSetNX(ctx context.Context, values map[string]string) *BoolCmd {
	if len(values) == 0 {
		return fail[bool](ctx, c, invalidArgument("MSETNX requires at least one pair"), "MSETNX")
	}
	return run(ctx, c, toBool, appendSortedMap([]interface{}{"MSETNX"}, values)...)
}

// Incr increments the integer value of key by one.
func (c cmdable) Incr(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "INCR", key)
}

// IncrBy increments the integer value of key by value.
func (c cmdable) IncrBy(ctx context.Context, key string, value int64) *IntCmd {
	return run(ctx, c, toInt64, "INCRBY", key, value)
}

// IncrByFloat increments the float value of key by value.
func (c cmdable) IncrByFloat(ctx context.Context, key string, value float64) *FloatCmd {
	return run(ctx, c, toFloat64, "INCRBYFLOAT", key, formatFloat(value))
}

// Decr decrements the integer value of key by one.
func (c cmdable) Decr(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "DECR", key)
}

// DecrBy decrements the integer value of key by value.
func (c cmdable) DecrBy(ctx context.Context, key string, value int64) *IntCmd {
	return run(ctx, c, toInt64, "DECRBY", key, value)
}

// Lcs returns the longest common subsequence of the values at key1 and key2.
func (c cmdable) Lcs(ctx context.Context, key1, key2 string) *StringCmd {
	return run(ctx, c, toString, "LCS", key1, key2)
}

// LcsLen returns the length of the longest common subsequence.
func (c cmdable) LcsLen(ctx context.Context, key1, key2 string) *IntCmd {
	return run(ctx, c, toInt64, "LCS", key1, key2, "LEN")
}
