package redis

import (
	"context"
	"time"
)

// BLMove is the blocking variant of LMove. It returns Nil on timeout.
func (c cmdable) BLMove(ctx context.Context, source, destination string, srcPos, destPos ListDirection, timeout time.Duration) *StringCmd {
	return run(ctx, c, toString, "BLMOVE", source, destination, string(srcPos), string(destPos), timeoutSec(timeout))
}

// BLMPop pops up to count elements from the first non-empty list. It returns
// Nil on timeout.
func (c cmdable) BLMPop(ctx context.Context, timeout time.Duration, direction ListDirection, count int64, keys ...string) *KeyValuesCmd {
	if err := requireKeys("BLMPOP", keys); err != nil {
		return fail[KeyValues](ctx, c, err, "BLMPOP")
	}
	args := keysArgs([]interface{}{"BLMPOP", timeoutSec(timeout), len(keys)}, keys)
	args = append(args, string(direction))
	if count > 0 {
		args = append(args, "COUNT", count)
	}
	return runAt(ctx, c, 3, toKeyValues, args...)
}

// BLPop returns the key and the popped element, or Nil on timeout.
func (c cmdable) BLPop(ctx context.Context, timeout time.Duration, keys ...string) *StringSliceCmd {
	if err := requireKeys("BLPOP", keys); err != nil {
		return fail[[]string](ctx, c, err, "BLPOP")
	}
	args := keysArgs([]interface{}{"BLPOP"}, keys)
	return run(ctx, c, toStringSlice, append(args, timeoutSec(timeout))...)
}

// BRPop is RPop that blocks until an element is available or timeout elapses.
func (c cmdable) BRPop(ctx context.Context, timeout time.Duration, keys ...string) *StringSliceCmd {
	if err := requireKeys("BRPOP", keys); err != nil {
		return fail[[]string](ctx, c, err, "BRPOP")
	}
	args := keysArgs([]interface{}{"BRPOP"}, keys)
	return run(ctx, c, toStringSlice, append(args, timeoutSec(timeout))...)
}

// BRPopLPush is RPopLPush that blocks until an element is available.
func (c cmdable) BRPopLPush(ctx context.Context, source, destination string, timeout time.Duration) *StringCmd {
	return run(ctx, c, toString, "BRPOPLPUSH", source, destination, timeoutSec(timeout))
}

// LIndex returns the element at index.
func (c cmdable) LIndex(ctx context.Context, key string, index int64) *StringCmd {
	return run(ctx, c, toString, "LINDEX", key, index)
}

// LInsert inserts value before or after pivot. It returns -1 when pivot is missing.
func (c cmdable) LInsert(ctx context.Context, key string, position InsertPosition, pivot, value string) *IntCmd {
	return run(ctx, c, toInt64, "LINSERT", key, string(position), pivot, value)
}

// LLen returns the length of the list.
func (c cmdable) LLen(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "LLEN", key)
}

// LMove atomically pops an element from source and pushes it to destination.
func (c cmdable) LMove(ctx context.Context, source, destination string, srcPos, destPos ListDirection) *StringCmd {
	return run(ctx, c, toString, "LMOVE", source, destination, string(srcPos), string(destPos))
}

// LMPop pops up to count elements from the first non-empty list, or returns
// Nil when all lists are empty.
func (c cmdable) LMPop(ctx context.Context, direction ListDirection, count int64, keys ...string) *KeyValuesCmd {
	if err := requireKeys("LMPOP", keys); err != nil {
		return fail[KeyValues](ctx, c, err, "LMPOP")
	}
	args := keysArgs([]interface{}{"LMPOP", len(keys)}, keys)
	args = append(args, string(direction))
	if count > 0 {
		args = append(args, "COUNT", count)
	}
	return runAt(ctx, c, 2, toKeyValues, args...)
}

// LPop removes and returns the first element of the list.
func (c cmdable) LPop(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "LPOP", key)
}

// LPopCount removes and returns up to count elements from the head of the list.
func (c cmdable) LPopCount(ctx context.Context, key string, count int) *StringSliceCmd {
	return run(ctx, c, toStringSlice, "LPOP", key, count)
}

// LPos returns the index of the first matching element, or Nil.
func (c cmdable) LPos(ctx context.Context, key, element string, arg *LPosArgument) *IntCmd {
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "LPOS", key)
	}
	return run(ctx, c, toInt64, append([]interface{}{"LPOS", key, element}, arg.Args()...)...)
}

// LPosCount returns the indexes of up to count matches; zero returns all.
func (c cmdable) LPosCount(ctx context.Context, key, element string, count int64, arg *LPosArgument) *IntSliceCmd {
	if count < 0 {
		return fail[[]int64](ctx, c, invalidArgument("LPOS count %d is negative", count), "LPOS", key)
	}
	if err := arg.Validate(); err != nil {
		return fail[[]int64](ctx, c, err, "LPOS", key)
	}
	return run(ctx, c, toInt64Slice, append([]interface{}{"LPOS", key, element}, arg.args(&count)...)...)
}

// LPush prepends values to the list and returns its new length.
func (c cmdable) LPush(ctx context.Context, key string, values ...string) *IntCmd {
	if len(values) == 0 {
		return fail[int64](ctx, c, invalidArgument("LPUSH requires at least one value"), "LPUSH", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"LPUSH", key}, values)...)
}

// LPushX is LPush that only acts on an existing list.
func (c cmdable) LPushX(ctx context.Context, key string, values ...string) *IntCmd {
	if len(values) == 0 {
		return fail[int64](ctx, c, invalidArgument("LPUSHX requires at least one value"), "LPUSHX", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"LPUSHX", key}, values)...)
}

// LRange returns the elements from start to stop, both inclusive.
func (c cmdable) LRange(ctx context.Context, key string, start, stop int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "LRANGE", key, start, stop)
}

// LRem removes count occurrences of value.
func (c cmdable) LRem(ctx context.Context, key string, count int64, value string) *IntCmd {
	return run(ctx, c, toInt64, "LREM", key, count, value)
}

// LSet replaces the element at index.
func (c cmdable) LSet(ctx context.Context, key string, index int64, value string) *StatusCmd {
	return run(ctx, c, toStatus, "LSET", key, index, value)
}

// LTrim trims the list to the range from start to stop.
func (c cmdable) LTrim(ctx context.Context, key string, start, stop int64) *StatusCmd {
	return run(ctx, c, toStatus, "LTRIM", key, start, stop)
}

// RPop removes and returns the last element of the list.
func (c cmdable) RPop(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "RPOP", key)
}

// RPopCount removes and returns up to count elements from the tail of the list.
func (c cmdable) RPopCount(ctx context.Context, key string, count int) *StringSliceCmd {
	return run(ctx, c, toStringSlice, "RPOP", key, count)
}

// RPopLPush pops the last element of source and pushes it to the head of destination.
func (c cmdable) RPopLPush(ctx context.Context, source, destination string) *StringCmd {
	return run(ctx, c, toString, "RPOPLPUSH", source, destination)
}

// RPush appends values to the list and returns its new length.
func (c cmdable) RPush(ctx context.Context, key string, values ...string) *IntCmd {
	if len(values) == 0 {
		return fail[int64](ctx, c, invalidArgument("RPUSH requires at least one value"), "RPUSH", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"RPUSH", key}, values)...)
}

// RPushX is RPush that only acts on an existing list.
func (c cmdable) RPushX(ctx context.Context, key string, values ...string) *IntCmd {
	if len(values) == 0 {
		return fail[int64](ctx, c, invalidArgument("RPUSHX requires at least one value"), "RPUSHX", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"RPUSHX", key}, values)...)
}
