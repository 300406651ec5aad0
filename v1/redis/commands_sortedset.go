package redis

import (
	"context"
	"time"
)

func tuplesArgs(args []interface{}, members []Tuple) []interface{} {
	for _, m := range members {
		args = append(args, formatFloat(m.Score), m.Member)
	}
	return args
}

// BZMPop is the blocking variant of ZMPop. It returns Nil on timeout.
func (c cmdable) BZMPop(ctx context.Context, timeout time.Duration, side PopSide, count int64, keys ...string) *KeyTuplesCmd {
	if err := requireKeys("BZMPOP", keys); err != nil {
		return fail[KeyTuples](ctx, c, err, "BZMPOP")
	}
	args := keysArgs([]interface{}{"BZMPOP", timeoutSec(timeout), len(keys)}, keys)
	args = append(args, string(side))
	if count > 0 {
		args = append(args, "COUNT", count)
	}
	return runAt(ctx, c, 3, toKeyTuples, args...)
}

func (c cmdable) bzpop(ctx context.Context, name string, timeout time.Duration, keys []string) *KeyTupleCmd {
	if err := requireKeys(name, keys); err != nil {
		return fail[KeyTuple](ctx, c, err, name)
	}
	args := keysArgs([]interface{}{name}, keys)
	return run(ctx, c, toKeyTuple, append(args, timeoutSec(timeout))...)
}

// BZPopMax pops the highest scored member of the first non-empty set.
// It returns Nil on timeout.
func (c cmdable) BZPopMax(ctx context.Context, timeout time.Duration, keys ...string) *KeyTupleCmd {
	return c.bzpop(ctx, "BZPOPMAX", timeout, keys)
}

// BZPopMin is ZPopMin that blocks until a member is available in one of keys.
func (c cmdable) BZPopMin(ctx context.Context, timeout time.Duration, keys ...string) *KeyTupleCmd {
	return c.bzpop(ctx, "BZPOPMIN", timeout, keys)
}

// ZAdd adds members with their scores, updating the scores of existing members.
func (c cmdable) ZAdd(ctx context.Context, key string, members ...Tuple) *IntCmd {
	return c.ZAddArgs(ctx, key, nil, members...)
}

// ZAddArgs is ZADD with NX|XX, GT|LT and CH.
func (c cmdable) ZAddArgs(ctx context.Context, key string, arg *ZAddArgument, members ...Tuple) *IntCmd {
	if len(members) == 0 {
		return fail[int64](ctx, c, invalidArgument("ZADD requires at least one member"), "ZADD", key)
	}
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "ZADD", key)
	}
	args := append([]interface{}{"ZADD", key}, arg.Args()...)
	return run(ctx, c, toInt64, tuplesArgs(args, members)...)
}

// ZAddIncr is ZADD ... INCR. It returns the new score, or Nil when the
// condition in arg prevented the update.
func (c cmdable) ZAddIncr(ctx context.Context, key string, arg *ZAddArgument, member Tuple) *FloatCmd {
	if err := arg.Validate(); err != nil {
		return fail[float64](ctx, c, err, "ZADD", key)
	}
	args := append([]interface{}{"ZADD", key}, arg.Args()...)
	args = append(args, "INCR")
	return run(ctx, c, toFloat64, tuplesArgs(args, []Tuple{member})...)
}

// ZCard returns the number of members of the sorted set.
func (c cmdable) ZCard(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "ZCARD", key)
}

// ZCount counts members with a score between min and max, e.g. "(1" "+inf".
func (c cmdable) ZCount(ctx context.Context, key, min, max string) *IntCmd {
	return run(ctx, c, toInt64, "ZCOUNT", key, min, max)
}

func numKeysArgs(name string, keys []string) []interface{} {
	return keysArgs([]interface{}{name, len(keys)}, keys)
}

// ZDiff returns the members of the first sorted set that are in none of the others.
func (c cmdable) ZDiff(ctx context.Context, keys ...string) *StringSliceCmd {
	if err := requireKeys("ZDIFF", keys); err != nil {
		return fail[[]string](ctx, c, err, "ZDIFF")
	}
	return runAt(ctx, c, 2, toStringSliceOrEmpty, numKeysArgs("ZDIFF", keys)...)
}

// ZDiffWithScores is ZDiff returning scores.
func (c cmdable) ZDiffWithScores(ctx context.Context, keys ...string) *TupleSliceCmd {
	if err := requireKeys("ZDIFF", keys); err != nil {
		return fail[[]Tuple](ctx, c, err, "ZDIFF")
	}
	return runAt(ctx, c, 2, toTuples, append(numKeysArgs("ZDIFF", keys), "WITHSCORES")...)
}

// ZDiffStore stores the result of ZDiff in destination.
func (c cmdable) ZDiffStore(ctx context.Context, destination string, keys ...string) *IntCmd {
	if err := requireKeys("ZDIFFSTORE", keys); err != nil {
		return fail[int64](ctx, c, err, "ZDIFFSTORE", destination)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"ZDIFFSTORE", destination, len(keys)}, keys)...)
}

// ZIncrBy increments the score of member by increment.
func (c cmdable) ZIncrBy(ctx context.Context, key string, increment float64, member string) *FloatCmd {
	return run(ctx, c, toFloat64, "ZINCRBY", key, formatFloat(increment), member)
}

func zcombineArgs(name string, arg *ZStoreArgument, keys []string, withScores bool) ([]interface{}, error) {
	if err := requireKeys(name, keys); err != nil {
		return nil, err
	}
	if err := arg.validate(len(keys)); err != nil {
		return nil, err
	}
	args := append(numKeysArgs(name, keys), arg.Args()...)
	if withScores {
		args = append(args, "WITHSCORES")
	}
	return args, nil
}

// ZInter returns the intersection of the sorted sets.
func (c cmdable) ZInter(ctx context.Context, arg *ZStoreArgument, keys ...string) *StringSliceCmd {
	args, err := zcombineArgs("ZINTER", arg, keys, false)
	if err != nil {
		return fail[[]string](ctx, c, err, "ZINTER")
	}
	return runAt(ctx, c, 2, toStringSliceOrEmpty, args...)
}

// ZInterWithScores is ZInter returning scores.
func (c cmdable) ZInterWithScores(ctx context.Context, arg *ZStoreArgument, keys ...string) *TupleSliceCmd {
	args, err := zcombineArgs("ZINTER", arg, keys, true)
	if err != nil {
		return fail[[]Tuple](ctx, c, err, "ZINTER")
	}
	return runAt(ctx, c, 2, toTuples, args...)
}

// ZInterCard returns the cardinality of the intersection. A zero limit means
// no limit.
func (c cmdable) ZInterCard(ctx context.Context, limit int64, keys ...string) *IntCmd {
	if err := requireKeys("ZINTERCARD", keys); err != nil {
		return fail[int64](ctx, c, err, "ZINTERCARD")
	}
	args := numKeysArgs("ZINTERCARD", keys)
	if limit > 0 {
		args = append(args, "LIMIT", limit)
	}
	return runAt(ctx, c, 2, toInt64, args...)
}

// ZInterStore stores the intersection of the sorted sets in destination.
func (c cmdable) ZInterStore(ctx context.Context, destination string, arg *ZStoreArgument, keys ...string) *IntCmd {
	args, err := zcombineArgs("ZINTERSTORE", arg, keys, false)
	if err != nil {
		return fail[int64](ctx, c, err, "ZINTERSTORE", destination)
	}
	args = append([]interface{}{args[0], destination}, args[1:]...)
	return run(ctx, c, toInt64, args...)
}

// ZLexCount counts the members between min and max in lexicographical order.
func (c cmdable) ZLexCount(ctx context.Context, key, min, max string) *IntCmd {
	return run(ctx, c, toInt64, "ZLEXCOUNT", key, min, max)
}

// ZMPop pops up to count members from the first non-empty set, or returns Nil.
func (c cmdable) ZMPop(ctx context.Context, side PopSide, count int64, keys ...string) *KeyTuplesCmd {
	if err := requireKeys("ZMPOP", keys); err != nil {
		return fail[KeyTuples](ctx, c, err, "ZMPOP")
	}
	args := append(numKeysArgs("ZMPOP", keys), string(side))
	if count > 0 {
		args = append(args, "COUNT", count)
	}
	return runAt(ctx, c, 2, toKeyTuples, args...)
}

// ZMScore returns one score per member; missing members are nil.
func (c cmdable) ZMScore(ctx context.Context, key string, members ...string) *FloatPtrSliceCmd {
	if len(members) == 0 {
		return fail[[]*float64](ctx, c, invalidArgument("ZMSCORE requires at least one member"), "ZMSCORE", key)
	}
	return run(ctx, c, toFloatPtrSlice, keysArgs([]interface{}{"ZMSCORE", key}, members)...)
}

func (c cmdable) zpop(ctx context.Context, name, key string, count int64) *TupleSliceCmd {
	args := []interface{}{name, key}
	if count > 1 {
		args = append(args, count)
	}
	return run(ctx, c, toTuples, args...)
}

// ZPopMax pops up to count highest scored members. A count below two pops one.
func (c cmdable) ZPopMax(ctx context.Context, key string, count int64) *TupleSliceCmd {
	return c.zpop(ctx, "ZPOPMAX", key, count)
}

// ZPopMin removes and returns up to count members with the lowest scores.
func (c cmdable) ZPopMin(ctx context.Context, key string, count int64) *TupleSliceCmd {
	return c.zpop(ctx, "ZPOPMIN", key, count)
}

// ZRandMember returns up to count random members.
func (c cmdable) ZRandMember(ctx context.Context, key string, count int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "ZRANDMEMBER", key, count)
}

// ZRandMemberWithScores is ZRandMember returning scores.
func (c cmdable) ZRandMemberWithScores(ctx context.Context, key string, count int64) *TupleSliceCmd {
	return run(ctx, c, toTuples, "ZRANDMEMBER", key, count, "WITHSCORES")
}

// ZRange returns the members from start to stop by rank.
func (c cmdable) ZRange(ctx context.Context, key string, start, stop int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "ZRANGE", key, start, stop)
}

// ZRangeWithScores is ZRange returning scores.
func (c cmdable) ZRangeWithScores(ctx context.Context, key string, start, stop int64) *TupleSliceCmd {
	return run(ctx, c, toTuples, "ZRANGE", key, start, stop, "WITHSCORES")
}

// ZRangeArgs is the generic ZRANGE. start and stop are ranks, scores or lex
// bounds depending on arg.By.
func (c cmdable) ZRangeArgs(ctx context.Context, key, start, stop string, arg *ZRangeArgument) *StringSliceCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]string](ctx, c, err, "ZRANGE", key)
	}
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"ZRANGE", key, start, stop}, arg.Args()...)...)
}

// ZRangeArgsWithScores is ZRangeArgs returning scores.
func (c cmdable) ZRangeArgsWithScores(ctx context.Context, key, start, stop string, arg *ZRangeArgument) *TupleSliceCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]Tuple](ctx, c, err, "ZRANGE", key)
	}
	args := append([]interface{}{"ZRANGE", key, start, stop}, arg.Args()...)
	return run(ctx, c, toTuples, append(args, "WITHSCORES")...)
}

// ZRangeByScore returns the members with a score between min and max.
func (c cmdable) ZRangeByScore(ctx context.Context, key, min, max string, limit *Limit) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"ZRANGEBYSCORE", key, min, max}, limit.Args()...)...)
}

// ZRangeByLex returns the members between min and max in lexicographical order.
func (c cmdable) ZRangeByLex(ctx context.Context, key, min, max string, limit *Limit) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"ZRANGEBYLEX", key, min, max}, limit.Args()...)...)
}

// ZRangeStore stores the members of source from start to stop in destination.
func (c cmdable) ZRangeStore(ctx context.Context, destination, source, start, stop string, arg *ZRangeArgument) *IntCmd {
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "ZRANGESTORE", destination)
	}
	return run(ctx, c, toInt64, append([]interface{}{"ZRANGESTORE", destination, source, start, stop}, arg.Args()...)...)
}

// ZRank returns Nil when member is missing.
func (c cmdable) ZRank(ctx context.Context, key, member string) *IntCmd {
	return run(ctx, c, toInt64, "ZRANK", key, member)
}

// ZRem removes members from the sorted set.
func (c cmdable) ZRem(ctx context.Context, key string, members ...string) *IntCmd {
	if len(members) == 0 {
		return fail[int64](ctx, c, invalidArgument("ZREM requires at least one member"), "ZREM", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"ZREM", key}, members)...)
}

// ZRemRangeByLex removes the members between min and max in lexicographical order.
func (c cmdable) ZRemRangeByLex(ctx context.Context, key, min, max string) *IntCmd {
	return run(ctx, c, toInt64, "ZREMRANGEBYLEX", key, min, max)
}

// ZRemRangeByRank removes the members from start to stop by rank.
func (c cmdable) ZRemRangeByRank(ctx context.Context, key string, start, stop int64) *IntCmd {
	return run(ctx, c, toInt64, "ZREMRANGEBYRANK", key, start, stop)
}

// ZRemRangeByScore removes the members with a score between min and max.
func (c cmdable) ZRemRangeByScore(ctx context.Context, key, min, max string) *IntCmd {
	return run(ctx, c, toInt64, "ZREMRANGEBYSCORE", key, min, max)
}

// ZRevRange is ZRange ordered from the highest to the lowest score.
func (c cmdable) ZRevRange(ctx context.Context, key string, start, stop int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "ZREVRANGE", key, start, stop)
}

// ZRevRangeWithScores is ZRevRange returning scores.
func (c cmdable) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *TupleSliceCmd {
	return run(ctx, c, toTuples, "ZREVRANGE", key, start, stop, "WITHSCORES")
}

// ZRevRangeByScore is ZRangeByScore ordered from max to min.
func (c cmdable) ZRevRangeByScore(ctx context.Context, key, max, min string, limit *Limit) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"ZREVRANGEBYSCORE", key, max, min}, limit.Args()...)...)
}

// ZRevRangeByLex is ZRangeByLex ordered from max to min.
func (c cmdable) ZRevRangeByLex(ctx context.Context, key, max, min string, limit *Limit) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, append([]interface{}{"ZREVRANGEBYLEX", key, max, min}, limit.Args()...)...)
}

// ZRevRank returns the rank of member ordered from the highest score.
func (c cmdable) ZRevRank(ctx context.Context, key, member string) *IntCmd {
	return run(ctx, c, toInt64, "ZREVRANK", key, member)
}

// ZScan iterates the members and scores of the sorted set.
func (c cmdable) ZScan(ctx context.Context, key string, cursor uint64, arg *ScanArgument) *TupleScanCmd {
	if err := arg.Validate(); err != nil {
		return fail[ScanResult[Tuple]](ctx, c, err, "ZSCAN", key, cursor)
	}
	return run(ctx, c, toTupleScan, append([]interface{}{"ZSCAN", key, cursor}, arg.Args()...)...)
}

// ZScore returns Nil when member is missing.
func (c cmdable) ZScore(ctx context.Context, key, member string) *FloatCmd {
	return run(ctx, c, toFloat64, "ZSCORE", key, member)
}

// ZUnion returns the union of the sorted sets.
func (c cmdable) ZUnion(ctx context.Context, arg *ZStoreArgument, keys ...string) *StringSliceCmd {
	args, err := zcombineArgs("ZUNION", arg, keys, false)
	if err != nil {
		return fail[[]string](ctx, c, err, "ZUNION")
	}
	return runAt(ctx, c, 2, toStringSliceOrEmpty, args...)
}

// ZUnionWithScores is ZUnion returning scores.
func (c cmdable) ZUnionWithScores(ctx context.Context, arg *ZStoreArgument, keys ...string) *TupleSliceCmd {
	args, err := zcombineArgs("ZUNION", arg, keys, true)
	if err != nil {
		return fail[[]Tuple](ctx, c, err, "ZUNION")
	}
	return runAt(ctx, c, 2, toTuples, args...)
}

// ZUnionStore stores the union of the sorted sets in destination.
func (c cmdable) ZUnionStore(ctx context.Context, destination string, arg *ZStoreArgument, keys ...string) *IntCmd {
	args, err := zcombineArgs("ZUNIONSTORE", arg, keys, false)
	if err != nil {
		return fail[int64](ctx, c, err, "ZUNIONSTORE", destination)
	}
	args = append([]interface{}{args[0], destination}, args[1:]...)
	return run(ctx, c, toInt64, args...)
}
