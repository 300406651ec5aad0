package redis

import "context"

// SAdd adds members to the set and returns how many were new.
func (c cmdable) SAdd(ctx context.Context, key string, members ...string) *IntCmd {
	if len(members) == 0 {
		return fail[int64](ctx, c, invalidArgument("SADD requires at least one member"), "SADD", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"SADD", key}, members)...)
}

// SCard returns the number of members of the set.
func (c cmdable) SCard(ctx context.Context, key string) *IntCmd {
	return run(ctx, c, toInt64, "SCARD", key)
}

// SDiff returns the members of the first set that are in none of the others.
func (c cmdable) SDiff(ctx context.Context, keys ...string) *StringSliceCmd {
	if err := requireKeys("SDIFF", keys); err != nil {
		return fail[[]string](ctx, c, err, "SDIFF")
	}
	return run(ctx, c, toStringSliceOrEmpty, keysArgs([]interface{}{"SDIFF"}, keys)...)
}

// SDiffStore stores the result of SDiff in destination.
func (c cmdable) SDiffStore(ctx context.Context, destination string, keys ...string) *IntCmd {
	if err := requireKeys("SDIFFSTORE", keys); err != nil {
		return fail[int64](ctx, c, err, "SDIFFSTORE", destination)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"SDIFFSTORE", destination}, keys)...)
}

// SInter returns the members present in every set.
func (c cmdable) SInter(ctx context.Context, keys ...string) *StringSliceCmd {
	if err := requireKeys("SINTER", keys); err != nil {
		return fail[[]string](ctx, c, err, "SINTER")
	}
	return run(ctx, c, toStringSliceOrEmpty, keysArgs([]interface{}{"SINTER"}, keys)...)
}

// SInterCard returns the cardinality of the intersection. A zero limit means
// no limit.
func (c cmdable) SInterCard(ctx context.Context, limit int64, keys ...string) *IntCmd {
	if err := requireKeys("SINTERCARD", keys); err != nil {
		return fail[int64](ctx, c, err, "SINTERCARD")
	}
	args := keysArgs([]interface{}{"SINTERCARD", len(keys)}, keys)
	if limit > 0 {
		args = append(args, "LIMIT", limit)
	}
	return runAt(ctx, c, 2, toInt64, args...)
}

// SInterStore stores the result of SInter in destination.
func (c cmdable) SInterStore(ctx context.Context, destination string, keys ...string) *IntCmd {
	if err := requireKeys("SINTERSTORE", keys); err != nil {
		return fail[int64](ctx, c, err, "SINTERSTORE", destination)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"SINTERSTORE", destination}, keys)...)
}

// SIsMember reports whether member belongs to the set.
func (c cmdable) SIsMember(ctx context.Context, key, member string) *BoolCmd {
	return run(ctx, c, toBool, "SISMEMBER", key, member)
}

// SMembers returns all members of the set.
func (c cmdable) SMembers(ctx context.Context, key string) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "SMEMBERS", key)
}

// SMIsMember reports for each member whether it belongs to the set.
func (c cmdable) SMIsMember(ctx context.Context, key string, members ...string) *BoolSliceCmd {
	if len(members) == 0 {
		return fail[[]bool](ctx, c, invalidArgument("SMISMEMBER requires at least one member"), "SMISMEMBER", key)
	}
	return run(ctx, c, toBoolSlice, keysArgs([]interface{}{"SMISMEMBER", key}, members)...)
}

// SMove moves member from source to destination.
func (c cmdable) SMove(ctx context.Context, source, destination, member string) *BoolCmd {
	return run(ctx, c, toBool, "SMOVE", source, destination, member)
}

// SPop removes and returns a random member.
func (c cmdable) SPop(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "SPOP", key)
}

// SPopN removes and returns up to count random members.
func (c cmdable) SPopN(ctx context.Context, key string, count int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "SPOP", key, count)
}

// SRandMember returns a random member without removing it.
func (c cmdable) SRandMember(ctx context.Context, key string) *StringCmd {
	return run(ctx, c, toString, "SRANDMEMBER", key)
}

// SRandMemberN returns up to count members. A negative count allows repetitions.
func (c cmdable) SRandMemberN(ctx context.Context, key string, count int64) *StringSliceCmd {
	return run(ctx, c, toStringSliceOrEmpty, "SRANDMEMBER", key, count)
}

// SRem removes members from the set.
func (c cmdable) SRem(ctx context.Context, key string, members ...string) *IntCmd {
	if len(members) == 0 {
		return fail[int64](ctx, c, invalidArgument("SREM requires at least one member"), "SREM", key)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"SREM", key}, members)...)
}

// SScan iterates the members of the set.
func (c cmdable) SScan(ctx context.Context, key string, cursor uint64, arg *ScanArgument) *ScanCmd {
	if err := arg.Validate(); err != nil {
		return fail[ScanResult[string]](ctx, c, err, "SSCAN", key, cursor)
	}
	return run(ctx, c, toScan, append([]interface{}{"SSCAN", key, cursor}, arg.Args()...)...)
}

// SUnion returns the members of all given sets.
func (c cmdable) SUnion(ctx context.Context, keys ...string) *StringSliceCmd {
	if err := requireKeys("SUNION", keys); err != nil {
		return fail[[]string](ctx, c, err, "SUNION")
	}
	return run(ctx, c, toStringSliceOrEmpty, keysArgs([]interface{}{"SUNION"}, keys)...)
}

// SUnionStore stores the result of SUnion in destination.
func (c cmdable) SUnionStore(ctx context.Context, destination string, keys ...string) *IntCmd {
	if err := requireKeys("SUNIONSTORE", keys); err != nil {
		return fail[int64](ctx, c, err, "SUNIONSTORE", destination)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"SUNIONSTORE", destination}, keys)...)
}
