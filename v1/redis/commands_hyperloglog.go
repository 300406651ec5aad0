package redis

import "context"

// PFAdd adds elements to a HyperLogLog and reports whether its estimate changed.
func (c cmdable) PFAdd(ctx context.Context, key string, elements ...string) *BoolCmd {
	return run(ctx, c, toBool, keysArgs([]interface{}{"PFADD", key}, elements)...)
}

// PFCount returns the approximated cardinality of the union of the keys.
func (c cmdable) PFCount(ctx context.Context, keys ...string) *IntCmd {
	if err := requireKeys("PFCOUNT", keys); err != nil {
		return fail[int64](ctx, c, err, "PFCOUNT")
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"PFCOUNT"}, keys)...)
}

// PFMerge merges the HyperLogLogs of keys into destination.
func (c cmdable) PFMerge(ctx context.Context, destination string, keys ...string) *StatusCmd {
	return run(ctx, c, toStatus, keysArgs([]interface{}{"PFMERGE", destination}, keys)...)
}
