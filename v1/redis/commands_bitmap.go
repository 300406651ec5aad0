package redis

import "context"

// SetBit sets the bit at offset to value and returns the previous bit.
func (c cmdable) SetBit(ctx context.Context, key string, offset int64, value int) *IntCmd {
	if value != 0 && value != 1 {
		return fail[int64](ctx, c, invalidArgument("bit value must be 0 or 1, got %d", value), "SETBIT", key)
	}
	return run(ctx, c, toInt64, "SETBIT", key, offset, value)
}

// GetBit returns the bit at offset.
func (c cmdable) GetBit(ctx context.Context, key string, offset int64) *IntCmd {
	return run(ctx, c, toInt64, "GETBIT", key, offset)
}

// BitCount counts set bits, optionally within a range.
func (c cmdable) BitCount(ctx context.Context, key string, arg *BitCountArgument) *IntCmd {
	return run(ctx, c, toInt64, append([]interface{}{"BITCOUNT", key}, arg.Args()...)...)
}

// BitField runs a chain of BITFIELD subcommands. Entries are nil for
// operations that failed with OVERFLOW FAIL.
func (c cmdable) BitField(ctx context.Context, key string, arg *BitFieldArgument) *IntPtrSliceCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]*int64](ctx, c, err, "BITFIELD", key)
	}
	return run(ctx, c, toIntPtrSlice, append([]interface{}{"BITFIELD", key}, arg.Args()...)...)
}

// BitFieldRO is the read-only variant of BitField and only accepts GET.
func (c cmdable) BitFieldRO(ctx context.Context, key string, arg *BitFieldArgument) *IntPtrSliceCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]*int64](ctx, c, err, "BITFIELD_RO", key)
	}
	if !arg.readOnly() {
		return fail[[]*int64](ctx, c, invalidArgument("BITFIELD_RO only supports GET"), "BITFIELD_RO", key)
	}
	return run(ctx, c, toIntPtrSlice, append([]interface{}{"BITFIELD_RO", key}, arg.Args()...)...)
}

// BitOp stores the result of a bitwise operation between keys in destKey.
func (c cmdable) BitOp(ctx context.Context, op BitOperation, destKey string, keys ...string) *IntCmd {
	if err := requireKeys("BITOP", keys); err != nil {
		return fail[int64](ctx, c, err, "BITOP", string(op), destKey)
	}
	switch op {
	case BitNot:
		if len(keys) != 1 {
			return fail[int64](ctx, c, invalidArgument("BITOP NOT takes exactly one key"), "BITOP", string(op), destKey)
		}
	case BitDiff, BitDiff1, BitAndOr:
		if len(keys) < 2 {
			return fail[int64](ctx, c, invalidArgument("BITOP %s takes at least two keys", op), "BITOP", string(op), destKey)
		}
	}
	return runAt(ctx, c, 2, toInt64, keysArgs([]interface{}{"BITOP", string(op), destKey}, keys)...)
}

// BitPos returns the position of the first bit set to bit.
func (c cmdable) BitPos(ctx context.Context, key string, bit int64, arg *BitPosArgument) *IntCmd {
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "BITPOS", key)
	}
	return run(ctx, c, toInt64, append([]interface{}{"BITPOS", key, bit}, arg.Args()...)...)
}
