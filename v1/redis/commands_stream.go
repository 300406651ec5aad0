package redis

import (
	"context"
	"time"
)

// XAck acknowledges messages of a consumer group.
func (c cmdable) XAck(ctx context.Context, stream, group string, ids ...string) *IntCmd {
	if len(ids) == 0 {
		return fail[int64](ctx, c, invalidArgument("XACK requires at least one ID"), "XACK", stream)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"XACK", stream, group}, ids)...)
}

// XAdd appends an entry and returns its ID. With NoMkStream it returns Nil
// when the stream does not exist.
func (c cmdable) XAdd(ctx context.Context, stream string, arg *XAddArgument, values map[string]string) *StringCmd {
	if len(values) == 0 {
		return fail[string](ctx, c, invalidArgument("XADD requires at least one field"), "XADD", stream)
	}
	if err := arg.Validate(); err != nil {
		return fail[string](ctx, c, err, "XADD", stream)
	}
	args := append([]interface{}{"XADD", stream}, arg.Args()...)
	return run(ctx, c, toString, appendSortedMap(args, values)...)
}

func xautoclaimArgs(stream, group, consumer string, minIdle time.Duration, start string, count int64) []interface{} {
	if start == "" {
		start = "0-0"
	}
	args := []interface{}{"XAUTOCLAIM", stream, group, consumer, formatMs(minIdle), start}
	if count > 0 {
		args = append(args, "COUNT", count)
	}
	return args
}

// XAutoClaim transfers pending entries idle for at least minIdle to consumer.
func (c cmdable) XAutoClaim(ctx context.Context, stream, group, consumer string, minIdle time.Duration, start string, count int64) *XAutoClaimCmd {
	return run(ctx, c, toXAutoClaim, xautoclaimArgs(stream, group, consumer, minIdle, start, count)...)
}

// XAutoClaimJustID is XAutoClaim returning only message IDs.
func (c cmdable) XAutoClaimJustID(ctx context.Context, stream, group, consumer string, minIdle time.Duration, start string, count int64) *XAutoClaimJustIDCmd {
	args := xautoclaimArgs(stream, group, consumer, minIdle, start, count)
	return run(ctx, c, toXAutoClaimJustID, append(args, "JUSTID")...)
}

func xclaimArgs(stream, group, consumer string, minIdle time.Duration, ids []string) []interface{} {
	return keysArgs([]interface{}{"XCLAIM", stream, group, consumer, formatMs(minIdle)}, ids)
}

// XClaim changes the ownership of pending entries.
func (c cmdable) XClaim(ctx context.Context, stream, group, consumer string, minIdle time.Duration, arg *XClaimArgument, ids ...string) *XMessageSliceCmd {
	if len(ids) == 0 {
		return fail[[]XMessage](ctx, c, invalidArgument("XCLAIM requires at least one ID"), "XCLAIM", stream)
	}
	if err := arg.Validate(); err != nil {
		return fail[[]XMessage](ctx, c, err, "XCLAIM", stream)
	}
	args := xclaimArgs(stream, group, consumer, minIdle, ids)
	return run(ctx, c, toXMessages, append(args, arg.args(false)...)...)
}

// XClaimJustID is XClaim returning only message IDs.
func (c cmdable) XClaimJustID(ctx context.Context, stream, group, consumer string, minIdle time.Duration, arg *XClaimArgument, ids ...string) *StringSliceCmd {
	if len(ids) == 0 {
		return fail[[]string](ctx, c, invalidArgument("XCLAIM requires at least one ID"), "XCLAIM", stream)
	}
	if err := arg.Validate(); err != nil {
		return fail[[]string](ctx, c, err, "XCLAIM", stream)
	}
	args := xclaimArgs(stream, group, consumer, minIdle, ids)
	return run(ctx, c, toStringSliceOrEmpty, append(args, arg.args(true)...)...)
}

// XDel removes messages from the stream.
func (c cmdable) XDel(ctx context.Context, stream string, ids ...string) *IntCmd {
	if len(ids) == 0 {
		return fail[int64](ctx, c, invalidArgument("XDEL requires at least one ID"), "XDEL", stream)
	}
	return run(ctx, c, toInt64, keysArgs([]interface{}{"XDEL", stream}, ids)...)
}

// XGroupCreate creates a consumer group starting at start ("$" for new entries only).
func (c cmdable) XGroupCreate(ctx context.Context, stream, group, start string) *StatusCmd {
	return runAt(ctx, c, 2, toStatus, "XGROUP", "CREATE", stream, group, start)
}

// XGroupCreateMkStream is XGroupCreate that also creates an empty stream.
func (c cmdable) XGroupCreateMkStream(ctx context.Context, stream, group, start string) *StatusCmd {
	return runAt(ctx, c, 2, toStatus, "XGROUP", "CREATE", stream, group, start, "MKSTREAM")
}

// XGroupCreateConsumer creates a consumer in a group.
func (c cmdable) XGroupCreateConsumer(ctx context.Context, stream, group, consumer string) *BoolCmd {
	return runAt(ctx, c, 2, toBool, "XGROUP", "CREATECONSUMER", stream, group, consumer)
}

// XGroupDelConsumer deletes a consumer and returns the number of its pending entries.
func (c cmdable) XGroupDelConsumer(ctx context.Context, stream, group, consumer string) *IntCmd {
	return runAt(ctx, c, 2, toInt64, "XGROUP", "DELCONSUMER", stream, group, consumer)
}

// XGroupDestroy removes a consumer group.
func (c cmdable) XGroupDestroy(ctx context.Context, stream, group string) *BoolCmd {
	return runAt(ctx, c, 2, toBool, "XGROUP", "DESTROY", stream, group)
}

// XGroupSetID sets the last delivered ID of a group.
func (c cmdable) XGroupSetID(ctx context.Context, stream, group, start string) *StatusCmd {
	return runAt(ctx, c, 2, toStatus, "XGROUP", "SETID", stream, group, start)
}

// XInfoConsumers returns the consumers of a group.
func (c cmdable) XInfoConsumers(ctx context.Context, stream, group string) *XInfoConsumersCmd {
	return runAt(ctx, c, 2, toXInfoConsumers, "XINFO", "CONSUMERS", stream, group)
}

// XInfoGroups returns the consumer groups of the stream.
func (c cmdable) XInfoGroups(ctx context.Context, stream string) *XInfoGroupsCmd {
	return runAt(ctx, c, 2, toXInfoGroups, "XINFO", "GROUPS", stream)
}

// XInfoStream returns general information about the stream.
func (c cmdable) XInfoStream(ctx context.Context, stream string) *XInfoStreamCmd {
	return runAt(ctx, c, 2, toXInfoStream, "XINFO", "STREAM", stream)
}

// XLen returns the number of messages in the stream.
func (c cmdable) XLen(ctx context.Context, stream string) *IntCmd {
	return run(ctx, c, toInt64, "XLEN", stream)
}

// XPending returns the summary of the pending entries of group.
func (c cmdable) XPending(ctx context.Context, stream, group string) *XPendingCmd {
	return run(ctx, c, toXPending, "XPENDING", stream, group)
}

// XPendingExt returns the pending entries matching arg.
func (c cmdable) XPendingExt(ctx context.Context, stream, group string, arg *XPendingArgument) *XPendingExtCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]XPendingExt](ctx, c, err, "XPENDING", stream)
	}
	return run(ctx, c, toXPendingExt, append([]interface{}{"XPENDING", stream, group}, arg.Args()...)...)
}

// XRange returns the messages with IDs between start and end.
func (c cmdable) XRange(ctx context.Context, stream, start, end string) *XMessageSliceCmd {
	return run(ctx, c, toXMessages, "XRANGE", stream, start, end)
}

// XRangeN is XRange limited to count messages.
func (c cmdable) XRangeN(ctx context.Context, stream, start, end string, count int64) *XMessageSliceCmd {
	return run(ctx, c, toXMessages, "XRANGE", stream, start, end, "COUNT", count)
}

// XRevRange is XRange in reverse order, from end down to start.
func (c cmdable) XRevRange(ctx context.Context, stream, end, start string) *XMessageSliceCmd {
	return run(ctx, c, toXMessages, "XREVRANGE", stream, end, start)
}

// XRevRangeN is XRevRange limited to count messages.
func (c cmdable) XRevRangeN(ctx context.Context, stream, end, start string, count int64) *XMessageSliceCmd {
	return run(ctx, c, toXMessages, "XREVRANGE", stream, end, start, "COUNT", count)
}

// XRead reads entries after the given offsets. A read that blocked and timed
// out returns Nil. An empty offset ID reads only new entries ("$").
func (c cmdable) XRead(ctx context.Context, arg *XReadArgument, offsets ...StreamOffset) *XStreamSliceCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]XStream](ctx, c, err, "XREAD")
	}
	streams, err := streamsArgs(offsets)
	if err != nil {
		return fail[[]XStream](ctx, c, err, "XREAD")
	}
	args := append([]interface{}{"XREAD"}, arg.Args()...)
	args = append(args, streams...)
	return runAt(ctx, c, len(args)-2*len(offsets), toXStreams, args...)
}

// XReadGroup reads entries as consumer of group. Use ">" as offset ID to
// receive entries never delivered to other consumers.
func (c cmdable) XReadGroup(ctx context.Context, group, consumer string, arg *XReadGroupArgument, offsets ...StreamOffset) *XStreamSliceCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]XStream](ctx, c, err, "XREADGROUP")
	}
	offsets = append([]StreamOffset(nil), offsets...)
	for i := range offsets {
		if offsets[i].ID == "" {
			offsets[i].ID = ">"
		}
	}
	streams, err := streamsArgs(offsets)
	if err != nil {
		return fail[[]XStream](ctx, c, err, "XREADGROUP")
	}
	args := append([]interface{}{"XREADGROUP", "GROUP", group, consumer}, arg.Args()...)
	args = append(args, streams...)
	return runAt(ctx, c, len(args)-2*len(offsets), toXStreams, args...)
}

// XTrim trims the stream and returns the number of evicted entries.
func (c cmdable) XTrim(ctx context.Context, stream string, arg *XTrimArgument) *IntCmd {
	if arg == nil {
		return fail[int64](ctx, c, invalidArgument("XTRIM requires a trim argument"), "XTRIM", stream)
	}
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "XTRIM", stream)
	}
	return run(ctx, c, toInt64, append([]interface{}{"XTRIM", stream}, arg.Args()...)...)
}
