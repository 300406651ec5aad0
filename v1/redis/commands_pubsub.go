package redis

import "context"

// Publish posts message to channel and returns the number of receivers.
func (c cmdable) Publish(ctx context.Context, channel string, message interface{}) *IntCmd {
	return runNoKey(ctx, c, toInt64, "PUBLISH", channel, message)
}

// SPublish posts message to a shard channel. In cluster mode it is routed
// like a key to the node owning the channel's slot.
func (c cmdable) SPublish(ctx context.Context, shardChannel string, message interface{}) *IntCmd {
	return run(ctx, c, toInt64, "SPUBLISH", shardChannel, message)
}

// PubSubChannels lists the active channels matching pattern, or all when
// pattern is empty.
func (c cmdable) PubSubChannels(ctx context.Context, pattern string) *StringSliceCmd {
	args := []interface{}{"PUBSUB", "CHANNELS"}
	if pattern != "" {
		args = append(args, pattern)
	}
	return runNoKey(ctx, c, toStringSliceOrEmpty, args...)
}

// PubSubNumSub returns the number of subscribers of each channel.
func (c cmdable) PubSubNumSub(ctx context.Context, channels ...string) *StringIntMapCmd {
	return runNoKey(ctx, c, toStringIntMap, appendStrings([]interface{}{"PUBSUB", "NUMSUB"}, channels)...)
}

// PubSubNumPat returns the number of pattern subscriptions.
func (c cmdable) PubSubNumPat(ctx context.Context) *IntCmd {
	return runNoKey(ctx, c, toInt64, "PUBSUB", "NUMPAT")
}

// PubSubShardChannels lists the active shard channels matching pattern.
func (c cmdable) PubSubShardChannels(ctx context.Context, pattern string) *StringSliceCmd {
	args := []interface{}{"PUBSUB", "SHARDCHANNELS"}
	if pattern != "" {
		args = append(args, pattern)
	}
	return runNoKey(ctx, c, toStringSliceOrEmpty, args...)
}

// PubSubShardNumSub returns the number of subscribers of each shard channel.
func (c cmdable) PubSubShardNumSub(ctx context.Context, channels ...string) *StringIntMapCmd {
	return runNoKey(ctx, c, toStringIntMap, appendStrings([]interface{}{"PUBSUB", "SHARDNUMSUB"}, channels)...)
}
