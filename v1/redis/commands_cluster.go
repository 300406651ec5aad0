package redis

import "context"

func slotsArgs(args []interface{}, slots []int) []interface{} {
	for _, s := range slots {
		args = append(args, s)
	}
	return args
}

// ClusterAddSlots assigns slots to the receiving node.
func (c cmdable) ClusterAddSlots(ctx context.Context, slots ...int) *StatusCmd {
	if len(slots) == 0 {
		return fail[string](ctx, c, invalidArgument("CLUSTER ADDSLOTS requires at least one slot"), "CLUSTER", "ADDSLOTS")
	}
	return runNoKey(ctx, c, toStatus, slotsArgs([]interface{}{"CLUSTER", "ADDSLOTS"}, slots)...)
}

// ClusterAddSlotsRange assigns the slots from min to max to the receiving node.
func (c cmdable) ClusterAddSlotsRange(ctx context.Context, min, max int) *StatusCmd {
	if min > max {
		return fail[string](ctx, c, invalidArgument("slot range %d-%d is empty", min, max), "CLUSTER", "ADDSLOTSRANGE")
	}
	return runNoKey(ctx, c, toStatus, "CLUSTER", "ADDSLOTSRANGE", min, max)
}

// ClusterBumpEpoch replies "BUMPED <epoch>" or "STILL <epoch>".
func (c cmdable) ClusterBumpEpoch(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "CLUSTER", "BUMPEPOCH")
}

// ClusterCountFailureReports returns the number of active failure reports for nodeID.
func (c cmdable) ClusterCountFailureReports(ctx context.Context, nodeID string) *IntCmd {
	return runNoKey(ctx, c, toInt64, "CLUSTER", "COUNT-FAILURE-REPORTS", nodeID)
}

// ClusterCountKeysInSlot returns the number of keys stored in slot.
func (c cmdable) ClusterCountKeysInSlot(ctx context.Context, slot int) *IntCmd {
	return runNoKey(ctx, c, toInt64, "CLUSTER", "COUNTKEYSINSLOT", slot)
}

// ClusterDelSlots removes slots from the receiving node.
func (c cmdable) ClusterDelSlots(ctx context.Context, slots ...int) *StatusCmd {
	if len(slots) == 0 {
		return fail[string](ctx, c, invalidArgument("CLUSTER DELSLOTS requires at least one slot"), "CLUSTER", "DELSLOTS")
	}
	return runNoKey(ctx, c, toStatus, slotsArgs([]interface{}{"CLUSTER", "DELSLOTS"}, slots)...)
}

// ClusterDelSlotsRange removes the slots from min to max from the receiving node.
func (c cmdable) ClusterDelSlotsRange(ctx context.Context, min, max int) *StatusCmd {
	if min > max {
		return fail[string](ctx, c, invalidArgument("slot range %d-%d is empty", min, max), "CLUSTER", "DELSLOTSRANGE")
	}
	return runNoKey(ctx, c, toStatus, "CLUSTER", "DELSLOTSRANGE", min, max)
}

// ClusterFailover starts a manual failover on a replica. An empty mode
// performs the coordinated default.
func (c cmdable) ClusterFailover(ctx context.Context, mode FailoverArgument) *StatusCmd {
	args := []interface{}{"CLUSTER", "FAILOVER"}
	if mode != "" {
		args = append(args, string(mode))
	}
	return runNoKey(ctx, c, toStatus, args...)
}

// ClusterFlushSlots removes every slot from the receiving node.
func (c cmdable) ClusterFlushSlots(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLUSTER", "FLUSHSLOTS")
}

// ClusterForget removes nodeID from the node table of the receiving node.
func (c cmdable) ClusterForget(ctx context.Context, nodeID string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLUSTER", "FORGET", nodeID)
}

// ClusterGetKeysInSlot returns up to count keys stored in slot.
func (c cmdable) ClusterGetKeysInSlot(ctx context.Context, slot, count int) *StringSliceCmd {
	return runNoKey(ctx, c, toStringSliceOrEmpty, "CLUSTER", "GETKEYSINSLOT", slot, count)
}

// ClusterInfo returns the fields of CLUSTER INFO, e.g. "cluster_state".
func (c cmdable) ClusterInfo(ctx context.Context) *StringMapCmd {
	return runNoKey(ctx, c, toLineMap, "CLUSTER", "INFO")
}

// ClusterKeySlot returns the hash slot of key as computed by the server.
func (c cmdable) ClusterKeySlot(ctx context.Context, key string) *IntCmd {
	return runAt(ctx, c, 2, toInt64, "CLUSTER", "KEYSLOT", key)
}

// ClusterLinks returns the cluster bus links of the receiving node.
func (c cmdable) ClusterLinks(ctx context.Context) *ClusterLinksCmd {
	return runNoKey(ctx, c, toClusterLinks, "CLUSTER", "LINKS")
}

// ClusterMeet connects the receiving node to the node at host and port.
func (c cmdable) ClusterMeet(ctx context.Context, host string, port int) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLUSTER", "MEET", host, port)
}

// ClusterMyID returns the node ID of the receiving node.
func (c cmdable) ClusterMyID(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "CLUSTER", "MYID")
}

// ClusterMyShardID returns the shard ID of the receiving node.
func (c cmdable) ClusterMyShardID(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "CLUSTER", "MYSHARDID")
}

// ClusterNodes returns the parsed node table of the node that served the call.
func (c cmdable) ClusterNodes(ctx context.Context) *ClusterNodesCmd {
	return runNoKey(ctx, c, toClusterNodes, "CLUSTER", "NODES")
}

// ClusterReplicas returns the replicas of nodeID.
func (c cmdable) ClusterReplicas(ctx context.Context, nodeID string) *ClusterNodesCmd {
	return runNoKey(ctx, c, toClusterNodes, "CLUSTER", "REPLICAS", nodeID)
}

// ClusterReplicate turns the receiving node into a replica of nodeID.
func (c cmdable) ClusterReplicate(ctx context.Context, nodeID string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLUSTER", "REPLICATE", nodeID)
}

// ClusterReset resets the node; an empty mode is a soft reset.
func (c cmdable) ClusterReset(ctx context.Context, mode ClusterResetMode) *StatusCmd {
	args := []interface{}{"CLUSTER", "RESET"}
	if mode != "" {
		args = append(args, string(mode))
	}
	return runNoKey(ctx, c, toStatus, args...)
}

// ClusterSaveConfig forces the node to save the cluster configuration to disk.
func (c cmdable) ClusterSaveConfig(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLUSTER", "SAVECONFIG")
}

// ClusterSetConfigEpoch sets the config epoch of a new node.
func (c cmdable) ClusterSetConfigEpoch(ctx context.Context, epoch int64) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLUSTER", "SET-CONFIG-EPOCH", epoch)
}

// ClusterSetSlot changes the state of slot, e.g. to MIGRATING or NODE.
func (c cmdable) ClusterSetSlot(ctx context.Context, slot int, arg *ClusterSetSlotArgument) *StatusCmd {
	if err := arg.Validate(); err != nil {
		return fail[string](ctx, c, err, "CLUSTER", "SETSLOT", slot)
	}
	return runNoKey(ctx, c, toStatus, append([]interface{}{"CLUSTER", "SETSLOT", slot}, arg.Args()...)...)
}

// ClusterShards returns the shards of the cluster with their slots and nodes.
func (c cmdable) ClusterShards(ctx context.Context) *ClusterShardsCmd {
	return runNoKey(ctx, c, toClusterShards, "CLUSTER", "SHARDS")
}

// ClusterSlots returns the slot ranges of the cluster and the nodes serving them.
func (c cmdable) ClusterSlots(ctx context.Context) *ClusterSlotsCmd {
	return runNoKey(ctx, c, toClusterSlots, "CLUSTER", "SLOTS")
}

// ReadOnly enables reads from a replica on the connection that runs it.
func (c cmdable) ReadOnly(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "READONLY")
}

// ReadWrite disables reads from replicas for the connection.
func (c cmdable) ReadWrite(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "READWRITE")
}
