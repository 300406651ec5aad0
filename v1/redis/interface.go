package redis

import (
	"context"
	"time"
)

// StringCmdable covers commands on string values.
type StringCmdable interface {
	Append(ctx context.Context, key, value string) *IntCmd
	Get(ctx context.Context, key string) *StringCmd
	GetDel(ctx context.Context, key string) *StringCmd
	GetEx(ctx context.Context, key string, arg *GetExArgument) *StringCmd
	GetRange(ctx context.Context, key string, start, end int64) *StringCmd
	GetSet(ctx context.Context, key, value string) *StringCmd
	Set(ctx context.Context, key, value string, expiration time.Duration) *StatusCmd
	SetArgs(ctx context.Context, key, value string, arg *SetArgument) *StatusCmd
	SetEx(ctx context.Context, key, value string, expiration time.Duration) *StatusCmd
	PSetEx(ctx context.Context, key, value string, expiration time.Duration) *StatusCmd
	SetNX(ctx context.Context, key, value string, expiration time.Duration) *BoolCmd
	SetXX(ctx context.Context, key, value string, expiration time.Duration) *BoolCmd
	SetRange(ctx context.Context, key string, offset int64, value string) *IntCmd
	StrLen(ctx context.Context, key string) *IntCmd
	MGet(ctx context.Context, keys ...string) *StringPtrSliceCmd
	MSet(ctx context.Context, values map[string]string) *StatusCmd
	MSetNX(ctx context.Context, values map[string]string) *BoolCmd
	Incr(ctx context.Context, key string) *IntCmd
	IncrBy(ctx context.Context, key string, value int64) *IntCmd
	IncrByFloat(ctx context.Context, key string, value float64) *FloatCmd
	Decr(ctx context.Context, key string) *IntCmd
	DecrBy(ctx context.Context, key string, value int64) *IntCmd
	Lcs(ctx context.Context, key1, key2 string) *StringCmd
	LcsLen(ctx context.Context, key1, key2 string) *IntCmd
}

// BitmapCmdable covers bit level string commands.
type BitmapCmdable interface {
	SetBit(ctx context.Context, key string, offset int64, value int) *IntCmd
	GetBit(ctx context.Context, key string, offset int64) *IntCmd
	BitCount(ctx context.Context, key string, arg *BitCountArgument) *IntCmd
	BitField(ctx context.Context, key string, arg *BitFieldArgument) *IntPtrSliceCmd
	BitFieldRO(ctx context.Context, key string, arg *BitFieldArgument) *IntPtrSliceCmd
	BitOp(ctx context.Context, op BitOperation, destKey string, keys ...string) *IntCmd
	BitPos(ctx context.Context, key string, bit int64, arg *BitPosArgument) *IntCmd
}

// KeyCmdable covers the generic keyspace commands.
type KeyCmdable interface {
	Del(ctx context.Context, keys ...string) *IntCmd
	Unlink(ctx context.Context, keys ...string) *IntCmd
	Exists(ctx context.Context, keys ...string) *IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *BoolCmd
	ExpireWithOption(ctx context.Context, key string, expiration time.Duration, option ExpireOption) *BoolCmd
	ExpireAt(ctx context.Context, key string, tm time.Time) *BoolCmd
	PExpire(ctx context.Context, key string, expiration time.Duration) *BoolCmd
	PExpireAt(ctx context.Context, key string, tm time.Time) *BoolCmd
	ExpireTime(ctx context.Context, key string) *IntCmd
	PExpireTime(ctx context.Context, key string) *IntCmd
	Persist(ctx context.Context, key string) *BoolCmd
	TTL(ctx context.Context, key string) *DurationCmd
	PTTL(ctx context.Context, key string) *DurationCmd
	Type(ctx context.Context, key string) *StatusCmd
	Keys(ctx context.Context, pattern string) *StringSliceCmd
	RandomKey(ctx context.Context) *StringCmd
	Rename(ctx context.Context, key, newKey string) *StatusCmd
	RenameNX(ctx context.Context, key, newKey string) *BoolCmd
	Copy(ctx context.Context, source, destination string, arg *CopyArgument) *BoolCmd
	Dump(ctx context.Context, key string) *StringCmd
	Restore(ctx context.Context, key string, ttl int64, value string, arg *RestoreArgument) *StatusCmd
	Move(ctx context.Context, key string, db int) *BoolCmd
	ObjectEncoding(ctx context.Context, key string) *StringCmd
	ObjectFreq(ctx context.Context, key string) *IntCmd
	ObjectIdleTime(ctx context.Context, key string) *DurationCmd
	ObjectRefCount(ctx context.Context, key string) *IntCmd
	Scan(ctx context.Context, cursor uint64, arg *ScanArgument) *ScanCmd
	Sort(ctx context.Context, key string, arg *SortArgument) *StringSliceCmd
	SortRO(ctx context.Context, key string, arg *SortArgument) *StringSliceCmd
	SortStore(ctx context.Context, key, destination string, arg *SortArgument) *IntCmd
	Touch(ctx context.Context, keys ...string) *IntCmd
	Wait(ctx context.Context, numReplicas int, timeout time.Duration) *IntCmd
	Migrate(ctx context.Context, host string, port int, key string, db int, timeout time.Duration, arg *MigrateArgument) *StatusCmd
}

// HashCmdable covers hash commands, including per field expiration.
type HashCmdable interface {
	HDel(ctx context.Context, key string, fields ...string) *IntCmd
	HExists(ctx context.Context, key, field string) *BoolCmd
	HGet(ctx context.Context, key, field string) *StringCmd
	HGetAll(ctx context.Context, key string) *StringMapCmd
	HIncrBy(ctx context.Context, key, field string, incr int64) *IntCmd
	HIncrByFloat(ctx context.Context, key, field string, incr float64) *FloatCmd
	HKeys(ctx context.Context, key string) *StringSliceCmd
	HLen(ctx context.Context, key string) *IntCmd
	HMGet(ctx context.Context, key string, fields ...string) *StringPtrSliceCmd
	HSet(ctx context.Context, key string, values map[string]string) *IntCmd
	HMSet(ctx context.Context, key string, values map[string]string) *BoolCmd
	HSetNX(ctx context.Context, key, field, value string) *BoolCmd
	HStrLen(ctx context.Context, key, field string) *IntCmd
	HVals(ctx context.Context, key string) *StringSliceCmd
	HRandField(ctx context.Context, key string, count int64) *StringSliceCmd
	HRandFieldWithValues(ctx context.Context, key string, count int64) *KeyValueSliceCmd
	HScan(ctx context.Context, key string, cursor uint64, arg *ScanArgument) *KeyValueScanCmd
	HExpire(ctx context.Context, key string, expiration time.Duration, option ExpireOption, fields ...string) *IntSliceCmd
	HPExpire(ctx context.Context, key string, expiration time.Duration, option ExpireOption, fields ...string) *IntSliceCmd
	HExpireAt(ctx context.Context, key string, tm time.Time, option ExpireOption, fields ...string) *IntSliceCmd
	HPExpireAt(ctx context.Context, key string, tm time.Time, option ExpireOption, fields ...string) *IntSliceCmd
	HExpireTime(ctx context.Context, key string, fields ...string) *IntSliceCmd
	HPExpireTime(ctx context.Context, key string, fields ...string) *IntSliceCmd
	HPersist(ctx context.Context, key string, fields ...string) *IntSliceCmd
	HTTL(ctx context.Context, key string, fields ...string) *DurationSliceCmd
	HPTTL(ctx context.Context, key string, fields ...string) *DurationSliceCmd
	HGetDel(ctx context.Context, key string, fields ...string) *StringPtrSliceCmd
	HGetEx(ctx context.Context, key string, expiration Expiration, fields ...string) *StringPtrSliceCmd
	HSetEx(ctx context.Context, key string, arg *HSetExArgument, values map[string]string) *BoolCmd
}

// ListCmdable covers list commands, including the blocking pops.
type ListCmdable interface {
	BLMove(ctx context.Context, source, destination string, srcPos, destPos ListDirection, timeout time.Duration) *StringCmd
	BLMPop(ctx context.Context, timeout time.Duration, direction ListDirection, count int64, keys ...string) *KeyValuesCmd
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *StringSliceCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *StringSliceCmd
	BRPopLPush(ctx context.Context, source, destination string, timeout time.Duration) *StringCmd
	LIndex(ctx context.Context, key string, index int64) *StringCmd
	LInsert(ctx context.Context, key string, position InsertPosition, pivot, value string) *IntCmd
	LLen(ctx context.Context, key string) *IntCmd
	LMove(ctx context.Context, source, destination string, srcPos, destPos ListDirection) *StringCmd
	LMPop(ctx context.Context, direction ListDirection, count int64, keys ...string) *KeyValuesCmd
	LPop(ctx context.Context, key string) *StringCmd
	LPopCount(ctx context.Context, key string, count int) *StringSliceCmd
	LPos(ctx context.Context, key, element string, arg *LPosArgument) *IntCmd
	LPosCount(ctx context.Context, key, element string, count int64, arg *LPosArgument) *IntSliceCmd
	LPush(ctx context.Context, key string, values ...string) *IntCmd
	LPushX(ctx context.Context, key string, values ...string) *IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *StringSliceCmd
	LRem(ctx context.Context, key string, count int64, value string) *IntCmd
	LSet(ctx context.Context, key string, index int64, value string) *StatusCmd
	LTrim(ctx context.Context, key string, start, stop int64) *StatusCmd
	RPop(ctx context.Context, key string) *StringCmd
	RPopCount(ctx context.Context, key string, count int) *StringSliceCmd
	RPopLPush(ctx context.Context, source, destination string) *StringCmd
	RPush(ctx context.Context, key string, values ...string) *IntCmd
	RPushX(ctx context.Context, key string, values ...string) *IntCmd
}

// SetCmdable covers set commands.
type SetCmdable interface {
	SAdd(ctx context.Context, key string, members ...string) *IntCmd
	SCard(ctx context.Context, key string) *IntCmd
	SDiff(ctx context.Context, keys ...string) *StringSliceCmd
	SDiffStore(ctx context.Context, destination string, keys ...string) *IntCmd
	SInter(ctx context.Context, keys ...string) *StringSliceCmd
	SInterCard(ctx context.Context, limit int64, keys ...string) *IntCmd
	SInterStore(ctx context.Context, destination string, keys ...string) *IntCmd
	SIsMember(ctx context.Context, key, member string) *BoolCmd
	SMembers(ctx context.Context, key string) *StringSliceCmd
	SMIsMember(ctx context.Context, key string, members ...string) *BoolSliceCmd
	SMove(ctx context.Context, source, destination, member string) *BoolCmd
	SPop(ctx context.Context, key string) *StringCmd
	SPopN(ctx context.Context, key string, count int64) *StringSliceCmd
	SRandMember(ctx context.Context, key string) *StringCmd
	SRandMemberN(ctx context.Context, key string, count int64) *StringSliceCmd
	SRem(ctx context.Context, key string, members ...string) *IntCmd
	SScan(ctx context.Context, key string, cursor uint64, arg *ScanArgument) *ScanCmd
	SUnion(ctx context.Context, keys ...string) *StringSliceCmd
	SUnionStore(ctx context.Context, destination string, keys ...string) *IntCmd
}

// SortedSetCmdable covers sorted set commands.
type SortedSetCmdable interface {
	BZMPop(ctx context.Context, timeout time.Duration, side PopSide, count int64, keys ...string) *KeyTuplesCmd
	BZPopMax(ctx context.Context, timeout time.Duration, keys ...string) *KeyTupleCmd
	BZPopMin(ctx context.Context, timeout time.Duration, keys ...string) *KeyTupleCmd
	ZAdd(ctx context.Context, key string, members ...Tuple) *IntCmd
	ZAddArgs(ctx context.Context, key string, arg *ZAddArgument, members ...Tuple) *IntCmd
	ZAddIncr(ctx context.Context, key string, arg *ZAddArgument, member Tuple) *FloatCmd
	ZCard(ctx context.Context, key string) *IntCmd
	ZCount(ctx context.Context, key, min, max string) *IntCmd
	ZDiff(ctx context.Context, keys ...string) *StringSliceCmd
	ZDiffWithScores(ctx context.Context, keys ...string) *TupleSliceCmd
	ZDiffStore(ctx context.Context, destination string, keys ...string) *IntCmd
	ZIncrBy(ctx context.Context, key string, increment float64, member string) *FloatCmd
	ZInter(ctx context.Context, arg *ZStoreArgument, keys ...string) *StringSliceCmd
	ZInterWithScores(ctx context.Context, arg *ZStoreArgument, keys ...string) *TupleSliceCmd
	ZInterCard(ctx context.Context, limit int64, keys ...string) *IntCmd
	ZInterStore(ctx context.Context, destination string, arg *ZStoreArgument, keys ...string) *IntCmd
	ZLexCount(ctx context.Context, key, min, max string) *IntCmd
	ZMPop(ctx context.Context, side PopSide, count int64, keys ...string) *KeyTuplesCmd
	ZMScore(ctx context.Context, key string, members ...string) *FloatPtrSliceCmd
	ZPopMax(ctx context.Context, key string, count int64) *TupleSliceCmd
	ZPopMin(ctx context.Context, key string, count int64) *TupleSliceCmd
	ZRandMember(ctx context.Context, key string, count int64) *StringSliceCmd
	ZRandMemberWithScores(ctx context.Context, key string, count int64) *TupleSliceCmd
	ZRange(ctx context.Context, key string, start, stop int64) *StringSliceCmd
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) *TupleSliceCmd
	ZRangeArgs(ctx context.Context, key, start, stop string, arg *ZRangeArgument) *StringSliceCmd
	ZRangeArgsWithScores(ctx context.Context, key, start, stop string, arg *ZRangeArgument) *TupleSliceCmd
	ZRangeByScore(ctx context.Context, key, min, max string, limit *Limit) *StringSliceCmd
	ZRangeByLex(ctx context.Context, key, min, max string, limit *Limit) *StringSliceCmd
	ZRangeStore(ctx context.Context, destination, source, start, stop string, arg *ZRangeArgument) *IntCmd
	ZRank(ctx context.Context, key, member string) *IntCmd
	ZRem(ctx context.Context, key string, members ...string) *IntCmd
	ZRemRangeByLex(ctx context.Context, key, min, max string) *IntCmd
	ZRemRangeByRank(ctx context.Context, key string, start, stop int64) *IntCmd
	ZRemRangeByScore(ctx context.Context, key, min, max string) *IntCmd
	ZRevRange(ctx context.Context, key string, start, stop int64) *StringSliceCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *TupleSliceCmd
	ZRevRangeByScore(ctx context.Context, key, max, min string, limit *Limit) *StringSliceCmd
	ZRevRangeByLex(ctx context.Context, key, max, min string, limit *Limit) *StringSliceCmd
	ZRevRank(ctx context.Context, key, member string) *IntCmd
	ZScan(ctx context.Context, key string, cursor uint64, arg *ScanArgument) *TupleScanCmd
	ZScore(ctx context.Context, key, member string) *FloatCmd
	ZUnion(ctx context.Context, arg *ZStoreArgument, keys ...string) *StringSliceCmd
	ZUnionWithScores(ctx context.Context, arg *ZStoreArgument, keys ...string) *TupleSliceCmd
	ZUnionStore(ctx context.Context, destination string, arg *ZStoreArgument, keys ...string) *IntCmd
}

type HyperLogLogCmdable interface {
	PFAdd(ctx context.Context, key string, elements ...string) *BoolCmd
	PFCount(ctx context.Context, keys ...string) *IntCmd
	PFMerge(ctx context.Context, destination string, keys ...string) *StatusCmd
}

// GeoCmdable covers geospatial commands.
type GeoCmdable interface {
	GeoAdd(ctx context.Context, key string, arg *GeoAddArgument, locations ...GeoLocation) *IntCmd
	GeoDist(ctx context.Context, key, member1, member2 string, unit GeoUnit) *FloatCmd
	GeoHash(ctx context.Context, key string, members ...string) *StringSliceCmd
	GeoPos(ctx context.Context, key string, members ...string) *GeoPosCmd
	GeoSearch(ctx context.Context, key string, arg *GeoSearchArgument) *GeoLocationCmd
	GeoSearchStore(ctx context.Context, destination, source string, arg *GeoSearchStoreArgument) *IntCmd
}

// StreamCmdable covers stream and consumer group commands.
type StreamCmdable interface {
	XAck(ctx context.Context, stream, group string, ids ...string) *IntCmd
	XAdd(ctx context.Context, stream string, arg *XAddArgument, values map[string]string) *StringCmd
	XAutoClaim(ctx context.Context, stream, group, consumer string, minIdle time.Duration, start string, count int64) *XAutoClaimCmd
	XAutoClaimJustID(ctx context.Context, stream, group, consumer string, minIdle time.Duration, start string, count int64) *XAutoClaimJustIDCmd
	XClaim(ctx context.Context, stream, group, consumer string, minIdle time.Duration, arg *XClaimArgument, ids ...string) *XMessageSliceCmd
	XClaimJustID(ctx context.Context, stream, group, consumer string, minIdle time.Duration, arg *XClaimArgument, ids ...string) *StringSliceCmd
	XDel(ctx context.Context, stream string, ids ...string) *IntCmd
	XGroupCreate(ctx context.Context, stream, group, start string) *StatusCmd
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *StatusCmd
	XGroupCreateConsumer(ctx context.Context, stream, group, consumer string) *BoolCmd
	XGroupDelConsumer(ctx context.Context, stream, group, consumer string) *IntCmd
	XGroupDestroy(ctx context.Context, stream, group string) *BoolCmd
	XGroupSetID(ctx context.Context, stream, group, start string) *StatusCmd
	XInfoConsumers(ctx context.Context, stream, group string) *XInfoConsumersCmd
	XInfoGroups(ctx context.Context, stream string) *XInfoGroupsCmd
	XInfoStream(ctx context.Context, stream string) *XInfoStreamCmd
	XLen(ctx context.Context, stream string) *IntCmd
	XPending(ctx context.Context, stream, group string) *XPendingCmd
	XPendingExt(ctx context.Context, stream, group string, arg *XPendingArgument) *XPendingExtCmd
	XRange(ctx context.Context, stream, start, end string) *XMessageSliceCmd
	XRangeN(ctx context.Context, stream, start, end string, count int64) *XMessageSliceCmd
	XRevRange(ctx context.Context, stream, end, start string) *XMessageSliceCmd
	XRevRangeN(ctx context.Context, stream, end, start string, count int64) *XMessageSliceCmd
	XRead(ctx context.Context, arg *XReadArgument, offsets ...StreamOffset) *XStreamSliceCmd
	XReadGroup(ctx context.Context, group, consumer string, arg *XReadGroupArgument, offsets ...StreamOffset) *XStreamSliceCmd
	XTrim(ctx context.Context, stream string, arg *XTrimArgument) *IntCmd
}

// ConnectionCmdable covers connection management. AUTH, SELECT and the
// CLIENT setters affect only the connection that runs them.
type ConnectionCmdable interface {
	Auth(ctx context.Context, password string) *StatusCmd
	AuthACL(ctx context.Context, username, password string) *StatusCmd
	Echo(ctx context.Context, message string) *StringCmd
	Ping(ctx context.Context) *StatusCmd
	Select(ctx context.Context, index int) *StatusCmd
	SwapDB(ctx context.Context, index1, index2 int) *StatusCmd
	ClientID(ctx context.Context) *IntCmd
	ClientGetName(ctx context.Context) *StringCmd
	ClientSetName(ctx context.Context, name string) *StatusCmd
	ClientList(ctx context.Context, typ ClientType) *ClientInfoSliceCmd
	ClientInfo(ctx context.Context) *ClientInfoCmd
	ClientKill(ctx context.Context, arg *ClientKillArgument) *IntCmd
	ClientPause(ctx context.Context, timeout time.Duration, mode ClientPauseMode) *StatusCmd
	ClientUnpause(ctx context.Context) *StatusCmd
	ClientNoEvict(ctx context.Context, on bool) *StatusCmd
	ClientNoTouch(ctx context.Context, on bool) *StatusCmd
	Reset(ctx context.Context) *StatusCmd
}

// ServerCmdable covers server administration commands.
type ServerCmdable interface {
	BgRewriteAOF(ctx context.Context) *StatusCmd
	BgSave(ctx context.Context) *StatusCmd
	ConfigGet(ctx context.Context, pattern string) *StringMapCmd
	ConfigSet(ctx context.Context, parameter, value string) *StatusCmd
	ConfigResetStat(ctx context.Context) *StatusCmd
	ConfigRewrite(ctx context.Context) *StatusCmd
	DBSize(ctx context.Context) *IntCmd
	FlushAll(ctx context.Context, mode FlushMode) *StatusCmd
	FlushDB(ctx context.Context, mode FlushMode) *StatusCmd
	Info(ctx context.Context, sections ...string) *InfoCmd
	LastSave(ctx context.Context) *TimeCmd
	Time(ctx context.Context) *TimeCmd
	Save(ctx context.Context) *StatusCmd
	SlowLogGet(ctx context.Context, count int64) *SlowLogCmd
	SlowLogLen(ctx context.Context) *IntCmd
	SlowLogReset(ctx context.Context) *StatusCmd
	MemoryUsage(ctx context.Context, key string, samples int) *IntCmd
	MemoryDoctor(ctx context.Context) *StringCmd
	Role(ctx context.Context) *RoleCmd
	ReplicaOf(ctx context.Context, host string, port int) *StatusCmd
	ReplicaOfNoOne(ctx context.Context) *StatusCmd
	Shutdown(ctx context.Context, arg *ShutdownArgument) *StatusCmd
	CommandCount(ctx context.Context) *IntCmd
	LatencyDoctor(ctx context.Context) *StringCmd
}

type AclCmdable interface {
	AclCat(ctx context.Context) *StringSliceCmd
	AclCatCategory(ctx context.Context, category string) *StringSliceCmd
	AclDelUser(ctx context.Context, usernames ...string) *IntCmd
	AclDryRun(ctx context.Context, username string, command ...interface{}) *StringCmd
	AclGenPass(ctx context.Context, bits int) *StringCmd
	AclGetUser(ctx context.Context, username string) *AclUserCmd
	AclList(ctx context.Context) *StringSliceCmd
	AclLoad(ctx context.Context) *StatusCmd
	AclSave(ctx context.Context) *StatusCmd
	AclLog(ctx context.Context, count int64) *AclLogCmd
	AclLogReset(ctx context.Context) *StatusCmd
	AclSetUser(ctx context.Context, username string, arg *AclSetUserArgument) *StatusCmd
	AclUsers(ctx context.Context) *StringSliceCmd
	AclWhoAmI(ctx context.Context) *StringCmd
}

// PubSubCmdable covers publishing and Pub/Sub introspection. Subscribing
// needs a dedicated connection, see Client.Subscribe.
type PubSubCmdable interface {
	Publish(ctx context.Context, channel string, message interface{}) *IntCmd
	SPublish(ctx context.Context, shardChannel string, message interface{}) *IntCmd
	PubSubChannels(ctx context.Context, pattern string) *StringSliceCmd
	PubSubNumSub(ctx context.Context, channels ...string) *StringIntMapCmd
	PubSubNumPat(ctx context.Context) *IntCmd
	PubSubShardChannels(ctx context.Context, pattern string) *StringSliceCmd
	PubSubShardNumSub(ctx context.Context, channels ...string) *StringIntMapCmd
}

// ScriptingCmdable covers Lua scripts and functions.
type ScriptingCmdable interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *InterfaceCmd
	EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *InterfaceCmd
	EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *InterfaceCmd
	EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...interface{}) *InterfaceCmd
	ScriptExists(ctx context.Context, hashes ...string) *BoolSliceCmd
	ScriptFlush(ctx context.Context, mode FlushMode) *StatusCmd
	ScriptKill(ctx context.Context) *StatusCmd
	ScriptLoad(ctx context.Context, script string) *StringCmd
	FCall(ctx context.Context, function string, keys []string, args ...interface{}) *InterfaceCmd
	FCallRO(ctx context.Context, function string, keys []string, args ...interface{}) *InterfaceCmd
	FunctionLoad(ctx context.Context, code string) *StringCmd
	FunctionLoadReplace(ctx context.Context, code string) *StringCmd
	FunctionDelete(ctx context.Context, library string) *StatusCmd
	FunctionFlush(ctx context.Context, mode FlushMode) *StatusCmd
	FunctionKill(ctx context.Context) *StatusCmd
}

// ClusterCmdable covers CLUSTER subcommands. They fail on standalone servers.
type ClusterCmdable interface {
	ClusterAddSlots(ctx context.Context, slots ...int) *StatusCmd
	ClusterAddSlotsRange(ctx context.Context, min, max int) *StatusCmd
	ClusterBumpEpoch(ctx context.Context) *StringCmd
	ClusterCountFailureReports(ctx context.Context, nodeID string) *IntCmd
	ClusterCountKeysInSlot(ctx context.Context, slot int) *IntCmd
	ClusterDelSlots(ctx context.Context, slots ...int) *StatusCmd
	ClusterDelSlotsRange(ctx context.Context, min, max int) *StatusCmd
	ClusterFailover(ctx context.Context, mode FailoverArgument) *StatusCmd
	ClusterFlushSlots(ctx context.Context) *StatusCmd
	ClusterForget(ctx context.Context, nodeID string) *StatusCmd
	ClusterGetKeysInSlot(ctx context.Context, slot, count int) *StringSliceCmd
	ClusterInfo(ctx context.Context) *StringMapCmd
	ClusterKeySlot(ctx context.Context, key string) *IntCmd
	ClusterLinks(ctx context.Context) *ClusterLinksCmd
	ClusterMeet(ctx context.Context, host string, port int) *StatusCmd
	ClusterMyID(ctx context.Context) *StringCmd
	ClusterMyShardID(ctx context.Context) *StringCmd
	ClusterNodes(ctx context.Context) *ClusterNodesCmd
	ClusterReplicas(ctx context.Context, nodeID string) *ClusterNodesCmd
	ClusterReplicate(ctx context.Context, nodeID string) *StatusCmd
	ClusterReset(ctx context.Context, mode ClusterResetMode) *StatusCmd
	ClusterSaveConfig(ctx context.Context) *StatusCmd
	ClusterSetConfigEpoch(ctx context.Context, epoch int64) *StatusCmd
	ClusterSetSlot(ctx context.Context, slot int, arg *ClusterSetSlotArgument) *StatusCmd
	ClusterShards(ctx context.Context) *ClusterShardsCmd
	ClusterSlots(ctx context.Context) *ClusterSlotsCmd
	ReadOnly(ctx context.Context) *StatusCmd
	ReadWrite(ctx context.Context) *StatusCmd
}
// Cmdable is the full command API. It is implemented by *RedisClient, which
// sends commands immediately, by *Pipeline, which queues them, and by *Tx,
// which runs them on a watched connection.
type Cmdable interface {
	StringCmdable
	BitmapCmdable
	KeyCmdable
	HashCmdable
	ListCmdable
	SetCmdable
	SortedSetCmdable
	HyperLogLogCmdable
	GeoCmdable
	StreamCmdable
	ConnectionCmdable
	ServerCmdable
	AclCmdable
	PubSubCmdable
	ScriptingCmdable
	ClusterCmdable

	// Do sends an arbitrary command. The first argument is the command name.
	Do(ctx context.Context, args ...interface{}) *InterfaceCmd
}

// Client provides a high-level interface for interacting with Redis.
// Besides the command API it offers pipelines, optimistic transactions,
// pub/sub, and helpers like distributed locks, rate limiting and object
// serialization.
//
// This interface is implemented by the concrete *RedisClient type.
type Client interface {
	Cmdable

	// Batching and transactions
	Pipeline() *Pipeline
	Pipelined(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error)
	TxPipeline() *Pipeline
	TxPipelined(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error)
	Watch(ctx context.Context, fn func(*Tx) error, keys ...string) error
	Process(ctx context.Context, cmd Cmder) error

	// Pub/Sub
	Subscribe(ctx context.Context, channels ...string) (*PubSub, error)
	PSubscribe(ctx context.Context, patterns ...string) (*PubSub, error)

	// Object helpers
	Key(key string) string
	SetObject(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetObject(ctx context.Context, key string, dest interface{}) error
	HSetObject(ctx context.Context, key, field string, value interface{}) error
	HGetObject(ctx context.Context, key, field string, dest interface{}) error
	LPushObject(ctx context.Context, key string, values ...interface{}) (int64, error)
	RPopObject(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	PublishObject(ctx context.Context, channel string, message interface{}) (int64, error)

	// Distributed locks and rate limiting
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (*Lock, error)
	RateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
	Allow(ctx context.Context, key string, limit int64, window time.Duration) error

	// Connection and lifecycle
	PoolStats() PoolStats
	Driver() Driver
	Close() error
}

var (
	_ Client   = (*RedisClient)(nil)
	_ Cmdable  = (*Pipeline)(nil)
	_ Cmdable  = (*Tx)(nil)
	_ Scripter = (*RedisClient)(nil)
)
