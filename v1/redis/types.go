package redis

import "time"

// Tuple is a sorted set member with its score.
type Tuple struct {
	Member string
	Score  float64
}

// KeyValue is a key (or hash field) and its value.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValues is the reply of LMPOP and BLMPOP: the list the elements were popped from.
type KeyValues struct {
	Key    string
	Values []string
}

// KeyTuple is the reply of BZPOPMIN and BZPOPMAX.
type KeyTuple struct {
	Key string
	Tuple
}

// KeyTuples is the reply of ZMPOP and BZMPOP.
type KeyTuples struct {
	Key    string
	Tuples []Tuple
}

// ScanResult is one page of a cursor based iteration. A zero Cursor means
// the iteration is complete.
type ScanResult[T any] struct {
	Cursor uint64
	Items  []T
}

// GeoUnit is the distance unit used by geo commands.
type GeoUnit string

const (
	Meters     GeoUnit = "m"
	Kilometers GeoUnit = "km"
	Miles      GeoUnit = "mi"
	Feet       GeoUnit = "ft"
)

// GeoLocation is a member added with GEOADD or returned by GEOSEARCH.
// Dist, GeoHash and the coordinates are only set when requested.
type GeoLocation struct {
	Name      string
	Longitude float64
	Latitude  float64
	Dist      float64
	GeoHash   int64
}

// GeoPosition is the coordinate pair returned by GEOPOS.
type GeoPosition struct {
	Longitude float64
	Latitude  float64
}

// XMessage is a single stream entry. Values is nil for entries that were
// deleted while still pending.
type XMessage struct {
	ID     string
	Values map[string]string
}

// XStream is the set of entries read from one stream.
type XStream struct {
	Stream   string
	Messages []XMessage
}

// XPending is the summary form of XPENDING.
type XPending struct {
	Count     int64
	Lower     string
	Higher    string
	Consumers map[string]int64
}

// XPendingExt is one entry of the extended form of XPENDING.
type XPendingExt struct {
	ID         string
	Consumer   string
	Idle       time.Duration
	RetryCount int64
}

// XAutoClaimResult is the reply of XAUTOCLAIM.
type XAutoClaimResult struct {
	Start    string
	Messages []XMessage
	Deleted  []string
}

// XAutoClaimJustIDResult is the reply of XAUTOCLAIM ... JUSTID.
type XAutoClaimJustIDResult struct {
	Start   string
	IDs     []string
	Deleted []string
}

// XInfoStream is the reply of XINFO STREAM.
type XInfoStream struct {
	Length               int64
	RadixTreeKeys        int64
	RadixTreeNodes       int64
	Groups               int64
	LastGeneratedID      string
	MaxDeletedEntryID    string
	EntriesAdded         int64
	RecordedFirstEntryID string
	FirstEntry           XMessage
	LastEntry            XMessage
}

// XInfoGroup is one entry of XINFO GROUPS.
type XInfoGroup struct {
	Name            string
	Consumers       int64
	Pending         int64
	LastDeliveredID string
	EntriesRead     int64
	Lag             int64
}

// XInfoConsumer is one entry of XINFO CONSUMERS.
type XInfoConsumer struct {
	Name     string
	Pending  int64
	Idle     time.Duration
	Inactive time.Duration
}

// SlotRange is an inclusive range of hash slots.
type SlotRange struct {
	Start int64
	End   int64
}

// ClusterNode is one line of CLUSTER NODES.
type ClusterNode struct {
	ID          string
	Addr        string
	Hostname    string
	Flags       []string
	MasterID    string
	PingSent    int64
	PongRecv    int64
	ConfigEpoch int64
	LinkState   string
	Slots       []SlotRange
}

// ClusterSlotNode is a node serving a slot range in CLUSTER SLOTS.
type ClusterSlotNode struct {
	ID   string
	Addr string
}

// ClusterSlot is one entry of CLUSTER SLOTS. The first node is the master.
type ClusterSlot struct {
	Start int64
	End   int64
	Nodes []ClusterSlotNode
}

// ClusterShardNode is a node of a shard in CLUSTER SHARDS.
type ClusterShardNode struct {
	ID                string
	Endpoint          string
	IP                string
	Hostname          string
	Port              int64
	TLSPort           int64
	Role              string
	ReplicationOffset int64
	Health            string
}

// ClusterShard is one entry of CLUSTER SHARDS.
type ClusterShard struct {
	Slots []SlotRange
	Nodes []ClusterShardNode
}

// ClusterLink is one entry of CLUSTER LINKS.
type ClusterLink struct {
	Direction           string
	Node                string
	CreateTime          int64
	Events              string
	SendBufferAllocated int64
	SendBufferUsed      int64
}

// SlowLog is one entry of SLOWLOG GET.
type SlowLog struct {
	ID         int64
	Time       time.Time
	Duration   time.Duration
	Args       []string
	ClientAddr string
	ClientName string
}

// AclLogEntry is one entry of ACL LOG.
type AclLogEntry struct {
	Count                int64
	Reason               string
	Context              string
	Object               string
	Username             string
	AgeSeconds           float64
	ClientInfo           string
	EntryID              int64
	TimestampCreated     int64
	TimestampLastUpdated int64
}

// AclUser is the reply of ACL GETUSER.
type AclUser struct {
	Flags     []string
	Passwords []string
	Commands  string
	Keys      string
	Channels  string
	Selectors []map[string]string
}

// ClientInfo is one line of CLIENT LIST or the reply of CLIENT INFO.
// Fields not mapped to a struct member are kept in Raw.
type ClientInfo struct {
	ID      int64
	Addr    string
	LAddr   string
	Name    string
	Age     time.Duration
	Idle    time.Duration
	Flags   string
	DB      int64
	Cmd     string
	User    string
	LibName string
	LibVer  string
	Raw     map[string]string
}

// RoleReplica is a replica reported by ROLE on a master.
type RoleReplica struct {
	IP     string
	Port   int64
	Offset int64
}

// Role is the reply of ROLE. Which fields are set depends on Role
// ("master", "slave" or "sentinel").
type Role struct {
	Role              string
	ReplicationOffset int64
	Replicas          []RoleReplica
	MasterHost        string
	MasterPort        int64
	State             string
	MasterNames       []string
}

// Info is the parsed reply of INFO, keyed by lower-case section and field name.
type Info map[string]map[string]string

// Get returns a field of the given section.
func (i Info) Get(section, field string) string {
	return i[section][field]
}

// PoolStats contains connection pool statistics. Drivers fill in what their
// pool exposes and leave the rest zero.
type PoolStats struct {
	Hits       uint32
	Misses     uint32
	Timeouts   uint32
	TotalConns uint32
	IdleConns  uint32
	StaleConns uint32
}

// Message is a message received on a Pub/Sub subscription. Pattern is set for
// messages delivered through PSUBSCRIBE.
type Message struct {
	Channel string
	Pattern string
	Payload string
}
