package redigo

import (
	"context"
	"sync"
	"testing"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/gomodule/redigo/redis"
	"github.com/mna/redisc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slotConn is a fakeConn that can be bound like a redisc connection. Binding
// loads the replies scripted for the bound key.
type slotConn struct {
	*fakeConn
	nodes *fakeNodes
	key   string
}

func (c *slotConn) Bind(keys ...string) error {
	if len(keys) > 0 {
		c.key = keys[0]
	}
	c.nodes.mu.Lock()
	defer c.nodes.mu.Unlock()
	c.replies = c.nodes.replies[c.key]
	return nil
}

type fakeNodes struct {
	mu      sync.Mutex
	replies map[string][]interface{}
	conns   []*slotConn
	stats   map[string]redis.PoolStats
	closed  bool
}

func (n *fakeNodes) Get() redis.Conn {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := &slotConn{fakeConn: &fakeConn{}, nodes: n}
	n.conns = append(n.conns, c)
	return c
}

func (n *fakeNodes) Dial() (redis.Conn, error) {
	return n.Get(), nil
}

func (n *fakeNodes) Stats() map[string]redis.PoolStats {
	return n.stats
}

func (n *fakeNodes) Close() error {
	n.closed = true
	return nil
}

func (n *fakeNodes) bound(key string) *slotConn {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.conns {
		if c.key == key {
			return c
		}
	}
	return nil
}

func TestCommandKeys(t *testing.T) {
	tests := []struct {
		args []interface{}
		key  string
		ok   bool
	}{
		{[]interface{}{"SET", "{user}:a", "1"}, "{user}:a", true},
		{[]interface{}{"incr", "{user}:b"}, "{user}:b", true},
		{[]interface{}{"PING"}, "", false},
		{[]interface{}{"ECHO", "hello"}, "", false},
		{[]interface{}{"PUBLISH", "events", "x"}, "", false},
		{[]interface{}{"CLIENT", "SETNAME", "worker"}, "", false},
		{[]interface{}{"CONFIG", "GET", "maxmemory"}, "", false},
		{[]interface{}{"SCRIPT", "LOAD", "return 1"}, "", false},
		{[]interface{}{"EVAL", "return 1", 0}, "", false},
		{[]interface{}{"EVAL", "return redis.call('get', KEYS[1])", 1, "{user}:a"}, "{user}:a", true},
		{[]interface{}{"EVALSHA", "abc", "2", "k1", "k2"}, "k1", true},
		{[]interface{}{"FCALL", "fn", int64(1), "k"}, "k", true},
		{[]interface{}{"LMPOP", 2, "l1", "l2", "LEFT"}, "l1", true},
		{[]interface{}{"BZMPOP", "1.5", 1, "z", "MIN"}, "z", true},
		{[]interface{}{"BITOP", "AND", "dest", "a", "b"}, "dest", true},
		{[]interface{}{"XGROUP", "CREATE", "stream", "group", "$"}, "stream", true},
		{[]interface{}{"MEMORY", "USAGE", "k"}, "k", true},
		{[]interface{}{"MEMORY", "STATS"}, "", false},
		{[]interface{}{"XREAD", "COUNT", 1, "STREAMS", "s1", "s2", "0", "0"}, "s1", true},
	}
	for _, tt := range tests {
		key, ok := commandKey(tt.args)
		assert.Equal(t, tt.ok, ok, "%v", tt.args)
		assert.Equal(t, tt.key, key, "%v", tt.args)
	}

	keys := commandKeys([][]interface{}{
		{"SET", "{user}:a", "1"},
		{"INCR", "{user}:b"},
		{"PING"},
		{"EVAL", "return 1", 0},
	})
	assert.Equal(t, []string{"{user}:a", "{user}:b"}, keys)
}

func TestGroupBySlot(t *testing.T) {
	groups := groupBySlot([][]interface{}{
		{"SET", "{a}x", "1"},
		{"SET", "{b}y", "2"},
		{"PING"},
		{"GET", "{a}z"},
		{"EVAL", "return 1", 0},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, []int{0, 3}, groups[0].idx)
	assert.Equal(t, []string{"{a}x"}, groups[0].keys())
	assert.Equal(t, []int{1}, groups[1].idx)
	assert.Equal(t, []int{2, 4}, groups[2].idx)
	assert.Nil(t, groups[2].keys())
	assert.Equal(t, redisc.Slot("{a}x"), redisc.Slot("{a}z"))
}

func TestClusterPipelineKeepsOrderWithinSlot(t *testing.T) {
	nodes := &fakeNodes{replies: map[string][]interface{}{
		"{a}x": {"OK", []byte("1")},
		"{b}y": {"OK"},
		"":     {"PONG"},
	}}
	d := &ClusterDriver{cluster: nodes, attempts: 1, concurrency: 4}

	replies, err := d.Pipeline(context.Background(), [][]interface{}{
		{"SET", "{a}x", "1"},
		{"SET", "{b}y", "2"},
		{"GET", "{a}x"},
		{"PING"},
	})
	require.NoError(t, err)
	require.Len(t, replies, 4)
	for i, want := range []interface{}{"OK", "OK", "1", "PONG"} {
		assert.NoError(t, replies[i].Err)
		assert.Equal(t, want, replies[i].Val)
	}

	a := nodes.bound("{a}x")
	require.NotNil(t, a)
	assert.Equal(t, [][]interface{}{{"SET", "{a}x", "1"}, {"GET", "{a}x"}}, a.sent)
	assert.True(t, a.closed)

	b := nodes.bound("{b}y")
	require.NotNil(t, b)
	assert.Equal(t, [][]interface{}{{"SET", "{b}y", "2"}}, b.sent)
}

func TestClusterPipelineConnectionLost(t *testing.T) {
	nodes := &fakeNodes{replies: map[string][]interface{}{
		"{a}x": {"OK"},
	}}
	d := &ClusterDriver{cluster: nodes, attempts: 1, concurrency: 4}

	replies, err := d.Pipeline(context.Background(), [][]interface{}{
		{"SET", "{a}x", "1"},
		{"INCR", "{a}x"},
		{"SET", "{b}y", "2"},
	})
	require.NoError(t, err)
	assert.NoError(t, replies[0].Err)
	assert.Error(t, replies[1].Err)
	assert.Error(t, replies[2].Err)
}

func TestPoolStats(t *testing.T) {
	stats := poolStats(redis.PoolStats{ActiveCount: 5, IdleCount: 2, WaitCount: 3})
	assert.Equal(t, rediskit.PoolStats{Misses: 3, TotalConns: 5, IdleConns: 2}, stats)

	d := &ClusterDriver{cluster: &fakeNodes{stats: map[string]redis.PoolStats{
		"10.0.0.1:7000": {ActiveCount: 5, IdleCount: 2, WaitCount: 3},
		"10.0.0.2:7000": {ActiveCount: 1, IdleCount: 1},
	}}}
	assert.Equal(t, rediskit.PoolStats{Misses: 3, TotalConns: 6, IdleConns: 3}, d.PoolStats())
}
