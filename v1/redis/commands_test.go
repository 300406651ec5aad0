package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgsAndReplies(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		reply    interface{}
		call     func(c cmdable) (interface{}, error)
		wantArgs []interface{}
		want     interface{}
	}{
		{
			name:  "get",
			reply: "bar",
			call: func(c cmdable) (interface{}, error) {
				return c.Get(ctx, "foo").Result()
			},
			wantArgs: []interface{}{"GET", "foo"},
			want:     "bar",
		},
		{
			name:  "set without expiration",
			reply: "OK",
			call: func(c cmdable) (interface{}, error) {
				return c.Set(ctx, "foo", "bar", 0).Result()
			},
			wantArgs: []interface{}{"SET", "foo", "bar"},
			want:     "OK",
		},
		{
			name:  "set with whole seconds",
			reply: "OK",
			call: func(c cmdable) (interface{}, error) {
				return c.Set(ctx, "foo", "bar", 10*time.Second).Result()
			},
			wantArgs: []interface{}{"SET", "foo", "bar", "EX", int64(10)},
			want:     "OK",
		},
		{
			name:  "set with milliseconds",
			reply: "OK",
			call: func(c cmdable) (interface{}, error) {
				return c.Set(ctx, "foo", "bar", 1500*time.Millisecond).Result()
			},
			wantArgs: []interface{}{"SET", "foo", "bar", "PX", int64(1500)},
			want:     "OK",
		},
		{
			name:  "setnx with ttl not applied",
			reply: nil,
			call: func(c cmdable) (interface{}, error) {
				return c.SetNX(ctx, "lock", "me", time.Minute).Result()
			},
			wantArgs: []interface{}{"SET", "lock", "me", "NX", "EX", int64(60)},
			want:     false,
		},
		{
			name:  "incr",
			reply: int64(3),
			call: func(c cmdable) (interface{}, error) {
				return c.Incr(ctx, "counter").Result()
			},
			wantArgs: []interface{}{"INCR", "counter"},
			want:     int64(3),
		},
		{
			name:  "mget keeps missing keys",
			reply: []interface{}{"1", nil},
			call: func(c cmdable) (interface{}, error) {
				vals, err := c.MGet(ctx, "a", "b").Result()
				if err != nil {
					return nil, err
				}
				return []bool{vals[0] != nil && *vals[0] == "1", vals[1] == nil}, nil
			},
			wantArgs: []interface{}{"MGET", "a", "b"},
			want:     []bool{true, true},
		},
		{
			name:  "mset sorts pairs",
			reply: "OK",
			call: func(c cmdable) (interface{}, error) {
				return c.MSet(ctx, map[string]string{"b": "2", "a": "1"}).Result()
			},
			wantArgs: []interface{}{"MSET", "a", "1", "b", "2"},
			want:     "OK",
		},
		{
			name:  "del",
			reply: int64(2),
			call: func(c cmdable) (interface{}, error) {
				return c.Del(ctx, "a", "b").Result()
			},
			wantArgs: []interface{}{"DEL", "a", "b"},
			want:     int64(2),
		},
		{
			name:  "expire",
			reply: int64(1),
			call: func(c cmdable) (interface{}, error) {
				return c.Expire(ctx, "k", time.Minute).Result()
			},
			wantArgs: []interface{}{"EXPIRE", "k", int64(60)},
			want:     true,
		},
		{
			name:  "ttl in seconds",
			reply: int64(30),
			call: func(c cmdable) (interface{}, error) {
				return c.TTL(ctx, "k").Result()
			},
			wantArgs: []interface{}{"TTL", "k"},
			want:     30 * time.Second,
		},
		{
			name:  "ttl of missing key",
			reply: int64(-2),
			call: func(c cmdable) (interface{}, error) {
				return c.TTL(ctx, "k").Result()
			},
			wantArgs: []interface{}{"TTL", "k"},
			want:     time.Duration(-2),
		},
		{
			name:  "scan",
			reply: []interface{}{"17", []interface{}{"a", "b"}},
			call: func(c cmdable) (interface{}, error) {
				return c.Scan(ctx, 0, &ScanArgument{Match: "a*", Count: 10}).Result()
			},
			wantArgs: []interface{}{"SCAN", uint64(0), "MATCH", "a*", "COUNT", int64(10)},
			want:     ScanResult[string]{Cursor: 17, Items: []string{"a", "b"}},
		},
		{
			name:  "hset sorts fields",
			reply: int64(2),
			call: func(c cmdable) (interface{}, error) {
				return c.HSet(ctx, "h", map[string]string{"y": "2", "x": "1"}).Result()
			},
			wantArgs: []interface{}{"HSET", "h", "x", "1", "y", "2"},
			want:     int64(2),
		},
		{
			name:  "hgetall flat reply",
			reply: []interface{}{"x", "1", "y", "2"},
			call: func(c cmdable) (interface{}, error) {
				return c.HGetAll(ctx, "h").Result()
			},
			wantArgs: []interface{}{"HGETALL", "h"},
			want:     map[string]string{"x": "1", "y": "2"},
		},
		{
			name:  "hgetall map reply",
			reply: map[interface{}]interface{}{"x": "1"},
			call: func(c cmdable) (interface{}, error) {
				return c.HGetAll(ctx, "h").Result()
			},
			wantArgs: []interface{}{"HGETALL", "h"},
			want:     map[string]string{"x": "1"},
		},
		{
			name:  "lpush",
			reply: int64(2),
			call: func(c cmdable) (interface{}, error) {
				return c.LPush(ctx, "l", "a", "b").Result()
			},
			wantArgs: []interface{}{"LPUSH", "l", "a", "b"},
			want:     int64(2),
		},
		{
			name:  "lrange of missing key",
			reply: nil,
			call: func(c cmdable) (interface{}, error) {
				return c.LRange(ctx, "l", 0, -1).Result()
			},
			wantArgs: []interface{}{"LRANGE", "l", int64(0), int64(-1)},
			want:     []string{},
		},
		{
			name:  "blpop timeout in seconds",
			reply: []interface{}{"l", "a"},
			call: func(c cmdable) (interface{}, error) {
				return c.BLPop(ctx, 1500*time.Millisecond, "l").Result()
			},
			wantArgs: []interface{}{"BLPOP", "l", "1.5"},
			want:     []string{"l", "a"},
		},
		{
			name:  "sadd",
			reply: int64(1),
			call: func(c cmdable) (interface{}, error) {
				return c.SAdd(ctx, "s", "m").Result()
			},
			wantArgs: []interface{}{"SADD", "s", "m"},
			want:     int64(1),
		},
		{
			name:  "zadd",
			reply: int64(2),
			call: func(c cmdable) (interface{}, error) {
				return c.ZAdd(ctx, "z", Tuple{Member: "a", Score: 1}, Tuple{Member: "b", Score: 2.5}).Result()
			},
			wantArgs: []interface{}{"ZADD", "z", "1", "a", "2.5", "b"},
			want:     int64(2),
		},
		{
			name:  "zrange with scores flat reply",
			reply: []interface{}{"a", "1", "b", "2.5"},
			call: func(c cmdable) (interface{}, error) {
				return c.ZRangeWithScores(ctx, "z", 0, -1).Result()
			},
			wantArgs: []interface{}{"ZRANGE", "z", int64(0), int64(-1), "WITHSCORES"},
			want:     []Tuple{{Member: "a", Score: 1}, {Member: "b", Score: 2.5}},
		},
		{
			name:  "zrange with scores nested reply",
			reply: []interface{}{[]interface{}{"a", float64(1)}},
			call: func(c cmdable) (interface{}, error) {
				return c.ZRangeWithScores(ctx, "z", 0, -1).Result()
			},
			wantArgs: []interface{}{"ZRANGE", "z", int64(0), int64(-1), "WITHSCORES"},
			want:     []Tuple{{Member: "a", Score: 1}},
		},
		{
			name:  "zscore",
			reply: "3.25",
			call: func(c cmdable) (interface{}, error) {
				return c.ZScore(ctx, "z", "a").Result()
			},
			wantArgs: []interface{}{"ZSCORE", "z", "a"},
			want:     3.25,
		},
		{
			name:  "pfadd",
			reply: int64(1),
			call: func(c cmdable) (interface{}, error) {
				return c.PFAdd(ctx, "hll", "a", "b").Result()
			},
			wantArgs: []interface{}{"PFADD", "hll", "a", "b"},
			want:     true,
		},
		{
			name:  "xadd",
			reply: "1-0",
			call: func(c cmdable) (interface{}, error) {
				return c.XAdd(ctx, "s", nil, map[string]string{"f": "v"}).Result()
			},
			wantArgs: []interface{}{"XADD", "s", "*", "f", "v"},
			want:     "1-0",
		},
		{
			name: "xrange",
			reply: []interface{}{
				[]interface{}{"1-0", []interface{}{"f", "v"}},
			},
			call: func(c cmdable) (interface{}, error) {
				return c.XRange(ctx, "s", "-", "+").Result()
			},
			wantArgs: []interface{}{"XRANGE", "s", "-", "+"},
			want:     []XMessage{{ID: "1-0", Values: map[string]string{"f": "v"}}},
		},
		{
			name: "xread",
			reply: []interface{}{
				[]interface{}{"s", []interface{}{
					[]interface{}{"1-0", []interface{}{"f", "v"}},
				}},
			},
			call: func(c cmdable) (interface{}, error) {
				return c.XRead(ctx, nil, StreamOffset{Stream: "s", ID: "0"}).Result()
			},
			wantArgs: []interface{}{"XREAD", "STREAMS", "s", "0"},
			want: []XStream{{Stream: "s", Messages: []XMessage{
				{ID: "1-0", Values: map[string]string{"f": "v"}},
			}}},
		},
		{
			name:  "hexpire",
			reply: []interface{}{int64(1), int64(-2)},
			call: func(c cmdable) (interface{}, error) {
				return c.HExpire(ctx, "h", time.Minute, "", "x", "y").Result()
			},
			wantArgs: []interface{}{"HEXPIRE", "h", int64(60), "FIELDS", 2, "x", "y"},
			want:     []int64{1, -2},
		},
		{
			name:  "ping",
			reply: "PONG",
			call: func(c cmdable) (interface{}, error) {
				return c.Ping(ctx).Result()
			},
			wantArgs: []interface{}{"PING"},
			want:     "PONG",
		},
		{
			name:  "config get",
			reply: []interface{}{"maxmemory", "0"},
			call: func(c cmdable) (interface{}, error) {
				return c.ConfigGet(ctx, "maxmemory").Result()
			},
			wantArgs: []interface{}{"CONFIG", "GET", "maxmemory"},
			want:     map[string]string{"maxmemory": "0"},
		},
		{
			name:  "info",
			reply: "# Server\r\nredis_version:7.4.0\r\n\r\n# Clients\r\nconnected_clients:1\r\n",
			call: func(c cmdable) (interface{}, error) {
				return c.Info(ctx, "server", "clients").Result()
			},
			wantArgs: []interface{}{"INFO", "server", "clients"},
			want: Info{
				"server":  {"redis_version": "7.4.0"},
				"clients": {"connected_clients": "1"},
			},
		},
		{
			name:  "publish",
			reply: int64(1),
			call: func(c cmdable) (interface{}, error) {
				return c.Publish(ctx, "news", "hello").Result()
			},
			wantArgs: []interface{}{"PUBLISH", "news", "hello"},
			want:     int64(1),
		},
		{
			name:  "do",
			reply: "OK",
			call: func(c cmdable) (interface{}, error) {
				return c.Do(ctx, "CLIENT", "NO-EVICT", "on").Result()
			},
			wantArgs: []interface{}{"CLIENT", "NO-EVICT", "on"},
			want:     "OK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, c := newRecorder(tt.reply)
			got, err := tt.call(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, rec.args)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandNilReplies(t *testing.T) {
	ctx := context.Background()
	_, c := newRecorder(nil)

	_, err := c.Get(ctx, "missing").Result()
	assert.ErrorIs(t, err, Nil)

	_, err = c.HGet(ctx, "h", "missing").Result()
	assert.ErrorIs(t, err, Nil)

	_, err = c.ZScore(ctx, "z", "missing").Result()
	assert.ErrorIs(t, err, Nil)

	_, err = c.XRead(ctx, &XReadArgument{Block: time.Second}, StreamOffset{Stream: "s"}).Result()
	assert.ErrorIs(t, err, Nil)

	members, err := c.SMembers(ctx, "missing").Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestCommandValidationDoesNotSend(t *testing.T) {
	ctx := context.Background()
	rec, c := newRecorder("OK")

	cmds := []Cmder{
		c.Do(ctx),
		c.Set(ctx, "k", "v", -time.Second),
		c.Del(ctx),
		c.MGet(ctx),
		c.MSet(ctx, nil),
		c.HSet(ctx, "h", nil),
		c.LPush(ctx, "l"),
		c.SAdd(ctx, "s"),
		c.ZAdd(ctx, "z"),
		c.ZAddArgs(ctx, "z", &ZAddArgument{Mode: NX, Compare: GT}, Tuple{Member: "a"}),
		c.XAdd(ctx, "s", nil, nil),
		c.XRead(ctx, nil),
		c.BLPop(ctx, time.Second),
		c.HExpire(ctx, "h", time.Second, ""),
	}

	for _, cmd := range cmds {
		assert.ErrorIs(t, cmd.Err(), ErrInvalidArgument, cmd.String())
	}
	assert.Zero(t, rec.calls)
}

func TestCommandServerErrorReply(t *testing.T) {
	rec := &recorder{reply: ClassifyReply("WRONGTYPE Operation against a key holding the wrong kind of value")}
	c := rec.cmdable()

	_, err := c.Incr(context.Background(), "h").Result()
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestCommandTransportError(t *testing.T) {
	rec := &recorder{err: ErrConnectionFailure}
	c := rec.cmdable()

	val, err := c.Get(context.Background(), "k").Result()
	assert.ErrorIs(t, err, ErrConnectionFailure)
	assert.Empty(t, val)
}

func TestCommandUnexpectedReply(t *testing.T) {
	_, c := newRecorder([]interface{}{"not", "an", "int"})

	_, err := c.Incr(context.Background(), "k").Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected reply type")
}

func TestCmdNames(t *testing.T) {
	_, c := newRecorder("OK")
	ctx := context.Background()

	get := c.Get(ctx, "k")
	assert.Equal(t, "get", get.Name())
	assert.Equal(t, "get", get.FullName())
	assert.Equal(t, "k", get.firstKey())

	cfg := c.ConfigGet(ctx, "*")
	assert.Equal(t, "config", cfg.Name())
	assert.Equal(t, "config get", cfg.FullName())
	assert.Empty(t, cfg.firstKey())

	xr := c.XRead(ctx, &XReadArgument{Count: 1}, StreamOffset{Stream: "events", ID: "0"})
	assert.Equal(t, "events", xr.firstKey())
}

func TestCmdString(t *testing.T) {
	cmd := NewCmd(toString, "GET", "k")
	cmd.setReply("v", nil)
	assert.Equal(t, "GET k: v", cmd.String())

	cmd = NewCmd(toString, "GET", "k")
	cmd.setReply(nil, nil)
	assert.Equal(t, "GET k: "+Nil.Error(), cmd.String())
}

func TestNewCmdCustomConverter(t *testing.T) {
	rec, c := newRecorder(int64(7))
	cmd := NewCmd(func(reply interface{}) (int, error) {
		n, ok := reply.(int64)
		if !ok {
			return 0, errors.New("not an integer")
		}
		return int(n) * 2, nil
	}, "OBJECT", "FREQ", "k")

	require.NoError(t, c(context.Background(), cmd))
	assert.Equal(t, 14, cmd.Val())
	assert.Equal(t, []interface{}{"OBJECT", "FREQ", "k"}, rec.args)
	assert.Equal(t, "object freq", cmd.FullName())
}

func TestCheckBatchable(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Cmder
		tx      bool
		wantErr error
	}{
		{"get in pipeline", NewCmd(toString, "GET", "k"), false, nil},
		{"watch in pipeline", NewCmd(toStatus, "WATCH", "k"), false, ErrNotSupportedPipelineCommand},
		{"subscribe in tx", NewCmd(toInterface, "SUBSCRIBE", "c"), true, ErrNotSupportedTransactionCommand},
		{"blpop in pipeline", NewCmd(toStringSlice, "BLPOP", "k", "0"), false, nil},
		{"blpop in tx", NewCmd(toStringSlice, "BLPOP", "k", "0"), true, ErrNotSupportedTransactionCommand},
		{"xread block in tx", NewCmd(toXStreams, "XREAD", "BLOCK", int64(0), "STREAMS", "s", "$"), true, ErrNotSupportedTransactionCommand},
		{"xread without block in tx", NewCmd(toXStreams, "XREAD", "COUNT", int64(1), "STREAMS", "block", "$"), true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkBatchable(tt.cmd, tt.tx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
