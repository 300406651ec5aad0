package goredis

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replyError mimics the reply errors go-redis returns for error replies.
type replyError string

func (e replyError) Error() string { return string(e) }

func (replyError) RedisError() {}

func newMockClient(t *testing.T) (*rediskit.RedisClient, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	client := rediskit.NewClientWithDriver(NewDriver(db), nil)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mock
}

func TestDriverRegistered(t *testing.T) {
	assert.Contains(t, rediskit.Drivers(), Name)
}

func TestDriverCommands(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	mock.ExpectDo("SET", "user:1", "alice").SetVal("OK")
	mock.ExpectDo("GET", "user:1").SetVal("alice")
	mock.ExpectDo("GET", "missing").RedisNil()
	mock.ExpectDo("INCR", "counter").SetVal(int64(7))
	mock.ExpectDo("EXPIRE", "counter", int64(60)).SetVal(int64(1))

	require.NoError(t, client.Set(ctx, "user:1", "alice", 0).Err())

	val, err := client.Get(ctx, "user:1").Result()
	require.NoError(t, err)
	assert.Equal(t, "alice", val)

	_, err = client.Get(ctx, "missing").Result()
	assert.True(t, errors.Is(err, rediskit.Nil))

	n, err := client.Incr(ctx, "counter").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	ok, err := client.Expire(ctx, "counter", time.Minute).Result()
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverServerErrorIsTranslated(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	mock.ExpectDo("INCR", "list").SetErr(replyError("WRONGTYPE Operation against a key holding the wrong kind of value"))

	err := client.Incr(ctx, "list").Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, rediskit.ErrWrongType))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverPipeline(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	mock.ExpectDo("SET", "a", "1").SetVal("OK")
	mock.ExpectDo("INCR", "c").SetVal(int64(1))
	mock.ExpectDo("GET", "a").SetVal("1")

	var get *rediskit.StringCmd
	var incr *rediskit.IntCmd
	cmds, err := client.Pipelined(ctx, func(p *rediskit.Pipeline) error {
		p.Set(ctx, "a", "1", 0)
		incr = p.Incr(ctx, "c")
		get = p.Get(ctx, "a")
		return nil
	})

	require.NoError(t, err)
	assert.Len(t, cmds, 3)
	assert.Equal(t, int64(1), incr.Val())
	assert.Equal(t, "1", get.Val())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverPipelineNil(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	mock.ExpectDo("INCR", "c").SetVal(int64(1))
	mock.ExpectDo("GET", "b").RedisNil()

	var get *rediskit.StringCmd
	var incr *rediskit.IntCmd
	cmds, err := client.Pipelined(ctx, func(p *rediskit.Pipeline) error {
		incr = p.Incr(ctx, "c")
		get = p.Get(ctx, "b")
		return nil
	})

	assert.True(t, errors.Is(err, rediskit.Nil))
	assert.Len(t, cmds, 2)
	assert.Equal(t, int64(1), incr.Val())
	assert.True(t, errors.Is(get.Err(), rediskit.Nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverTxPipeline(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	mock.ExpectTxPipeline()
	mock.ExpectDo("INCR", "a").SetVal(int64(1))
	mock.ExpectDo("INCR", "b").SetVal(int64(2))
	mock.ExpectTxPipelineExec()

	cmds, err := client.TxPipelined(ctx, func(p *rediskit.Pipeline) error {
		p.Incr(ctx, "a")
		p.Incr(ctx, "b")
		return nil
	})
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, int64(2), cmds[1].(*rediskit.IntCmd).Val())
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"tx failed", redis.TxFailedErr, rediskit.ErrTxAborted},
		{"closed", redis.ErrClosed, rediskit.ErrClosed},
		{"pool timeout", redis.ErrPoolTimeout, rediskit.ErrPoolTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in)
			assert.True(t, errors.Is(got, tt.want))
			assert.True(t, errors.Is(got, tt.in))
		})
	}

	assert.NoError(t, translate(nil))

	aborted := translate(redis.TxFailedErr)
	assert.Equal(t, aborted, translate(aborted))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, int64(3), normalize(3))
	assert.Equal(t, "raw", normalize([]byte("raw")))
	assert.Equal(t, "12345678901234567890", normalize(new(big.Int).SetUint64(12345678901234567890)))

	got := normalize(map[string]interface{}{"field": []byte("v")})
	assert.Equal(t, map[interface{}]interface{}{"field": "v"}, got)

	nested := normalize([]interface{}{int64(1), []interface{}{[]byte("x")}})
	assert.Equal(t, []interface{}{int64(1), []interface{}{"x"}}, nested)
}
