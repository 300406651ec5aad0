package redigo

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn replays scripted replies with redigo's Send/Flush/Receive/Do
// semantics: Do reads every pending reply and returns the last one together
// with the first error reply.
type fakeConn struct {
	replies []interface{}
	sent    [][]interface{}
	pending int
	err     error
	closed  bool
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConn) Err() error { return f.err }

func (f *fakeConn) Send(cmd string, args ...interface{}) error {
	f.sent = append(f.sent, append([]interface{}{cmd}, args...))
	f.pending++
	return nil
}

func (f *fakeConn) Flush() error { return f.err }

func (f *fakeConn) next() (interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		f.err = io.EOF
		return nil, f.err
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	if err, ok := reply.(error); ok {
		if _, isReply := err.(redis.Error); !isReply {
			f.err = err
			return nil, err
		}
	}
	return reply, nil
}

func (f *fakeConn) Receive() (interface{}, error) {
	f.pending--
	reply, err := f.next()
	if err != nil {
		return nil, err
	}
	if e, ok := reply.(redis.Error); ok {
		return nil, e
	}
	return reply, nil
}

func (f *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	if cmd != "" {
		_ = f.Send(cmd, args...)
	}
	var first error
	var reply interface{}
	for f.pending > 0 {
		f.pending--
		r, err := f.next()
		if err != nil {
			return nil, err
		}
		if e, ok := r.(redis.Error); ok && first == nil {
			first = e
		}
		reply = r
	}
	return reply, first
}

func (f *fakeConn) DoContext(_ context.Context, cmd string, args ...interface{}) (interface{}, error) {
	return f.Do(cmd, args...)
}

func (f *fakeConn) ReceiveContext(context.Context) (interface{}, error) {
	return f.Receive()
}

func TestDriverRegistered(t *testing.T) {
	assert.Contains(t, rediskit.Drivers(), Name)
}

func TestConnDo(t *testing.T) {
	ctx := context.Background()
	fc := &fakeConn{replies: []interface{}{
		[]byte("alice"),
		nil,
		[]interface{}{[]byte("a"), nil, int64(3)},
		redis.Error("WRONGTYPE Operation against a key holding the wrong kind of value"),
	}}
	c := conn{rc: fc}

	reply, err := c.Do(ctx, "GET", "user:1")
	require.NoError(t, err)
	assert.Equal(t, "alice", reply)
	assert.Equal(t, []interface{}{"GET", "user:1"}, fc.sent[0])

	reply, err = c.Do(ctx, "GET", "missing")
	require.NoError(t, err)
	assert.Nil(t, reply)

	reply, err = c.Do(ctx, "MGET", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", nil, int64(3)}, reply)

	_, err = c.Do(ctx, "INCR", "list")
	assert.True(t, errors.Is(err, rediskit.ErrWrongType))
}

func TestConnDoRejectsBadArgs(t *testing.T) {
	c := conn{rc: &fakeConn{}}

	_, err := c.Do(context.Background())
	assert.True(t, errors.Is(err, rediskit.ErrInvalidArgument))

	_, err = c.Do(context.Background(), 42)
	assert.True(t, errors.Is(err, rediskit.ErrInvalidArgument))
}

func TestConnPipeline(t *testing.T) {
	fc := &fakeConn{replies: []interface{}{
		"OK",
		redis.Error("WRONGTYPE Operation against a key holding the wrong kind of value"),
		[]byte("v"),
	}}

	replies, err := conn{rc: fc}.Pipeline(context.Background(), [][]interface{}{
		{"SET", "a", "1"},
		{"INCR", "list"},
		{"GET", "b"},
	})
	require.NoError(t, err)
	require.Len(t, replies, 3)

	assert.Equal(t, "OK", replies[0].Val)
	assert.True(t, errors.Is(replies[1].Err, rediskit.ErrWrongType))
	assert.Equal(t, "v", replies[2].Val)
	assert.Len(t, fc.sent, 3)
}

func TestConnPipelineConnectionLost(t *testing.T) {
	fc := &fakeConn{replies: []interface{}{"OK"}}

	replies, err := conn{rc: fc}.Pipeline(context.Background(), [][]interface{}{
		{"SET", "a", "1"},
		{"GET", "a"},
		{"GET", "b"},
	})
	require.NoError(t, err)
	require.NoError(t, replies[0].Err)
	assert.ErrorIs(t, replies[1].Err, io.EOF)
	assert.ErrorIs(t, replies[2].Err, io.EOF)
}

func TestConnTxPipeline(t *testing.T) {
	t.Run("exec", func(t *testing.T) {
		fc := &fakeConn{replies: []interface{}{
			"OK", "QUEUED", "QUEUED",
			[]interface{}{int64(1), redis.Error("WRONGTYPE Operation against a key holding the wrong kind of value")},
		}}

		replies, err := conn{rc: fc}.TxPipeline(context.Background(), [][]interface{}{
			{"INCR", "a"},
			{"INCR", "list"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), replies[0].Val)
		assert.True(t, errors.Is(replies[1].Err, rediskit.ErrWrongType))
		assert.Equal(t, []interface{}{"MULTI"}, fc.sent[0])
		assert.Equal(t, []interface{}{"EXEC"}, fc.sent[3])
	})

	t.Run("aborted by watch", func(t *testing.T) {
		fc := &fakeConn{replies: []interface{}{"OK", "QUEUED", nil}}

		replies, err := conn{rc: fc}.TxPipeline(context.Background(), [][]interface{}{{"INCR", "a"}})
		require.NoError(t, err)
		assert.True(t, errors.Is(replies[0].Err, rediskit.ErrTxAborted))
	})

	t.Run("queueing error", func(t *testing.T) {
		fc := &fakeConn{replies: []interface{}{
			"OK",
			redis.Error("ERR unknown command 'NOPE'"),
			redis.Error("EXECABORT Transaction discarded because of previous errors."),
		}}

		replies, err := conn{rc: fc}.TxPipeline(context.Background(), [][]interface{}{{"NOPE"}})
		require.NoError(t, err)
		assert.True(t, errors.Is(replies[0].Err, rediskit.ErrUnknownCommand))
	})
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.True(t, errors.Is(translate(redis.Error("NOSCRIPT No matching script")), rediskit.ErrNoScript))
	assert.True(t, errors.Is(translate(redis.Error("MOVED 3999 127.0.0.1:6381")), rediskit.ErrMoved))
	assert.True(t, errors.Is(translate(redis.Error("ERR syntax error")), rediskit.ErrServer))
	assert.True(t, errors.Is(translate(redis.ErrPoolExhausted), rediskit.ErrPoolTimeout))
	assert.True(t, errors.Is(translate(context.DeadlineExceeded), rediskit.ErrTimeout))
}

func TestFactoryRejectsUnsupported(t *testing.T) {
	_, err := factory{}.OpenFailover(rediskit.FailoverConfig{MasterName: "mymaster"})
	assert.True(t, errors.Is(err, rediskit.ErrNotSupported))

	_, err = factory{}.Open(rediskit.Config{Protocol: 3})
	assert.True(t, errors.Is(err, rediskit.ErrNotSupported))

	_, err = factory{}.OpenCluster(rediskit.ClusterConfig{Protocol: 3})
	assert.True(t, errors.Is(err, rediskit.ErrNotSupported))
}

func TestRetryPolicy(t *testing.T) {
	p := retryPolicy{max: 2, min: time.Millisecond, maxBackoff: 2 * time.Millisecond}

	calls := 0
	err := p.do(context.Background(), func() error {
		calls++
		return rediskit.ErrConnectionFailure
	})
	assert.ErrorIs(t, err, rediskit.ErrConnectionFailure)
	assert.Equal(t, 3, calls)

	calls = 0
	err = p.do(context.Background(), func() error {
		calls++
		return rediskit.ErrWrongType
	})
	assert.ErrorIs(t, err, rediskit.ErrWrongType)
	assert.Equal(t, 1, calls)

	calls = 0
	err = p.do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return rediskit.ErrLoading
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSubscription(t *testing.T) {
	ctx := context.Background()
	fc := &fakeConn{replies: []interface{}{
		[]interface{}{[]byte("subscribe"), []byte("events"), int64(1)},
		[]interface{}{[]byte("message"), []byte("events"), []byte("hello")},
		[]interface{}{[]byte("pmessage"), []byte("ev*"), []byte("events"), []byte("world")},
	}}

	sub, err := openSubscription(ctx, fc, false, []string{"events"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"SUBSCRIBE", "events"}, fc.sent[0])

	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, &rediskit.Message{Channel: "events", Payload: "hello"}, msg)

	msg, err = sub.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, &rediskit.Message{Channel: "events", Pattern: "ev*", Payload: "world"}, msg)

	_, err = sub.Receive(ctx)
	assert.ErrorIs(t, err, io.EOF)
	_, err = sub.Receive(ctx)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, sub.Close())
	assert.True(t, fc.closed)
}

func TestSubscriptionOpenFailure(t *testing.T) {
	fc := &fakeConn{replies: []interface{}{
		redis.Error("NOPERM this user has no permissions to access the 'events' channel"),
	}}

	_, err := openSubscription(context.Background(), fc, false, []string{"events"})
	assert.True(t, errors.Is(err, rediskit.ErrPermission))
	assert.True(t, fc.closed)
}
