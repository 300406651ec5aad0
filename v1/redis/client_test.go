package redis

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientSendsThroughDriver(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Do(gomock.Any(), "SET", "k", "v").Return("OK", nil)
	drv.EXPECT().Do(gomock.Any(), "GET", "k").Return("v", nil)

	require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
	val, err := client.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestClientTranslatesDriverErrors(t *testing.T) {
	client, drv := newTestClient(t)

	drv.EXPECT().Do(gomock.Any(), "GET", "k").Return(nil, context.DeadlineExceeded)

	err := client.Get(context.Background(), "k").Err()
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientNilIsNotLoggedAsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := NewMockDriver(ctrl)
	drv.EXPECT().Name().Return("mock").AnyTimes()
	logger := NewMockLogger(ctrl)
	client := NewClientWithDriver(drv, logger)

	drv.EXPECT().Do(gomock.Any(), "GET", "missing").Return(nil, nil)
	assert.ErrorIs(t, client.Get(context.Background(), "missing").Err(), Nil)

	drv.EXPECT().Do(gomock.Any(), "INCR", "h").Return(ClassifyReply("WRONGTYPE Operation against a key"), nil)
	logger.EXPECT().Error("Redis command failed", gomock.Any(), gomock.Any())
	assert.ErrorIs(t, client.Incr(context.Background(), "h").Err(), ErrWrongType)
}

func TestClientObservesCommands(t *testing.T) {
	client, drv := newTestClient(t)
	obs := &TestObserver{}
	client.WithObserver(obs)

	drv.EXPECT().Do(gomock.Any(), "HGETALL", "h").Return([]interface{}{"a", "1"}, nil)
	require.NoError(t, client.HGetAll(context.Background(), "h").Err())

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "hgetall", ops[0].Operation)
	assert.Equal(t, "h", ops[0].Resource)
	assert.Equal(t, "direct", ops[0].SubResource)
	assert.Equal(t, int64(2), ops[0].Size)
	assert.Equal(t, "mock", ops[0].Metadata["driver"])
}

func TestClientClose(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Close().Return(nil).Times(1)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	assert.ErrorIs(t, client.Get(ctx, "k").Err(), ErrClosed)
	_, err := client.Pipelined(ctx, func(p *Pipeline) error {
		p.Get(ctx, "k")
		return nil
	})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, client.Watch(ctx, func(*Tx) error { return nil }, "k"), ErrClosed)
	_, err = client.Subscribe(ctx, "c")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClientPoolStats(t *testing.T) {
	client, drv := newTestClient(t)
	drv.EXPECT().PoolStats().Return(PoolStats{TotalConns: 3, IdleConns: 2})

	stats := client.PoolStats()
	assert.Equal(t, uint32(3), stats.TotalConns)
	assert.Equal(t, uint32(2), stats.IdleConns)
	assert.Equal(t, "mock", client.Driver().Name())
}

func TestPipelineExec(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Pipeline(gomock.Any(), [][]interface{}{
		{"SET", "a", "1"},
		{"INCR", "a"},
		{"GET", "missing"},
	}).Return([]Reply{
		{Val: "OK"},
		{Val: int64(2)},
		{Val: nil},
	}, nil)

	var (
		set  *StatusCmd
		incr *IntCmd
		get  *StringCmd
	)
	cmds, err := client.Pipelined(ctx, func(p *Pipeline) error {
		set = p.Set(ctx, "a", "1", 0)
		incr = p.Incr(ctx, "a")
		get = p.Get(ctx, "missing")
		assert.Equal(t, 3, p.Len())
		return nil
	})
	assert.ErrorIs(t, err, Nil)
	require.Len(t, cmds, 3)

	assert.Equal(t, "OK", set.Val())
	assert.Equal(t, int64(2), incr.Val())
	assert.ErrorIs(t, get.Err(), Nil)
}

func TestPipelinePerCommandErrors(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Pipeline(gomock.Any(), gomock.Any()).Return([]Reply{
		{Val: "OK"},
		{Err: ErrWrongType},
	}, nil)

	p := client.Pipeline()
	set := p.Set(ctx, "a", "1", 0)
	incr := p.Incr(ctx, "h")
	_, err := p.Exec(ctx)

	assert.ErrorIs(t, err, ErrWrongType)
	assert.NoError(t, set.Err())
	assert.ErrorIs(t, incr.Err(), ErrWrongType)
	assert.Zero(t, p.Len())
}

func TestPipelineRejectsConnectionStateCommands(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Pipeline(gomock.Any(), [][]interface{}{{"GET", "k"}}).Return([]Reply{{Val: "v"}}, nil)

	p := client.Pipeline()
	watch := NewCmd(toStatus, "WATCH", "k")
	assert.ErrorIs(t, p.Process(ctx, watch), ErrNotSupportedPipelineCommand)
	get := p.Get(ctx, "k")

	cmds, err := p.Exec(ctx)
	assert.ErrorIs(t, err, ErrNotSupportedPipelineCommand)
	require.Len(t, cmds, 2)
	assert.Equal(t, "v", get.Val())
}

func TestPipelineInvalidCommandNotSent(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Pipeline(gomock.Any(), [][]interface{}{{"INCR", "hits"}}).Return([]Reply{{Val: int64(4)}}, nil)

	p := client.Pipeline()
	del := p.Del(ctx)
	incr := p.Incr(ctx, "hits")
	cmds, err := p.Exec(ctx)

	require.Len(t, cmds, 2)
	assert.Same(t, del, cmds[0])
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, del.Err(), ErrInvalidArgument)
	assert.Equal(t, int64(4), incr.Val())
}

func TestTxPipelineInvalidCommandDiscardsTransaction(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().TxPipeline(gomock.Any(), gomock.Any()).Times(0)

	var audit *StatusCmd
	var balance *IntCmd
	cmds, err := client.TxPipelined(ctx, func(p *Pipeline) error {
		audit = p.Set(ctx, "audit", "x", -time.Second)
		balance = p.Incr(ctx, "balance")
		return nil
	})

	require.Len(t, cmds, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, audit.Err(), ErrInvalidArgument)
	assert.ErrorIs(t, balance.Err(), ErrTxAborted)
	assert.Zero(t, balance.Val())
}

func TestPipelineTransportFailure(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Pipeline(gomock.Any(), gomock.Any()).Return(nil, errors.New("broken pipe"))

	p := client.Pipeline()
	a := p.Get(ctx, "a")
	b := p.Get(ctx, "b")
	_, err := p.Exec(ctx)

	require.Error(t, err)
	assert.Error(t, a.Err())
	assert.Error(t, b.Err())
}

func TestPipelineShortReply(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Pipeline(gomock.Any(), gomock.Any()).Return([]Reply{{Val: "v"}}, nil)

	p := client.Pipeline()
	p.Get(ctx, "a")
	p.Get(ctx, "b")
	_, err := p.Exec(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reply count")
}

func TestPipelinedCallbackErrorDiscards(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	boom := errors.New("boom")

	cmds, err := client.Pipelined(ctx, func(p *Pipeline) error {
		p.Get(ctx, "a")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, cmds)
}

func TestTxPipeline(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	obs := &TestObserver{}
	client.WithObserver(obs)

	drv.EXPECT().TxPipeline(gomock.Any(), [][]interface{}{
		{"INCR", "a"},
		{"EXPIRE", "a", int64(10)},
	}).Return([]Reply{{Val: int64(1)}, {Val: int64(1)}}, nil)

	var incr *IntCmd
	_, err := client.TxPipelined(ctx, func(p *Pipeline) error {
		incr = p.Incr(ctx, "a")
		p.Expire(ctx, "a", 10*time.Second)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), incr.Val())

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "multi", ops[0].Operation)
	assert.Equal(t, int64(2), ops[0].Size)
}

func TestTxPipelineRejectsBlockingCommands(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	p := client.TxPipeline()
	blpop := p.BLPop(ctx, 0, "queue")
	assert.ErrorIs(t, blpop.Err(), ErrNotSupportedTransactionCommand)

	xread := p.XRead(ctx, &XReadArgument{Block: BlockForever}, StreamOffset{Stream: "s"})
	assert.ErrorIs(t, xread.Err(), ErrNotSupportedTransactionCommand)

	_, err := p.Exec(ctx)
	assert.ErrorIs(t, err, ErrNotSupportedTransactionCommand)
}

func TestTxPipelineAborted(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().TxPipeline(gomock.Any(), gomock.Any()).Return(nil, ErrTxAborted)

	var set *StatusCmd
	_, err := client.TxPipelined(ctx, func(p *Pipeline) error {
		set = p.Set(ctx, "a", "1", 0)
		return nil
	})
	assert.ErrorIs(t, err, ErrTxAborted)
	assert.ErrorIs(t, set.Err(), ErrTxAborted)
}

func TestWatch(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	conn := NewMockConn(gomock.NewController(t))

	drv.EXPECT().Watch(gomock.Any(), gomock.Any(), "counter").DoAndReturn(
		func(ctx context.Context, fn func(Conn) error, keys ...string) error {
			return fn(conn)
		})
	conn.EXPECT().Do(gomock.Any(), "GET", "counter").Return("41", nil)
	conn.EXPECT().TxPipeline(gomock.Any(), [][]interface{}{{"SET", "counter", "42"}}).
		Return([]Reply{{Val: "OK"}}, nil)

	err := client.Watch(ctx, func(tx *Tx) error {
		n, err := tx.Get(ctx, "counter").Result()
		if err != nil {
			return err
		}
		assert.Equal(t, "41", n)
		_, err = tx.TxPipelined(ctx, func(p *Pipeline) error {
			p.Set(ctx, "counter", "42", 0)
			return nil
		})
		return err
	}, "counter")
	require.NoError(t, err)
}

func TestWatchAbortedAndCallbackErrors(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	boom := errors.New("boom")

	drv.EXPECT().Watch(gomock.Any(), gomock.Any(), "k").Return(ErrTxAborted)
	assert.ErrorIs(t, client.Watch(ctx, func(*Tx) error { return nil }, "k"), ErrTxAborted)

	drv.EXPECT().Watch(gomock.Any(), gomock.Any(), "k").DoAndReturn(
		func(ctx context.Context, fn func(Conn) error, keys ...string) error {
			return fn(nil)
		})
	assert.ErrorIs(t, client.Watch(ctx, func(*Tx) error { return boom }, "k"), boom)

	assert.ErrorIs(t, client.Watch(ctx, func(*Tx) error { return nil }), ErrInvalidArgument)
}

func TestSubscribeAndReceive(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	sub := NewMockSubscription(gomock.NewController(t))

	drv.EXPECT().Subscribe(gomock.Any(), "news").Return(sub, nil)
	sub.EXPECT().Receive(gomock.Any()).Return(&Message{Channel: "news", Payload: "hello"}, nil)
	sub.EXPECT().Subscribe(gomock.Any(), "sport").Return(nil)
	sub.EXPECT().Unsubscribe(gomock.Any()).Return(nil)
	sub.EXPECT().Close().Return(nil).Times(1)

	ps, err := client.Subscribe(ctx, "news")
	require.NoError(t, err)

	msg, err := ps.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "news", msg.Channel)
	assert.Equal(t, "hello", msg.Payload)

	require.NoError(t, ps.Subscribe(ctx, "sport"))
	require.NoError(t, ps.Unsubscribe(ctx))
	require.NoError(t, ps.Close())
	require.NoError(t, ps.Close())
}

func TestSubscribeErrors(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	_, err := client.Subscribe(ctx)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	drv.EXPECT().PSubscribe(gomock.Any(), "news.*").Return(nil, ClassifyReply("NOPERM this user has no permissions"))
	_, err = client.PSubscribe(ctx, "news.*")
	assert.ErrorIs(t, err, ErrPermission)
}

func TestPubSubChannel(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	sub := NewMockSubscription(gomock.NewController(t))

	drv.EXPECT().PSubscribe(gomock.Any(), "news.*").Return(sub, nil)

	release := make(chan struct{})
	gomock.InOrder(
		sub.EXPECT().Receive(gomock.Any()).Return(&Message{Channel: "news.eu", Pattern: "news.*", Payload: "1"}, nil),
		sub.EXPECT().Receive(gomock.Any()).DoAndReturn(func(ctx context.Context) (*Message, error) {
			select {
			case <-ctx.Done():
			case <-release:
			}
			return nil, ErrClosed
		}).AnyTimes(),
	)
	sub.EXPECT().Close().DoAndReturn(func() error {
		close(release)
		return nil
	})

	ps, err := client.PSubscribe(ctx, "news.*")
	require.NoError(t, err)

	ch := ps.Channel(1)
	assert.Equal(t, ch, ps.Channel(10))

	msg := <-ch
	assert.Equal(t, "news.*", msg.Pattern)
	assert.Equal(t, "1", msg.Payload)

	require.NoError(t, ps.Close())
	_, ok := <-ch
	assert.False(t, ok)
}

func TestPubSubChannelReopensLostSubscription(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	first := NewMockSubscription(ctrl)
	second := NewMockSubscription(ctrl)

	drv.EXPECT().Subscribe(gomock.Any(), "news").Return(first, nil)
	first.EXPECT().PSubscribe(gomock.Any(), "alerts.*").Return(nil)
	first.EXPECT().Receive(gomock.Any()).Return(nil, io.EOF)
	first.EXPECT().Close().Return(nil)

	drv.EXPECT().Subscribe(gomock.Any(), "news").Return(second, nil)
	second.EXPECT().PSubscribe(gomock.Any(), "alerts.*").Return(nil)
	release := make(chan struct{})
	gomock.InOrder(
		second.EXPECT().Receive(gomock.Any()).Return(&Message{Channel: "news", Payload: "back"}, nil),
		second.EXPECT().Receive(gomock.Any()).DoAndReturn(func(ctx context.Context) (*Message, error) {
			select {
			case <-ctx.Done():
			case <-release:
			}
			return nil, ErrClosed
		}).AnyTimes(),
	)
	second.EXPECT().Close().DoAndReturn(func() error {
		close(release)
		return nil
	})

	ps, err := client.Subscribe(ctx, "news")
	require.NoError(t, err)
	require.NoError(t, ps.PSubscribe(ctx, "alerts.*"))

	msg := <-ps.Channel(1)
	require.NotNil(t, msg)
	assert.Equal(t, "back", msg.Payload)

	require.NoError(t, ps.Close())
	assert.NoError(t, ps.Err())
}

func TestPubSubChannelStopsWhenReopenFails(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	sub := NewMockSubscription(gomock.NewController(t))

	drv.EXPECT().Subscribe(gomock.Any(), "news").Return(sub, nil)
	sub.EXPECT().Receive(gomock.Any()).Return(nil, io.EOF).AnyTimes()
	drv.EXPECT().Subscribe(gomock.Any(), "news").
		Return(nil, errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")).
		Times(DefaultMaxRetries + 1)
	sub.EXPECT().Close().Return(nil)

	ps, err := client.Subscribe(ctx, "news")
	require.NoError(t, err)

	select {
	case _, ok := <-ps.Channel(1):
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel was not closed")
	}
	assert.ErrorIs(t, ps.Err(), ErrConnectionFailure)
	require.NoError(t, ps.Close())
}
