package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type testUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TestScriptRunFallsBackToEval(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	script := NewScript(`return redis.call("get", KEYS[1])`)

	assert.Len(t, script.Hash(), 40)

	gomock.InOrder(
		drv.EXPECT().Do(gomock.Any(), "EVALSHA", script.Hash(), 1, "k").
			Return(nil, ClassifyReply("NOSCRIPT No matching script. Please use EVAL.")),
		drv.EXPECT().Do(gomock.Any(), "EVAL", `return redis.call("get", KEYS[1])`, 1, "k").
			Return("v", nil),
	)

	val, err := script.Run(ctx, client, []string{"k"}).Result()
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestScriptRunUsesCachedScript(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()
	script := NewScript(`return ARGV[1]`)

	drv.EXPECT().Do(gomock.Any(), "EVALSHA", script.Hash(), 0, "x").Return("x", nil)
	drv.EXPECT().Do(gomock.Any(), "SCRIPT", "EXISTS", script.Hash()).Return([]interface{}{int64(1)}, nil)
	drv.EXPECT().Do(gomock.Any(), "SCRIPT", "LOAD", `return ARGV[1]`).Return(script.Hash(), nil)

	val, err := script.Run(ctx, client, nil, "x").Result()
	require.NoError(t, err)
	assert.Equal(t, "x", val)

	exists, err := script.Exists(ctx, client).Result()
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, exists)

	hash, err := script.Load(ctx, client).Result()
	require.NoError(t, err)
	assert.Equal(t, script.Hash(), hash)
}

func TestAcquireLock(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	var token interface{}
	drv.EXPECT().Do(gomock.Any(), "SET", "jobs:lock", gomock.Any(), "NX", "PX", int64(1500)).
		DoAndReturn(func(_ context.Context, args ...interface{}) (interface{}, error) {
			token = args[2]
			return "OK", nil
		})

	lock, err := client.AcquireLock(ctx, "jobs:lock", 1500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "jobs:lock", lock.Key())
	assert.Equal(t, token, lock.Token())
	assert.NotEmpty(t, lock.Token())

	drv.EXPECT().Do(gomock.Any(), "EVALSHA", refreshLockScript.Hash(), 1, "jobs:lock", lock.Token(), int64(1500)).
		Return(int64(1), nil)
	require.NoError(t, lock.Refresh(ctx))

	drv.EXPECT().Do(gomock.Any(), "EVALSHA", releaseLockScript.Hash(), 1, "jobs:lock", lock.Token()).
		Return(int64(1), nil)
	require.NoError(t, lock.Release(ctx))

	drv.EXPECT().Do(gomock.Any(), "EVALSHA", releaseLockScript.Hash(), 1, "jobs:lock", lock.Token()).
		Return(int64(0), nil)
	assert.ErrorIs(t, lock.Release(ctx), ErrLockNotHeld)
}

func TestAcquireLockHeldElsewhere(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Do(gomock.Any(), "SET", "jobs:lock", gomock.Any(), "NX", "EX", int64(5)).Return(nil, nil)

	lock, err := client.AcquireLock(ctx, "jobs:lock", 5*time.Second)
	assert.Nil(t, lock)
	assert.ErrorIs(t, err, ErrLockNotAcquired)

	_, err = client.AcquireLock(ctx, "jobs:lock", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRateLimit(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	gomock.InOrder(
		drv.EXPECT().Do(gomock.Any(), "EVALSHA", rateLimitScript.Hash(), 1, "rl:user", int64(60000)).Return(int64(1), nil),
		drv.EXPECT().Do(gomock.Any(), "EVALSHA", rateLimitScript.Hash(), 1, "rl:user", int64(60000)).Return(int64(2), nil),
		drv.EXPECT().Do(gomock.Any(), "EVALSHA", rateLimitScript.Hash(), 1, "rl:user", int64(60000)).Return(int64(3), nil),
	)

	ok, err := client.RateLimit(ctx, "rl:user", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, client.Allow(ctx, "rl:user", 2, time.Minute))
	assert.ErrorIs(t, client.Allow(ctx, "rl:user", 2, time.Minute), ErrRateLimitExceeded)

	_, err = client.RateLimit(ctx, "rl:user", 0, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestObjectHelpersUseKeyPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := NewMockDriver(ctrl)
	drv.EXPECT().Name().Return("mock").AnyTimes()
	client := newRedisClient(drv, nil, "app:", nopLogger{})
	ctx := context.Background()

	assert.Equal(t, "app:user:1", client.Key("user:1"))

	drv.EXPECT().Do(gomock.Any(), "SET", "app:user:1", `{"name":"Ada","email":"ada@example.com"}`, "EX", int64(60)).
		Return("OK", nil)
	require.NoError(t, client.SetObject(ctx, "user:1", testUser{Name: "Ada", Email: "ada@example.com"}, time.Minute))

	drv.EXPECT().Do(gomock.Any(), "GET", "app:user:1").Return(`{"name":"Ada","email":"ada@example.com"}`, nil)
	var got testUser
	require.NoError(t, client.GetObject(ctx, "user:1", &got))
	assert.Equal(t, "Ada", got.Name)

	drv.EXPECT().Do(gomock.Any(), "GET", "app:user:2").Return(nil, nil)
	assert.ErrorIs(t, client.GetObject(ctx, "user:2", &got), Nil)

	drv.EXPECT().Do(gomock.Any(), "HSET", "app:users", "1", `{"name":"Ada","email":""}`).Return(int64(1), nil)
	require.NoError(t, client.HSetObject(ctx, "users", "1", testUser{Name: "Ada"}))

	drv.EXPECT().Do(gomock.Any(), "HGET", "app:users", "1").Return(`{"name":"Ada","email":""}`, nil)
	require.NoError(t, client.HGetObject(ctx, "users", "1", &got))
	assert.Empty(t, got.Email)
}

func TestListObjectHelpers(t *testing.T) {
	client, drv := newTestClient(t)
	ctx := context.Background()

	drv.EXPECT().Do(gomock.Any(), "LPUSH", "queue", `{"name":"a","email":""}`, `{"name":"b","email":""}`).
		Return(int64(2), nil)
	n, err := client.LPushObject(ctx, "queue", testUser{Name: "a"}, testUser{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	drv.EXPECT().Do(gomock.Any(), "RPOP", "queue").Return(`{"name":"a","email":""}`, nil)
	var got testUser
	require.NoError(t, client.RPopObject(ctx, "queue", &got))
	assert.Equal(t, "a", got.Name)

	drv.EXPECT().Do(gomock.Any(), "PUBLISH", "users", `{"name":"c","email":""}`).Return(int64(3), nil)
	receivers, err := client.PublishObject(ctx, "users", testUser{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), receivers)

	_, err = client.LPushObject(ctx, "queue")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestJSONHelpersIgnoreSerializer(t *testing.T) {
	client, drv := newTestClient(t)
	client.WithSerializer(ProtoSerializer{})
	ctx := context.Background()

	drv.EXPECT().Do(gomock.Any(), "SET", "cfg", `{"a":1}`).Return("OK", nil)
	require.NoError(t, client.SetJSON(ctx, "cfg", map[string]int{"a": 1}, 0))

	drv.EXPECT().Do(gomock.Any(), "GET", "cfg").Return(`{"a":1}`, nil)
	var got map[string]int
	require.NoError(t, client.GetJSON(ctx, "cfg", &got))
	assert.Equal(t, 1, got["a"])
}

func TestProtoSerializer(t *testing.T) {
	client, drv := newTestClient(t)
	client.WithSerializer(ProtoSerializer{})
	ctx := context.Background()

	var stored interface{}
	drv.EXPECT().Do(gomock.Any(), "SET", "greeting", gomock.Any()).
		DoAndReturn(func(_ context.Context, args ...interface{}) (interface{}, error) {
			stored = args[2]
			return "OK", nil
		})
	require.NoError(t, client.SetObject(ctx, "greeting", wrapperspb.String("hello"), 0))

	drv.EXPECT().Do(gomock.Any(), "GET", "greeting").DoAndReturn(
		func(_ context.Context, _ ...interface{}) (interface{}, error) {
			return stored, nil
		})
	got := &wrapperspb.StringValue{}
	require.NoError(t, client.GetObject(ctx, "greeting", got))
	assert.Equal(t, "hello", got.GetValue())

	err := client.SetObject(ctx, "greeting", "not a message", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithSerializerNilRestoresJSON(t *testing.T) {
	client, _ := newTestClient(t)
	client.WithSerializer(nil)
	assert.IsType(t, JSONSerializer{}, client.getSerializer())
}
