package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// replyError mimics an SDK error that carries a Redis error reply.
type replyError string

func (e replyError) Error() string { return string(e) }

func (replyError) RedisError() {}

type timeoutError struct{}

func (timeoutError) Error() string   { return "read tcp: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"wrongtype", replyError("WRONGTYPE Operation against a key holding the wrong kind of value"), ErrWrongType},
		{"noauth", replyError("NOAUTH Authentication required."), ErrAuthentication},
		{"wrongpass", replyError("WRONGPASS invalid username-password pair"), ErrAuthentication},
		{"noperm", replyError("NOPERM this user has no permissions"), ErrPermission},
		{"noscript", replyError("NOSCRIPT No matching script."), ErrNoScript},
		{"busy", replyError("BUSY Redis is busy running a script."), ErrBusy},
		{"readonly", replyError("READONLY You can't write against a read only replica."), ErrReadOnly},
		{"loading", replyError("LOADING Redis is loading the dataset in memory"), ErrLoading},
		{"clusterdown", replyError("CLUSTERDOWN The cluster is down"), ErrClusterDown},
		{"moved", replyError("MOVED 3999 127.0.0.1:6381"), ErrMoved},
		{"ask", replyError("ASK 3999 127.0.0.1:6381"), ErrAsk},
		{"tryagain", replyError("TRYAGAIN Multiple keys request during rehashing of slot"), ErrTryAgain},
		{"crossslot", replyError("CROSSSLOT Keys in request don't hash to the same slot"), ErrCrossSlot},
		{"execabort", replyError("EXECABORT Transaction discarded because of previous errors."), ErrTxAborted},
		{"unknown command", replyError("ERR unknown command 'FOO', with args beginning with: "), ErrUnknownCommand},
		{"generic", replyError("ERR value is not an integer or out of range"), ErrServer},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
		{"net timeout", &net.OpError{Op: "read", Err: timeoutError{}}, ErrTimeout},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("refused")}, ErrConnectionFailure},
		{"econnrefused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), ErrConnectionFailure},
		{"etimedout", syscall.ETIMEDOUT, ErrTimeout},
		{"pool timeout message", errors.New("redis: connection pool timeout"), ErrPoolTimeout},
		{"closed message", errors.New("redis: client is closed"), ErrClosed},
		{"closed pool", errors.New("redigo: get on closed pool"), ErrClosed},
		{"broken pipe message", errors.New("write: broken pipe"), ErrConnectionFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateError(tt.in)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
			assert.True(t, errors.Is(got, tt.in), "original error must stay reachable")
		})
	}
}

func TestTranslateErrorPassThrough(t *testing.T) {
	assert.NoError(t, TranslateError(nil))

	// Cancellation and unknown errors are returned unchanged.
	assert.Equal(t, context.Canceled, TranslateError(context.Canceled))
	assert.Equal(t, io.EOF, TranslateError(io.EOF))

	translated := TranslateError(replyError("WRONGTYPE x"))
	assert.Equal(t, translated, TranslateError(translated))

	wrapped := fmt.Errorf("get user: %w", Nil)
	assert.Equal(t, wrapped, TranslateError(wrapped))
}

func TestServerErrorKeepsReply(t *testing.T) {
	err := TranslateError(replyError("WRONGTYPE Operation against a key holding the wrong kind of value"))

	var srvErr ServerError
	assert.True(t, errors.As(err, &srvErr))
	assert.Contains(t, srvErr.Error(), "Operation against a key")
}

func TestClassifyReply(t *testing.T) {
	assert.Equal(t, ErrNoScript, ClassifyReply("NOSCRIPT No matching script"))
	assert.Equal(t, ErrServer, ClassifyReply("SOMETHING new"))
	assert.Equal(t, ErrServer, ClassifyReply(""))
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNilError(fmt.Errorf("wrap: %w", Nil)))
	assert.False(t, IsNilError(ErrServer))
	assert.True(t, IsClosedError(ErrClosed))
	assert.True(t, IsPoolTimeoutError(ErrPoolTimeout))
	assert.True(t, IsConnectionError(ErrConnectionFailure))
	assert.True(t, IsTxAbortedError(TranslateError(replyError("EXECABORT discarded"))))
}

func TestInvalidArgument(t *testing.T) {
	err := invalidArgument("count %d is negative", -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "count -1 is negative")
}
