package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Common Redis errors. Drivers translate SDK specific failures into these so
// application code can handle errors without knowing which driver is in use.
var (
	// Nil is returned when a key does not exist.
	Nil = errors.New("redis: nil")

	// ErrClosed is returned when the client is closed.
	ErrClosed = errors.New("redis: client is closed")

	// ErrPoolTimeout is returned when all connections in the pool are busy
	// and PoolTimeout was reached.
	ErrPoolTimeout = errors.New("redis: connection pool timeout")

	// ErrConnectionFailure is returned when a connection cannot be established or was lost.
	ErrConnectionFailure = errors.New("redis: connection failure")

	// ErrTimeout is returned when a network operation times out.
	ErrTimeout = errors.New("redis: i/o timeout")

	// ErrAuthentication is returned for NOAUTH and WRONGPASS replies.
	ErrAuthentication = errors.New("redis: authentication failed")

	// ErrPermission is returned for NOPERM replies.
	ErrPermission = errors.New("redis: no permission")

	// ErrWrongType is returned when a command is run against a key holding the wrong kind of value.
	ErrWrongType = errors.New("redis: wrong type")

	// ErrNoScript is returned when EVALSHA references an unknown script.
	ErrNoScript = errors.New("redis: no matching script")

	// ErrBusy is returned while the server runs a script or function.
	ErrBusy = errors.New("redis: server busy")

	// ErrReadOnly is returned when writing against a read only replica.
	ErrReadOnly = errors.New("redis: read only replica")

	// ErrLoading is returned while the server loads its dataset.
	ErrLoading = errors.New("redis: server loading dataset")

	// ErrClusterDown is returned when the cluster is down.
	ErrClusterDown = errors.New("redis: cluster down")

	// ErrMoved is returned for MOVED redirections that were not followed by the driver.
	ErrMoved = errors.New("redis: moved")

	// ErrAsk is returned for ASK redirections that were not followed by the driver.
	ErrAsk = errors.New("redis: ask")

	// ErrTryAgain is returned for TRYAGAIN replies during resharding.
	ErrTryAgain = errors.New("redis: try again")

	// ErrCrossSlot is returned when keys of a single command hash to different slots.
	ErrCrossSlot = errors.New("redis: keys in request don't hash to the same slot")

	// ErrUnknownCommand is returned when the server does not know the command.
	ErrUnknownCommand = errors.New("redis: unknown command")

	// ErrServer is returned for any other error reply sent by the server.
	ErrServer = errors.New("redis: server error")

	// ErrInvalidArgument is returned when command arguments fail client side validation.
	ErrInvalidArgument = errors.New("redis: invalid argument")

	// ErrNotSupported is returned when the selected driver cannot serve an operation.
	ErrNotSupported = errors.New("redis: not supported")

	// ErrNotSupportedTransactionCommand is returned when a command cannot be queued inside MULTI/EXEC.
	ErrNotSupportedTransactionCommand = errors.New("redis: command not supported in transaction")

	// ErrNotSupportedPipelineCommand is returned when a command cannot be queued in a pipeline.
	ErrNotSupportedPipelineCommand = errors.New("redis: command not supported in pipeline")

	// ErrTxAborted is returned when EXEC was aborted because a watched key changed.
	ErrTxAborted = errors.New("redis: transaction aborted")

	// ErrDriverNotFound is returned when no driver is registered under the configured name.
	ErrDriverNotFound = errors.New("redis: driver not found")

	// ErrLockNotAcquired is returned when a lock cannot be acquired.
	ErrLockNotAcquired = errors.New("redis: lock not acquired")

	// ErrLockNotHeld is returned when trying to release a lock that is not held.
	ErrLockNotHeld = errors.New("redis: lock not held")

	// ErrRateLimitExceeded is returned when a rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("redis: rate limit exceeded")
)

// serverErrorPrefixes maps the first word of a Redis error reply to its category.
var serverErrorPrefixes = map[string]error{
	"WRONGTYPE":   ErrWrongType,
	"NOAUTH":      ErrAuthentication,
	"WRONGPASS":   ErrAuthentication,
	"NOPERM":      ErrPermission,
	"NOSCRIPT":    ErrNoScript,
	"BUSY":        ErrBusy,
	"READONLY":    ErrReadOnly,
	"LOADING":     ErrLoading,
	"CLUSTERDOWN": ErrClusterDown,
	"MOVED":       ErrMoved,
	"ASK":         ErrAsk,
	"TRYAGAIN":    ErrTryAgain,
	"CROSSSLOT":   ErrCrossSlot,
	"EXECABORT":   ErrTxAborted,
	"MASTERDOWN":  ErrConnectionFailure,
}

// ServerError is implemented by errors that carry a Redis error reply, such as
// go-redis' redis.Error. Drivers whose reply errors lack the marker method
// classify them with ClassifyReply.
type ServerError interface {
	error
	RedisError()
}

// TranslateError converts driver specific errors into the standardized errors
// defined in this package. The result wraps both the category and the original
// error, so errors.Is works for the category and errors.As still reaches the
// SDK error.
//
// Errors that already carry one of the categories are returned unchanged.
func TranslateError(err error) error {
	if err == nil || isTranslated(err) {
		return err
	}

	if kind := classify(err); kind != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return err
}

// ClassifyReply returns the error category of a raw Redis error reply such as
// "WRONGTYPE Operation against a key holding the wrong kind of value".
// Unknown replies are classified as ErrServer.
func ClassifyReply(reply string) error {
	return classifyReply(reply)
}

func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return nil
	}

	var srvErr ServerError
	if errors.As(err, &srvErr) {
		return classifyReply(srvErr.Error())
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrConnectionFailure
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return translateSyscallError(errno)
	}

	return translateByErrorMessage(strings.ToLower(err.Error()))
}

func classifyReply(reply string) error {
	word := reply
	if i := strings.IndexByte(reply, ' '); i >= 0 {
		word = reply[:i]
	}
	if kind, ok := serverErrorPrefixes[word]; ok {
		return kind
	}
	if word == "ERR" && strings.Contains(strings.ToLower(reply), "unknown command") {
		return ErrUnknownCommand
	}
	return ErrServer
}

func translateSyscallError(errno syscall.Errno) error {
	switch errno {
	case syscall.ETIMEDOUT:
		return ErrTimeout
	case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ECONNABORTED,
		syscall.EPIPE, syscall.ENOTCONN, syscall.ENETUNREACH, syscall.EHOSTUNREACH:
		return ErrConnectionFailure
	default:
		return nil
	}
}

func translateByErrorMessage(errMsg string) error {
	switch {
	case strings.Contains(errMsg, "connection pool timeout"):
		return ErrPoolTimeout
	case strings.Contains(errMsg, "client is closed"),
		strings.Contains(errMsg, "get on closed pool"),
		strings.Contains(errMsg, "use of closed network connection"):
		return ErrClosed
	case strings.Contains(errMsg, "connection refused"),
		strings.Contains(errMsg, "connection reset"),
		strings.Contains(errMsg, "broken pipe"),
		strings.Contains(errMsg, "no route to host"):
		return ErrConnectionFailure
	case strings.Contains(errMsg, "i/o timeout"):
		return ErrTimeout
	default:
		return nil
	}
}

func isTranslated(err error) bool {
	for _, kind := range []error{
		Nil, ErrClosed, ErrPoolTimeout, ErrConnectionFailure, ErrTimeout, ErrAuthentication,
		ErrPermission, ErrWrongType, ErrNoScript, ErrBusy, ErrReadOnly, ErrLoading, ErrClusterDown,
		ErrMoved, ErrAsk, ErrTryAgain, ErrCrossSlot, ErrUnknownCommand, ErrServer, ErrInvalidArgument,
		ErrNotSupported, ErrNotSupportedTransactionCommand, ErrNotSupportedPipelineCommand, ErrTxAborted,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsNilError checks if the error is a "key does not exist" error.
func IsNilError(err error) bool {
	return errors.Is(err, Nil)
}

// IsClosedError checks if the error is a "client is closed" error.
func IsClosedError(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsPoolTimeoutError checks if the error is a pool timeout error.
func IsPoolTimeoutError(err error) bool {
	return errors.Is(err, ErrPoolTimeout)
}

// IsConnectionError checks if the error is caused by the network or a lost connection.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnectionFailure) || errors.Is(err, ErrTimeout)
}

// IsTxAbortedError checks if a watched transaction was aborted.
func IsTxAbortedError(err error) bool {
	return errors.Is(err, ErrTxAborted)
}
