package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	releaseLockScript = NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`)

	refreshLockScript = NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end`)
)

// Lock represents a distributed lock held on a single key.
type Lock struct {
	client *RedisClient
	key    string
	value  string
	ttl    time.Duration
}

// AcquireLock attempts to acquire a distributed lock on key that expires
// after ttl. It returns ErrLockNotAcquired if the lock is held by someone else.
func (r *RedisClient) AcquireLock(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	if ttl <= 0 {
		return nil, invalidArgument("lock ttl must be positive")
	}

	// A random token ensures only the lock holder can release it.
	value := uuid.NewString()

	acquired, err := r.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, key)
	}

	return &Lock{
		client: r,
		key:    key,
		value:  value,
		ttl:    ttl,
	}, nil
}

// Key returns the locked key.
func (l *Lock) Key() string {
	return l.key
}

// Token returns the random value identifying this holder.
func (l *Lock) Token() string {
	return l.value
}

// Release releases the lock. It returns ErrLockNotHeld when the lock expired
// or was taken over in the meantime.
func (l *Lock) Release(ctx context.Context) error {
	n, err := l.run(ctx, releaseLockScript, l.value)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrLockNotHeld, l.key)
	}
	return nil
}

// Refresh extends the TTL of the lock to its initial ttl.
func (l *Lock) Refresh(ctx context.Context) error {
	n, err := l.run(ctx, refreshLockScript, l.value, formatMs(l.ttl))
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrLockNotHeld, l.key)
	}
	return nil
}

func (l *Lock) run(ctx context.Context, script *Script, args ...interface{}) (int64, error) {
	reply, err := script.Run(ctx, l.client, []string{l.key}, args...).Result()
	if err != nil {
		return 0, err
	}
	return toInt64(reply)
}
