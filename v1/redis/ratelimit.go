package redis

import (
	"context"
	"fmt"
	"time"
)

// rateLimitScript counts hits in a fixed window that starts with the first hit.
var rateLimitScript = NewScript(`
local current = redis.call("incr", KEYS[1])
if current == 1 then
	redis.call("pexpire", KEYS[1], ARGV[1])
end
return current`)

// RateLimit implements a fixed window rate limiter.
// Returns true if the operation is allowed, false if rate limit is exceeded.
func (r *RedisClient) RateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return false, invalidArgument("rate limit and window must be positive")
	}

	reply, err := rateLimitScript.Run(ctx, r, []string{key}, formatMs(window)).Result()
	if err != nil {
		return false, err
	}
	current, err := toInt64(reply)
	if err != nil {
		return false, err
	}
	return current <= limit, nil
}

// Allow is RateLimit returning ErrRateLimitExceeded instead of false.
func (r *RedisClient) Allow(ctx context.Context, key string, limit int64, window time.Duration) error {
	ok, err := r.RateLimit(ctx, key, limit, window)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrRateLimitExceeded, key)
	}
	return nil
}
