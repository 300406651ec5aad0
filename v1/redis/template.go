package redis

import (
	"context"
	"time"
)

// WithSerializer sets the serializer of the object helpers and returns the
// client for method chaining. A nil serializer restores JSONSerializer.
func (r *RedisClient) WithSerializer(s Serializer) *RedisClient {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s == nil {
		s = JSONSerializer{}
	}
	r.serializer = s
	return r
}

func (r *RedisClient) getSerializer() Serializer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.serializer == nil {
		return JSONSerializer{}
	}
	return r.serializer
}

// Key returns key with the configured KeyPrefix.
func (r *RedisClient) Key(key string) string {
	return r.keyPrefix + key
}

// SetObject serializes value and stores it under the prefixed key.
// A zero ttl means no expiration.
func (r *RedisClient) SetObject(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := r.getSerializer().Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, r.Key(key), string(data), ttl).Err()
}

// GetObject loads the value stored under the prefixed key into dest.
// It returns Nil when the key does not exist.
func (r *RedisClient) GetObject(ctx context.Context, key string, dest interface{}) error {
	data, err := r.Get(ctx, r.Key(key)).Result()
	if err != nil {
		return err
	}
	return r.getSerializer().Unmarshal([]byte(data), dest)
}

// HSetObject serializes value into a hash field.
func (r *RedisClient) HSetObject(ctx context.Context, key, field string, value interface{}) error {
	data, err := r.getSerializer().Marshal(value)
	if err != nil {
		return err
	}
	return r.HSet(ctx, r.Key(key), map[string]string{field: string(data)}).Err()
}

// HGetObject loads a hash field into dest. It returns Nil when the field
// does not exist.
func (r *RedisClient) HGetObject(ctx context.Context, key, field string, dest interface{}) error {
	data, err := r.HGet(ctx, r.Key(key), field).Result()
	if err != nil {
		return err
	}
	return r.getSerializer().Unmarshal([]byte(data), dest)
}

// LPushObject serializes values and pushes them to the head of a list.
func (r *RedisClient) LPushObject(ctx context.Context, key string, values ...interface{}) (int64, error) {
	if len(values) == 0 {
		return 0, invalidArgument("LPUSH requires at least one value")
	}
	s := r.getSerializer()
	elements := make([]string, 0, len(values))
	for _, v := range values {
		data, err := s.Marshal(v)
		if err != nil {
			return 0, err
		}
		elements = append(elements, string(data))
	}
	return r.LPush(ctx, r.Key(key), elements...).Result()
}

// RPopObject pops the tail of a list into dest. It returns Nil for an empty list.
func (r *RedisClient) RPopObject(ctx context.Context, key string, dest interface{}) error {
	data, err := r.RPop(ctx, r.Key(key)).Result()
	if err != nil {
		return err
	}
	return r.getSerializer().Unmarshal([]byte(data), dest)
}

// SetJSON serializes the value to JSON regardless of the configured serializer.
func (r *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := JSONSerializer{}.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, r.Key(key), string(data), ttl).Err()
}

// GetJSON retrieves the value from Redis and deserializes it from JSON.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.Get(ctx, r.Key(key)).Result()
	if err != nil {
		return err
	}
	return JSONSerializer{}.Unmarshal([]byte(data), dest)
}

// PublishObject serializes message and publishes it on channel. The channel
// name is not prefixed. It returns the number of receiving clients.
func (r *RedisClient) PublishObject(ctx context.Context, channel string, message interface{}) (int64, error) {
	data, err := r.getSerializer().Marshal(message)
	if err != nil {
		return 0, err
	}
	return r.Publish(ctx, channel, string(data)).Result()
}
