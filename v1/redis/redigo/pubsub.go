package redigo

import (
	"context"
	"fmt"
	"sync"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/gomodule/redigo/redis"
)

// subscription wraps a redigo PubSubConn. Receive runs concurrently with the
// (un)subscribe calls, which only write, so writes are serialized by mu.
type subscription struct {
	psc redis.PubSubConn
	mu  sync.Mutex
}

// openSubscription subscribes on rc and waits for the first confirmation so
// that connection and permission errors surface immediately.
func openSubscription(ctx context.Context, rc redis.Conn, pattern bool, names []string) (rediskit.Subscription, error) {
	s := &subscription{psc: redis.PubSubConn{Conn: rc}}

	var err error
	if pattern {
		err = s.PSubscribe(ctx, names...)
	} else {
		err = s.Subscribe(ctx, names...)
	}
	if err == nil {
		err = s.awaitConfirmation(ctx)
	}
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return s, nil
}

func (s *subscription) awaitConfirmation(ctx context.Context) error {
	switch v := s.receive(ctx).(type) {
	case redis.Subscription:
		return nil
	case error:
		return translate(v)
	default:
		return fmt.Errorf("redigo: unexpected subscription reply %T", v)
	}
}

func (s *subscription) receive(ctx context.Context) interface{} {
	if _, ok := s.psc.Conn.(redis.ConnWithContext); ok {
		return s.psc.ReceiveContext(ctx)
	}
	return s.psc.Receive()
}

// Receive returns the next message and skips confirmations and pongs.
func (s *subscription) Receive(ctx context.Context) (*rediskit.Message, error) {
	for {
		switch v := s.receive(ctx).(type) {
		case redis.Message:
			return &rediskit.Message{
				Channel: v.Channel,
				Pattern: v.Pattern,
				Payload: string(v.Data),
			}, nil
		case error:
			return nil, translate(v)
		}
	}
}

func (s *subscription) Subscribe(_ context.Context, channels ...string) error {
	return s.send(s.psc.Subscribe, channels)
}

func (s *subscription) PSubscribe(_ context.Context, patterns ...string) error {
	return s.send(s.psc.PSubscribe, patterns)
}

func (s *subscription) Unsubscribe(_ context.Context, channels ...string) error {
	return s.send(s.psc.Unsubscribe, channels)
}

func (s *subscription) PUnsubscribe(_ context.Context, patterns ...string) error {
	return s.send(s.psc.PUnsubscribe, patterns)
}

func (s *subscription) send(fn func(...interface{}) error, names []string) error {
	args := make([]interface{}, len(names))
	for i, n := range names {
		args[i] = n
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return translate(fn(args...))
}

func (s *subscription) Close() error {
	return translate(s.psc.Close())
}
