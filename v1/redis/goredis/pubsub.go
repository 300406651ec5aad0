package goredis

import (
	"context"

	rediskit "github.com/Aleph-Alpha/rediskit/v1/redis"
	"github.com/redis/go-redis/v9"
)

type subscription struct {
	ps *redis.PubSub
}

// subscribe waits for the first confirmation so that connection and
// authentication errors surface when the subscription is opened.
func subscribe(ctx context.Context, ps *redis.PubSub) (rediskit.Subscription, error) {
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, translate(err)
	}
	return &subscription{ps: ps}, nil
}

func (s *subscription) Receive(ctx context.Context) (*rediskit.Message, error) {
	msg, err := s.ps.ReceiveMessage(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return &rediskit.Message{
		Channel: msg.Channel,
		Pattern: msg.Pattern,
		Payload: msg.Payload,
	}, nil
}

func (s *subscription) Subscribe(ctx context.Context, channels ...string) error {
	return translate(s.ps.Subscribe(ctx, channels...))
}

func (s *subscription) PSubscribe(ctx context.Context, patterns ...string) error {
	return translate(s.ps.PSubscribe(ctx, patterns...))
}

func (s *subscription) Unsubscribe(ctx context.Context, channels ...string) error {
	return translate(s.ps.Unsubscribe(ctx, channels...))
}

func (s *subscription) PUnsubscribe(ctx context.Context, patterns ...string) error {
	return translate(s.ps.PUnsubscribe(ctx, patterns...))
}

func (s *subscription) Close() error {
	return translate(s.ps.Close())
}
