package redis

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"
)

// PubSub is a dedicated Pub/Sub connection. Messages are read either with
// Receive or, exclusively, through Channel.
//
// The Channel reader reopens the subscription with the current channels and
// patterns when the connection is lost. When reopening keeps failing the
// channel is closed and Err reports why.
type PubSub struct {
	client *RedisClient

	mu       sync.Mutex
	sub      Subscription
	channels []string
	patterns []string
	err      error
	ch       chan *Message
	cancel   context.CancelFunc
	done     chan struct{}
	closed   bool
}

// Subscribe opens a Pub/Sub connection subscribed to channels.
func (r *RedisClient) Subscribe(ctx context.Context, channels ...string) (*PubSub, error) {
	if len(channels) == 0 {
		return nil, invalidArgument("SUBSCRIBE requires at least one channel")
	}
	ps, err := r.openPubSub(ctx, "subscribe", channels, func(drv Driver) (Subscription, error) {
		return drv.Subscribe(ctx, channels...)
	})
	if err != nil {
		return nil, err
	}
	ps.channels = slices.Clone(channels)
	return ps, nil
}

// PSubscribe opens a Pub/Sub connection subscribed to channel patterns.
func (r *RedisClient) PSubscribe(ctx context.Context, patterns ...string) (*PubSub, error) {
	if len(patterns) == 0 {
		return nil, invalidArgument("PSUBSCRIBE requires at least one pattern")
	}
	ps, err := r.openPubSub(ctx, "psubscribe", patterns, func(drv Driver) (Subscription, error) {
		return drv.PSubscribe(ctx, patterns...)
	})
	if err != nil {
		return nil, err
	}
	ps.patterns = slices.Clone(patterns)
	return ps, nil
}

func (r *RedisClient) openPubSub(ctx context.Context, operation string, names []string, open func(Driver) (Subscription, error)) (*PubSub, error) {
	drv, err := r.current()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sub, err := open(drv)
	err = TranslateError(err)
	r.observeOperation(ctx, operation, names[0], "pubsub", time.Since(start), err, int64(len(names)), map[string]interface{}{
		"driver": r.driverName(),
	})
	if err != nil {
		r.getLogger().Error("Failed to open Redis subscription", err, map[string]interface{}{"channels": names})
		return nil, err
	}
	return &PubSub{client: r, sub: sub}, nil
}

func (p *PubSub) subscription() Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sub
}

// Receive blocks until the next message arrives or ctx is done.
// Subscription confirmations are not returned.
func (p *PubSub) Receive(ctx context.Context) (*Message, error) {
	msg, err := p.subscription().Receive(ctx)
	return msg, TranslateError(err)
}

// Channel returns a channel that delivers received messages until Close.
// The first call starts a reader goroutine; later calls return the same
// channel and ignore size. Receive must not be used together with Channel.
func (p *PubSub) Channel(size int) <-chan *Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		return p.ch
	}
	p.ch = make(chan *Message, size)
	if p.closed {
		close(p.ch)
		return p.ch
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.pump(ctx)
	return p.ch
}

// Err returns the error that stopped the Channel reader, if any.
func (p *PubSub) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *PubSub) pump(ctx context.Context) {
	defer close(p.done)
	defer close(p.ch)

	backoff := DefaultMinRetryBackoff
	failures := 0
	for {
		msg, err := p.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.client.getLogger().Warn("Redis subscription receive failed", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff *= 2; backoff > DefaultMaxRetryBackoff {
				backoff = DefaultMaxRetryBackoff
			}
			if !connectionLost(err) {
				continue
			}

			if err := p.reopen(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				if failures > DefaultMaxRetries || errors.Is(err, ErrClosed) {
					p.client.getLogger().Error("Giving up on Redis subscription", err, map[string]interface{}{"attempts": failures})
					p.mu.Lock()
					p.err = err
					p.mu.Unlock()
					return
				}
				p.client.getLogger().Warn("Failed to reopen Redis subscription", err, map[string]interface{}{"attempt": failures})
				continue
			}
			failures = 0
			continue
		}
		backoff = DefaultMinRetryBackoff

		select {
		case p.ch <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// connectionLost reports errors after which the subscription connection
// cannot be read again.
func connectionLost(err error) bool {
	return errors.Is(err, ErrConnectionFailure) || errors.Is(err, ErrClosed) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// reopen replaces the subscription with a new one on the current channels
// and patterns.
func (p *PubSub) reopen(ctx context.Context) error {
	drv, err := p.client.current()
	if err != nil {
		return err
	}

	p.mu.Lock()
	channels, patterns := slices.Clone(p.channels), slices.Clone(p.patterns)
	p.mu.Unlock()

	var sub Subscription
	switch {
	case len(channels) > 0:
		sub, err = drv.Subscribe(ctx, channels...)
		if err == nil && len(patterns) > 0 {
			if err = sub.PSubscribe(ctx, patterns...); err != nil {
				_ = sub.Close()
			}
		}
	case len(patterns) > 0:
		sub, err = drv.PSubscribe(ctx, patterns...)
	default:
		return errors.New("redis: subscription has no channels or patterns")
	}
	if err != nil {
		return TranslateError(err)
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = sub.Close()
		return ErrClosed
	}
	old := p.sub
	p.sub = sub
	p.mu.Unlock()

	_ = old.Close()
	p.client.getLogger().Info("Redis subscription reopened", nil, map[string]interface{}{
		"channels": channels,
		"patterns": patterns,
	})
	return nil
}

// Subscribe adds channels to the subscription.
func (p *PubSub) Subscribe(ctx context.Context, channels ...string) error {
	if err := TranslateError(p.subscription().Subscribe(ctx, channels...)); err != nil {
		return err
	}
	p.mu.Lock()
	p.channels = addNames(p.channels, channels)
	p.mu.Unlock()
	return nil
}

// PSubscribe adds patterns to the subscription.
func (p *PubSub) PSubscribe(ctx context.Context, patterns ...string) error {
	if err := TranslateError(p.subscription().PSubscribe(ctx, patterns...)); err != nil {
		return err
	}
	p.mu.Lock()
	p.patterns = addNames(p.patterns, patterns)
	p.mu.Unlock()
	return nil
}

// Unsubscribe removes channels, or all channels when none are given.
func (p *PubSub) Unsubscribe(ctx context.Context, channels ...string) error {
	if err := TranslateError(p.subscription().Unsubscribe(ctx, channels...)); err != nil {
		return err
	}
	p.mu.Lock()
	p.channels = removeNames(p.channels, channels)
	p.mu.Unlock()
	return nil
}

// PUnsubscribe removes patterns, or all patterns when none are given.
func (p *PubSub) PUnsubscribe(ctx context.Context, patterns ...string) error {
	if err := TranslateError(p.subscription().PUnsubscribe(ctx, patterns...)); err != nil {
		return err
	}
	p.mu.Lock()
	p.patterns = removeNames(p.patterns, patterns)
	p.mu.Unlock()
	return nil
}

func addNames(set, names []string) []string {
	for _, name := range names {
		if !slices.Contains(set, name) {
			set = append(set, name)
		}
	}
	return set
}

func removeNames(set, names []string) []string {
	if len(names) == 0 {
		return nil
	}
	return slices.DeleteFunc(set, func(name string) bool {
		return slices.Contains(names, name)
	})
}

// Close closes the connection and stops the Channel reader. It is idempotent.
func (p *PubSub) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	cancel, done, sub := p.cancel, p.done, p.sub
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	err := TranslateError(sub.Close())
	if done != nil {
		<-done
	}
	return err
}
