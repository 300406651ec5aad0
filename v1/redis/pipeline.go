package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// batchFunc sends a batch of commands, with or without MULTI/EXEC.
type batchFunc func(ctx context.Context, cmds [][]interface{}) ([]Reply, error)

// Pipeline queues commands and sends them in one round trip on Exec. The
// command methods return deferred results that are filled in by Exec.
//
// A Pipeline is owned by the caller that created it; it is not shared with
// the client and queued commands are never seen by other goroutines.
type Pipeline struct {
	cmdable

	client *RedisClient
	send   batchFunc
	tx     bool

	mu   sync.Mutex
	cmds []Cmder
}

// Pipeline returns a new pipeline.
func (r *RedisClient) Pipeline() *Pipeline {
	return r.newPipeline(false, func(ctx context.Context, cmds [][]interface{}) ([]Reply, error) {
		drv, err := r.current()
		if err != nil {
			return nil, err
		}
		return drv.Pipeline(ctx, cmds)
	})
}

// TxPipeline returns a pipeline whose commands are wrapped in MULTI/EXEC.
// Blocking commands and the SUBSCRIBE family are rejected when queued.
func (r *RedisClient) TxPipeline() *Pipeline {
	return r.newPipeline(true, func(ctx context.Context, cmds [][]interface{}) ([]Reply, error) {
		drv, err := r.current()
		if err != nil {
			return nil, err
		}
		return drv.TxPipeline(ctx, cmds)
	})
}

// Pipelined queues the commands issued by fn and executes them.
func (r *RedisClient) Pipelined(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error) {
	return r.Pipeline().run(ctx, fn)
}

// TxPipelined is Pipelined wrapped in MULTI/EXEC.
func (r *RedisClient) TxPipelined(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error) {
	return r.TxPipeline().run(ctx, fn)
}

func (r *RedisClient) newPipeline(tx bool, send batchFunc) *Pipeline {
	p := &Pipeline{client: r, send: send, tx: tx}
	p.cmdable = p.queue
	return p
}

// queue adds cmd to the pipeline. Commands that cannot be batched or failed
// validation keep their error and are returned by Exec without being sent. A
// transaction holding such a command is discarded as a whole.
func (p *Pipeline) queue(_ context.Context, cmd Cmder) error {
	if err := checkBatchable(cmd, p.tx); err != nil {
		cmd.SetErr(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cmds = append(p.cmds, cmd)
	return cmd.Err()
}

// Process queues a command built with NewCmd.
func (p *Pipeline) Process(ctx context.Context, cmd Cmder) error {
	return p.queue(ctx, cmd)
}

// Len returns the number of queued commands.
func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cmds)
}

// Discard drops all queued commands.
func (p *Pipeline) Discard() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cmds = nil
}

// Exec sends the queued commands and fills in their results. It returns the
// queued commands in order together with the first command error. The queue
// is empty afterwards, so the pipeline can be reused.
func (p *Pipeline) Exec(ctx context.Context) ([]Cmder, error) {
	p.mu.Lock()
	cmds := p.cmds
	p.cmds = nil
	p.mu.Unlock()

	if len(cmds) == 0 {
		return nil, nil
	}

	if p.tx {
		if err := firstCmdError(cmds); err != nil {
			discardTx(cmds, err)
			return cmds, err
		}
	}

	send := make([]Cmder, 0, len(cmds))
	args := make([][]interface{}, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd.Err() == nil {
			send = append(send, cmd)
			args = append(args, cmd.Args())
		}
	}

	if len(send) > 0 {
		start := time.Now()
		replies, err := p.send(ctx, args)
		err = TranslateError(err)
		if err == nil && len(replies) != len(send) {
			err = errors.New("redis: driver returned a reply count different from the command count")
		}
		for i, cmd := range send {
			if err != nil {
				cmd.setReply(nil, err)
				continue
			}
			cmd.setReply(replies[i].Val, TranslateError(replies[i].Err))
		}

		p.client.observeBatch(ctx, p.mode(), send, time.Since(start), err)
		for _, cmd := range send {
			p.client.logCommandError(cmd)
		}
	}

	return cmds, firstCmdError(cmds)
}

func (p *Pipeline) run(ctx context.Context, fn func(*Pipeline) error) ([]Cmder, error) {
	if err := fn(p); err != nil {
		p.Discard()
		return nil, err
	}
	return p.Exec(ctx)
}

func (p *Pipeline) mode() string {
	if p.tx {
		return "multi"
	}
	return "pipeline"
}

// discardTx fails every command of a transaction that holds a rejected
// command, like the server does with EXECABORT. Nothing is sent.
func discardTx(cmds []Cmder, cause error) {
	for _, cmd := range cmds {
		if cmd.Err() == nil {
			cmd.SetErr(fmt.Errorf("%w: transaction discarded because of previous errors: %w", ErrTxAborted, cause))
		}
	}
}

func firstCmdError(cmds []Cmder) error {
	for _, cmd := range cmds {
		if err := cmd.Err(); err != nil {
			return err
		}
	}
	return nil
}
