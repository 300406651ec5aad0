package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/rediskit/v1/metrics"
	"github.com/Aleph-Alpha/rediskit/v1/observability"
	"github.com/Aleph-Alpha/rediskit/v1/redis"
)

type benchOptions struct {
	requests    int
	concurrency int
	dataSize    int
	metricsAddr string
}

// latencyRecorder collects per-operation durations reported by the client.
type latencyRecorder struct {
	mu        sync.Mutex
	durations map[string][]time.Duration
	errors    map[string]int
}

func newLatencyRecorder() *latencyRecorder {
	return &latencyRecorder{
		durations: make(map[string][]time.Duration),
		errors:    make(map[string]int),
	}
}

func (l *latencyRecorder) ObserveOperation(op observability.OperationContext) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.durations[op.Operation] = append(l.durations[op.Operation], op.Duration)
	if op.Error != nil {
		l.errors[op.Operation]++
	}
}

func (l *latencyRecorder) report(gs *globalState, elapsed time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ops := make([]string, 0, len(l.durations))
	for op := range l.durations {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	for _, op := range ops {
		d := l.durations[op]
		sort.Slice(d, func(i, j int) bool { return d[i] < d[j] })
		printf(gs, "%-8s n=%-7d err=%-5d rps=%-9.0f p50=%-10s p99=%s\n",
			strings.ToUpper(op), len(d), l.errors[op],
			float64(len(d))/elapsed.Seconds(),
			percentile(d, 0.50), percentile(d, 0.99))
	}
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx].Round(time.Microsecond)
}

func getCmdBench(gs *globalState) *cobra.Command {
	opts := benchOptions{requests: 10000, concurrency: 50, dataSize: 64}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a SET/GET load test",
		Long: `Run a SET/GET load test.

  Every request writes a random key and reads it back. Keys are removed
  afterwards. With --metrics-addr the Prometheus metrics of the run are
  served while it is in progress.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.requests <= 0 || opts.concurrency <= 0 {
				return fmt.Errorf("%w: --requests and --concurrency must be positive", redis.ErrInvalidArgument)
			}
			client, err := gs.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			m := metrics.NewMetrics(metrics.Config{
				Address:     opts.metricsAddr,
				Namespace:   "redisctl",
				ServiceName: "redisctl-bench",
			})
			if err := m.RegisterPool("bench", func() metrics.PoolSnapshot {
				return metrics.PoolSnapshot(client.PoolStats())
			}); err != nil {
				return err
			}
			if opts.metricsAddr != "" {
				go func() {
					if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						printf(gs, "metrics server: %v\n", err)
					}
				}()
				defer m.Server.Shutdown(context.Background())
			}

			rec := newLatencyRecorder()
			client.WithObserver(observability.Multi(m, rec))

			return runBench(cmd.Context(), gs, client, opts, rec)
		},
	}

	benchCmd.Flags().IntVarP(&opts.requests, "requests", "r", opts.requests, "number of SET/GET pairs")
	benchCmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", opts.concurrency, "number of concurrent workers")
	benchCmd.Flags().IntVarP(&opts.dataSize, "data-size", "d", opts.dataSize, "value size in bytes")
	benchCmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics on this address during the run")
	return benchCmd
}

func runBench(ctx context.Context, gs *globalState, client *redis.RedisClient, opts benchOptions, rec *latencyRecorder) error {
	prefix := "redisctl:bench:" + uuid.NewString() + ":"
	value := strings.Repeat("x", opts.dataSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)

	start := time.Now()
	for i := 0; i < opts.requests; i++ {
		key := fmt.Sprintf("%s%d", prefix, i)
		g.Go(func() error {
			if err := client.Set(gctx, key, value, time.Hour).Err(); err != nil {
				return err
			}
			got, err := client.Get(gctx, key).Result()
			if err != nil {
				return err
			}
			if len(got) != len(value) {
				return fmt.Errorf("%s: read %d bytes, wrote %d", key, len(got), len(value))
			}
			return nil
		})
	}
	benchErr := g.Wait()
	elapsed := time.Since(start)

	rec.report(gs, elapsed)
	printf(gs, "total %s\n", elapsed.Round(time.Millisecond))

	// Keys may hash to different slots, so they are removed one DEL each.
	cleanupCtx := context.WithoutCancel(ctx)
	_, cleanupErr := client.Pipelined(cleanupCtx, func(p *redis.Pipeline) error {
		for i := 0; i < opts.requests; i++ {
			p.Del(cleanupCtx, fmt.Sprintf("%s%d", prefix, i))
		}
		return nil
	})
	return multierr.Combine(benchErr, cleanupErr)
}
