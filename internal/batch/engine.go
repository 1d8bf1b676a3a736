package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// progressEvery is the completion cadence at which progress is
// reported; the final item always reports.
const progressEvery = 10

// RateLimit admits at most Calls processor starts per Interval.
type RateLimit struct {
	Calls    int
	Interval time.Duration
}

type Options struct {
	// BatchSize partitions the items into sequential batches; zero or
	// negative means one batch over the whole collection.
	BatchSize int
	// Concurrency bounds simultaneously outstanding processor calls
	// within a batch; zero or negative means 1.
	Concurrency int
	// RateLimit optionally gates processor starts; nil means no limit.
	RateLimit *RateLimit
	// InterBatchPause sleeps between batches.
	InterBatchPause time.Duration
	// OnProgress, when set, receives (completed, total) every
	// progressEvery completions and on the final item.
	OnProgress func(completed, total int)
}

// Result is one output slot. Err is set when the processor failed or
// panicked for this item; the rest of the batch is unaffected.
type Result[T, R any] struct {
	Index int
	Item  T
	Value R
	Err   error
}

// Run processes items in sequential batches under two independent
// admission gates: a concurrency semaphore and a token-bucket rate
// limiter. A processor call does not start until both gates admit it.
// The output preserves input order regardless of execution order: each
// item writes into its pre-sized slot. Individual failures are
// captured per item and never abort the run. Cancellation is checked
// before each submission; already-completed results are kept and the
// remaining slots carry the context error.
func Run[T, R any](ctx context.Context, items []T, processor func(context.Context, T) (R, error), opts Options) []Result[T, R] {
	total := len(items)
	results := make([]Result[T, R], total)
	for i := range results {
		results[i].Index = i
		results[i].Item = items[i]
	}
	if total == 0 {
		return results
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = total
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var limiter *rate.Limiter
	if opts.RateLimit != nil && opts.RateLimit.Calls > 0 && opts.RateLimit.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.RateLimit.Interval/time.Duration(opts.RateLimit.Calls)), 1)
	}

	sem := semaphore.NewWeighted(int64(concurrency))
	var completed atomic.Int64

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				markCanceled(results, i, err)
				wg.Wait()
				return results
			}
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					markCanceled(results, i, err)
					wg.Wait()
					return results
				}
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				markCanceled(results, i, err)
				wg.Wait()
				return results
			}

			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				defer sem.Release(1)
				defer func() {
					if r := recover(); r != nil {
						results[idx].Err = fmt.Errorf("item processor panicked: %v", r)
					}
					reportProgress(int(completed.Add(1)), total, opts.OnProgress)
				}()

				value, err := processor(ctx, items[idx])
				if err != nil {
					results[idx].Err = err
					return
				}
				results[idx].Value = value
			}(i)
		}
		wg.Wait()

		if end < total && opts.InterBatchPause > 0 {
			time.Sleep(opts.InterBatchPause)
		}
	}
	return results
}

// RunSequential is the preset with concurrency 1 over a single batch,
// so the rate limit applies across the whole collection.
func RunSequential[T, R any](ctx context.Context, items []T, processor func(context.Context, T) (R, error), limit *RateLimit) []Result[T, R] {
	return Run(ctx, items, processor, Options{
		BatchSize:   len(items),
		Concurrency: 1,
		RateLimit:   limit,
		OnProgress:  logProgress,
	})
}

// RunParallel is the preset with caller-chosen concurrency over a
// single batch.
func RunParallel[T, R any](ctx context.Context, items []T, processor func(context.Context, T) (R, error), concurrency int, limit *RateLimit) []Result[T, R] {
	return Run(ctx, items, processor, Options{
		BatchSize:   len(items),
		Concurrency: concurrency,
		RateLimit:   limit,
		OnProgress:  logProgress,
	})
}

func markCanceled[T, R any](results []Result[T, R], from int, err error) {
	for i := from; i < len(results); i++ {
		results[i].Err = fmt.Errorf("submission aborted: %w", err)
	}
}

func reportProgress(completed, total int, onProgress func(int, int)) {
	if onProgress == nil {
		return
	}
	if completed%progressEvery == 0 || completed == total {
		onProgress(completed, total)
	}
}

func logProgress(completed, total int) {
	slog.Info("[BatchEngine] Progress",
		slog.Int("completed", completed),
		slog.Int("total", total))
}
