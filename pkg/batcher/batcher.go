// Package batcher buffers items and writes them in rate limited batches.
//
// A batch that fails to flush is kept and retried on the next flush; while it is pending Add refuses
// new items, so producers can stop without losing what they already handed over.
package batcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned by Add once Stop was called.
	ErrStopped = errors.New("batcher stopped")
	// ErrFlushFailed is returned by Add while a failed batch waits to be retried.
	ErrFlushFailed = errors.New("batch flush failed")
)

// FlushFunc writes one batch. The slice is reused after it returns.
type FlushFunc[T any] func(context.Context, []T) error

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushFn       FlushFunc[T]
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	failure atomic.Error
	flushed atomic.Uint64

	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

// New constructs a Batcher flushing at most rps batches per second.
func New[T any](logger *zap.Logger, flushFn FlushFunc[T], flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flushFn:       flushFn,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains queued items, makes a last flush attempt and returns its error.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
	return b.failure.Load()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}
	if err := b.failure.Load(); err != nil {
		return fmt.Errorf("%w: %v", ErrFlushFailed, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// Err returns the error of the batch waiting to be retried, if any.
func (b *Batcher[T]) Err() error {
	return b.failure.Load()
}

// Flushed reports how many items were written so far.
func (b *Batcher[T]) Flushed() uint64 {
	return b.flushed.Load()
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flushFn(ctx, buf); err != nil {
			b.failure.Store(err)
			b.logger.Warn("batch not flushed, keeping it for retry", zap.Int("size", len(buf)), zap.Error(err))
			return
		}
		b.failure.Store(nil)
		b.flushed.Add(uint64(len(buf)))
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		buf = buf[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
