// Package workerpool runs a function over a slice of items with bounded concurrency.
package workerpool

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Process runs process over items on at most workerCount goroutines.
// The first error cancels the context handed to the remaining calls and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit(workerCount, len(items)))

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return process(gctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Each runs process over every item on at most workerCount goroutines and joins the errors.
// A failing item does not stop the others.
func Each[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(limit(workerCount, len(items)))

	for _, item := range items {
		g.Go(func() error {
			if err := process(ctx, item); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func limit(workerCount, items int) int {
	if workerCount <= 0 || workerCount > items {
		workerCount = items
	}
	if workerCount == 0 {
		return 1
	}
	return workerCount
}
