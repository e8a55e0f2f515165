// Package chain resolves previously created outputs against committed chain state and in-flight blocks.
package chain

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
	"go.uber.org/zap"
)

const (
	defaultLookupRetries         = 3
	defaultLookupInitialInterval = 50 * time.Millisecond
	defaultLookupMaxInterval     = time.Second
)

// OutputResolver looks up outputs in committed storage first and then in the queued batch.
type OutputResolver struct {
	store      OutputStore
	metrics    ResolverMetrics
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

// NewOutputResolver builds a resolver backed by store. metrics may be nil.
func NewOutputResolver(store OutputStore, metrics ResolverMetrics, logger *zap.Logger) *OutputResolver {
	return &OutputResolver{
		store:   store,
		metrics: metrics,
		logger:  logger.Named("outputResolver"),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = defaultLookupInitialInterval
			b.MaxInterval = defaultLookupMaxInterval
			return backoff.WithMaxRetries(b, defaultLookupRetries)
		},
	}
}

// Resolve returns the output named by id. A storage error is retried and reported as LookupFailed
// only once the retries are exhausted.
func (r *OutputResolver) Resolve(ctx context.Context, id model.OutputIdentifier, queued *QueuedBatch) Resolution {
	res := r.resolve(ctx, id, queued)
	if r.metrics != nil {
		r.metrics.ObserveResolve(res.Outcome, res.Source)
	}
	return res
}

func (r *OutputResolver) resolve(ctx context.Context, id model.OutputIdentifier, queued *QueuedBatch) Resolution {
	var output *model.TransactionOutput
	err := backoff.RetryNotify(func() error {
		found, err := r.store.FindOutput(ctx, id)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			return err
		}
		output = found
		return nil
	}, backoff.WithContext(r.newBackOff(), ctx), func(err error, next time.Duration) {
		r.logger.Warn("output lookup failed, retrying",
			zap.Stringer("tx", id.TxHash),
			zap.Uint32("index", id.Index),
			zap.Uint64("segment", uint64(id.Segment)),
			zap.Duration("next", next),
			zap.Error(err))
	})
	if err != nil {
		r.logger.Error("output lookup failed",
			zap.Stringer("tx", id.TxHash),
			zap.Uint32("index", id.Index),
			zap.Error(err))
		return Resolution{Outcome: LookupFailed, Source: SourceCommitted, Err: err}
	}

	if output != nil && output.TxHash == id.TxHash && output.Index == id.Index {
		return Resolution{Outcome: Found, Source: SourceCommitted, Output: *output}
	}

	if out, ok := queued.Output(id.TxHash, id.Index); ok {
		amount, err := safe.Uint64(out.Value)
		if err != nil {
			return Resolution{Outcome: NotFound, Source: SourceNone}
		}
		return Resolution{
			Outcome: Found,
			Source:  SourceQueued,
			Output: model.TransactionOutput{
				TxHash:     id.TxHash,
				Index:      id.Index,
				Amount:     amount,
				LockScript: out.PkScript,
			},
		}
	}

	return Resolution{Outcome: NotFound, Source: SourceNone}
}
