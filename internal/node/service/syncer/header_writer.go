package syncer

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/batcher"
	"go.uber.org/zap"
)

type headerWriter struct {
	repo    Repository
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Block]
}

func newHeaderWriter(repo Repository, logger *zap.Logger) *headerWriter {
	w := &headerWriter{
		repo:   repo,
		logger: logger,
	}

	w.batcher = batcher.New[model.Block](
		logger.Named("headerBatcher"),
		w.flush,
		headerBatcherCapacity,
		headerBatcherFlushInterval,
		headerBatcherRPS,
	)
	return w
}

func (w *headerWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *headerWriter) Stop() {
	if err := w.batcher.Stop(); err != nil {
		w.logger.Error("headers left unwritten on stop", zap.Error(err))
	}
}

func (w *headerWriter) WriteHeader(ctx context.Context, block model.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.batcher.Add(ctx, block)
}

func (w *headerWriter) flush(ctx context.Context, blocks []model.Block) error {
	if err := w.repo.InsertBlockHeaders(ctx, blocks); err != nil {
		return err
	}
	w.logger.Debug("InsertBlockHeaders", zap.Int("count", len(blocks)))
	return nil
}
