package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
	"go.uber.org/zap"
)

// BlockDownloader extends the validated chain one block at a time: it asks the best peer for the
// hashes following its tip, downloads each block, validates it and commits its transactions.
type BlockDownloader struct {
	logger            *zap.Logger
	network           model.Network
	params            *chaincfg.Params
	peers             PeerManager
	repo              Repository
	checker           HeaderChecker
	validator         BlockValidator
	metrics           BlockDownloaderMetrics
	window            *MedianBlockTime
	stats             *ThroughputStats
	sleep             clock.SleepFunc
	failures          *clock.Backoff
	longSleepDuration time.Duration

	tip model.Block
}

func NewBlockDownloader(
	peers PeerManager,
	repo Repository,
	checker HeaderChecker,
	validator BlockValidator,
	metrics BlockDownloaderMetrics,
	network model.Network,
	params *chaincfg.Params,
	logger *zap.Logger,
) (*BlockDownloader, error) {
	logger = logger.Named("blockDownloader").With(zap.String("network", string(network)))
	switch {
	case peers == nil:
		return nil, errors.New("peer manager is required")
	case repo == nil:
		return nil, errors.New("repository is required")
	case checker == nil:
		return nil, errors.New("header checker is required")
	case validator == nil:
		return nil, errors.New("block validator is required")
	case metrics == nil:
		return nil, errors.New("block downloader metrics is required")
	case params == nil:
		return nil, errors.New("chain params are required")
	}

	return &BlockDownloader{
		logger:            logger,
		network:           network,
		params:            params,
		peers:             peers,
		repo:              repo,
		checker:           checker,
		validator:         validator,
		metrics:           metrics,
		window:            NewMedianBlockTime(medianWindowSize),
		stats:             NewThroughputStats(throughputWindow),
		sleep:             clock.SleepWithContext,
		failures:          clock.NewBackoff(sleepDuration, longSleepDuration),
		longSleepDuration: longSleepDuration,
	}, nil
}

// Run downloads blocks until ctx is canceled. Rejected blocks and storage failures back off and are
// retried on the next iteration.
func (s *BlockDownloader) Run(ctx context.Context) error {
	if err := s.seed(ctx); err != nil {
		return err
	}

	s.logger.Info("block sync started", zap.Uint64("height", s.tip.Height), zap.Stringer("hash", s.tip.Hash))
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := s.failures.Next()
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.failures.Reset()
	}
}

func (s *BlockDownloader) seed(ctx context.Context) error {
	tip, err := loadTip(ctx, s.repo, s.params, model.BlockValidated)
	if err != nil {
		return err
	}
	if err := seedWindow(ctx, s.repo, model.BlockValidated, s.window); err != nil {
		return err
	}
	s.tip = tip
	s.metrics.SetTipHeight(tip.Height)
	return nil
}

func (s *BlockDownloader) run(ctx context.Context) error {
	started := time.Now()
	hashes, err := await(ctx, func(callback func([]chainhash.Hash, error)) {
		s.peers.RequestBlockHashesAfter(s.tip.Hash, callback)
	})
	s.metrics.ObserveHashes(err, len(hashes), started)
	if err != nil {
		return fmt.Errorf("request block hashes after %s: %w", s.tip.Hash, err)
	}

	if len(hashes) == 0 {
		s.logger.Debug("block chain is up to date; sleeping", zap.Duration("sleep", s.longSleepDuration))
		return s.sleep(ctx, s.longSleepDuration)
	}

	for _, hash := range hashes {
		if err := s.processBlock(ctx, hash); err != nil {
			return err
		}
	}
	return nil
}

func (s *BlockDownloader) processBlock(ctx context.Context, hash chainhash.Hash) (err error) {
	started := time.Now()
	txs := 0
	defer func() {
		s.metrics.ObserveBlock(err, txs, started)
	}()

	block, err := await(ctx, func(callback func(*wire.MsgBlock, error)) {
		s.peers.RequestBlock(hash, callback)
	})
	if err != nil {
		return fmt.Errorf("request block %s: %w", hash, err)
	}
	if got := block.BlockHash(); got != hash {
		return fmt.Errorf("requested block %s, received %s", hash, got)
	}
	if err = s.checker.Check(&block.Header, s.tip.Hash, s.window.Median()); err != nil {
		return fmt.Errorf("block %s header: %w", hash, err)
	}

	record := bitcoin.BlockFromHeader(&block.Header, s.tip.Height+1, model.BlockHeader)
	if record.TXCount, err = safe.Uint32(len(block.Transactions)); err != nil {
		return fmt.Errorf("block %s tx count: %w", hash, err)
	}
	stored, err := s.repo.StoreBlockHeader(ctx, record)
	if err != nil {
		return fmt.Errorf("store block %s header: %w", hash, err)
	}
	txs = len(block.Transactions)

	if stored.Status.AtLeast(model.BlockValidated) {
		s.logger.Debug("block already validated", zap.Stringer("hash", hash), zap.Uint64("height", stored.Height))
		s.advance(stored, block)
		return nil
	}

	accepted, err := s.validator.ValidateBlock(ctx, stored.Segment, stored.Height, block)
	if err != nil {
		return fmt.Errorf("validate block %s: %w", hash, err)
	}
	if !accepted {
		return fmt.Errorf("block %s at height %d: %w", hash, stored.Height, ErrBlockRejected)
	}

	if err = s.commit(ctx, stored, block); err != nil {
		return err
	}
	s.advance(stored, block)

	s.logger.Info("block synced",
		zap.Uint64("height", stored.Height),
		zap.Stringer("hash", hash),
		zap.Int("txs", txs),
		zap.Float64("tx_per_sec", s.stats.PerSecond()))
	return nil
}

// commit persists the block's transactions, spends their inputs and marks the block validated. The
// status flips last so a crash in between leaves the block to be validated again; every step is
// idempotent for the same block, so that retry commits cleanly.
func (s *BlockDownloader) commit(ctx context.Context, stored model.Block, block *wire.MsgBlock) error {
	txs := make([]model.Transaction, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		converted, err := bitcoin.ConvertTransaction(tx, stored.ID)
		if err != nil {
			return fmt.Errorf("convert block %s: %w", stored.Hash, err)
		}
		txs = append(txs, converted)
	}

	if _, err := s.repo.InsertTransactions(ctx, stored.ID, stored.Segment, txs); err != nil {
		return fmt.Errorf("insert transactions of block %s: %w", stored.Hash, err)
	}
	if spent := bitcoin.SpentOutputs(block, stored.Segment); len(spent) > 0 {
		if err := s.repo.MarkManySpent(ctx, spent, stored.ID); err != nil {
			return fmt.Errorf("mark outputs spent by block %s: %w", stored.Hash, err)
		}
	}
	if err := s.repo.SetBlockStatus(ctx, stored.ID, model.BlockValidated); err != nil {
		return fmt.Errorf("mark block %s validated: %w", stored.Hash, err)
	}
	return nil
}

func (s *BlockDownloader) advance(stored model.Block, block *wire.MsgBlock) {
	stored.Status = model.BlockValidated
	s.tip = stored
	s.window.Add(block.Header.Timestamp.UTC())
	s.stats.Add(len(block.Transactions))
	s.metrics.SetTipHeight(stored.Height)
}
