// Package syncer drives chain synchronization: a header downloader that extends the header chain and
// a block downloader that fetches, validates and commits full blocks.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"go.uber.org/zap"
)

// HeaderDownloader follows the best peer's header chain, checks every header against the current
// tip and median time past, and persists accepted headers in batches.
type HeaderDownloader struct {
	logger            *zap.Logger
	network           model.Network
	params            *chaincfg.Params
	peers             PeerManager
	repo              Repository
	checker           HeaderChecker
	writer            HeaderWriter
	metrics           HeaderDownloaderMetrics
	window            *MedianBlockTime
	stats             *ThroughputStats
	sleep             clock.SleepFunc
	failures          *clock.Backoff
	longSleepDuration time.Duration

	tip model.Block
}

func NewHeaderDownloader(
	peers PeerManager,
	repo Repository,
	checker HeaderChecker,
	metrics HeaderDownloaderMetrics,
	network model.Network,
	params *chaincfg.Params,
	logger *zap.Logger,
) (*HeaderDownloader, error) {
	logger = logger.Named("headerDownloader").With(zap.String("network", string(network)))
	switch {
	case peers == nil:
		return nil, errors.New("peer manager is required")
	case repo == nil:
		return nil, errors.New("repository is required")
	case checker == nil:
		return nil, errors.New("header checker is required")
	case metrics == nil:
		return nil, errors.New("header downloader metrics is required")
	case params == nil:
		return nil, errors.New("chain params are required")
	}

	return &HeaderDownloader{
		logger:            logger,
		network:           network,
		params:            params,
		peers:             peers,
		repo:              repo,
		checker:           checker,
		writer:            newHeaderWriter(repo, logger),
		metrics:           metrics,
		window:            NewMedianBlockTime(medianWindowSize),
		stats:             NewThroughputStats(throughputWindow),
		sleep:             clock.SleepWithContext,
		failures:          clock.NewBackoff(sleepDuration, longSleepDuration),
		longSleepDuration: longSleepDuration,
	}, nil
}

// Run downloads headers until ctx is canceled. Headers still buffered when it returns are flushed.
func (s *HeaderDownloader) Run(ctx context.Context) error {
	if err := s.seed(ctx); err != nil {
		return err
	}

	s.writer.Start(context.WithoutCancel(ctx))
	defer s.writer.Stop()

	s.logger.Info("header sync started", zap.Uint64("height", s.tip.Height), zap.Stringer("hash", s.tip.Hash))
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

func (s *HeaderDownloader) seed(ctx context.Context) error {
	tip, err := loadTip(ctx, s.repo, s.params, model.BlockHeader)
	if err != nil {
		return err
	}
	if err := seedWindow(ctx, s.repo, model.BlockHeader, s.window); err != nil {
		return err
	}
	s.tip = tip
	s.metrics.SetTipHeight(tip.Height)
	return nil
}

func (s *HeaderDownloader) run(ctx context.Context) error {
	started := time.Now()
	headers, err := await(ctx, func(callback func([]wire.BlockHeader, error)) {
		s.peers.RequestBlockHeadersAfter(s.tip.Hash, callback)
	})
	if err != nil {
		s.metrics.ObserveHeaders(err, 0, started)
		return fmt.Errorf("request headers after %s: %w", s.tip.Hash, err)
	}

	if len(headers) == 0 {
		s.metrics.ObserveHeaders(nil, 0, started)
		s.logger.Debug("header chain is up to date; sleeping", zap.Duration("sleep", s.longSleepDuration))
		return s.sleep(ctx, s.longSleepDuration)
	}

	accepted, err := s.accept(ctx, headers)
	s.metrics.ObserveHeaders(err, accepted, started)
	s.metrics.SetTipHeight(s.tip.Height)
	s.stats.Add(accepted)

	s.logger.Info("headers synced",
		zap.Int("headers", accepted),
		zap.Uint64("height", s.tip.Height),
		zap.Stringer("hash", s.tip.Hash),
		zap.Float64("headers_per_sec", s.stats.PerSecond()))
	return err
}

func (s *HeaderDownloader) accept(ctx context.Context, headers []wire.BlockHeader) (int, error) {
	for i := range headers {
		header := &headers[i]
		if err := s.checker.Check(header, s.tip.Hash, s.window.Median()); err != nil {
			s.logger.Warn("header rejected",
				zap.Stringer("hash", header.BlockHash()),
				zap.Uint64("height", s.tip.Height+1),
				zap.Error(err))
			return i, fmt.Errorf("header %s: %w", header.BlockHash(), err)
		}

		block := bitcoin.BlockFromHeader(header, s.tip.Height+1, model.BlockHeader)
		if err := s.writer.WriteHeader(ctx, block); err != nil {
			return i, fmt.Errorf("write header %s: %w", block.Hash, err)
		}
		s.tip = block
		s.window.Add(block.Timestamp)
	}
	return len(headers), nil
}
