// Package main runs the full node: it connects to peers, downloads and validates the chain and keeps
// the UTXO state in ClickHouse or, for regtest runs, in memory.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/cache"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/consensus"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/p2p"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/peer"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/service/syncer"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Network        model.Network `long:"network" env:"NODE_NETWORK" description:"network name" default:"regtest"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"NODE_CLICKHOUSE_DSN" description:"ClickHouse DSN; chain state is kept in memory when empty"`
	Peers          []string      `long:"peer" env:"NODE_PEERS" env-delim:"," description:"seed peer address (host or host:port)"`
	ListenAddr     string        `long:"listen-addr" env:"NODE_LISTEN_ADDR" description:"address to accept inbound peers on"`
	MaxNodes       int           `long:"max-nodes" env:"NODE_MAX_NODES" description:"maximum tracked peers" default:"8"`
	RequestTimeout time.Duration `long:"request-timeout" env:"NODE_REQUEST_TIMEOUT" description:"timeout of a single peer request attempt" default:"5s"`
	MaxAttempts    int           `long:"max-attempts" env:"NODE_MAX_ATTEMPTS" description:"dispatch attempts per peer request" default:"16"`
	RetryInitial   time.Duration `long:"retry-initial" env:"NODE_RETRY_INITIAL" description:"first delay before re-dispatching a failed request" default:"250ms"`
	RetryMax       time.Duration `long:"retry-max" env:"NODE_RETRY_MAX" description:"maximum delay between request re-dispatches" default:"10s"`
	Maintenance    time.Duration `long:"maintenance-interval" env:"NODE_MAINTENANCE_INTERVAL" description:"interval of the idle peer scan" default:"10s"`
	IdleThreshold  time.Duration `long:"idle-threshold" env:"NODE_IDLE_THRESHOLD" description:"silence after which a peer is pinged" default:"30s"`
	HealthyScore   int           `long:"healthy-score" env:"NODE_HEALTHY_SCORE" description:"health above which a peer counts as healthy" default:"50"`
	PingWorkers    int           `long:"ping-workers" env:"NODE_PING_WORKERS" description:"concurrent pings per maintenance round" default:"5"`
	UserAgent      string        `long:"user-agent" env:"NODE_USER_AGENT" description:"user agent announced to peers" default:"blockinsight7000-node"`
	TxIDCacheTTL   time.Duration `long:"txid-cache-ttl" env:"NODE_TXID_CACHE_TTL" description:"transaction id cache ttl" default:"10m"`
	TxIDCacheSize  uint64        `long:"txid-cache-size" env:"NODE_TXID_CACHE_SIZE" description:"transaction id cache capacity" default:"500000"`
	MetricsAddr    string        `long:"metrics-addr" env:"NODE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON        bool          `long:"log-json" env:"NODE_LOG_JSON" description:"emit production JSON logs"`
}

// store is what the node needs from a chain state backend.
type store interface {
	syncer.Repository
	chain.OutputStore
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	newLogger := zap.NewDevelopment
	if cfg.LogJSON {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("node failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, closeRepo, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	p2pCfg := p2p.DefaultConfig(params)
	p2pCfg.UserAgentName = cfg.UserAgent
	factory, err := p2p.NewFactory(p2pCfg, logger)
	if err != nil {
		return fmt.Errorf("init transport factory: %w", err)
	}

	peerCfg := peer.DefaultConfig()
	peerCfg.MaxNodes = cfg.MaxNodes
	peerCfg.RequestTimeout = cfg.RequestTimeout
	peerCfg.MaxAttempts = cfg.MaxAttempts
	peerCfg.RetryInitialInterval = cfg.RetryInitial
	peerCfg.RetryMaxInterval = cfg.RetryMax
	peerCfg.MaintenanceInterval = cfg.Maintenance
	peerCfg.IdleThreshold = cfg.IdleThreshold
	peerCfg.HealthyThreshold = cfg.HealthyScore
	peerCfg.PingConcurrency = cfg.PingWorkers
	peers, err := peer.NewManager(peerCfg, factory, metrics.NewPeerManager(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init peer manager: %w", err)
	}
	peers.Start(ctx)
	defer peers.Stop()

	for _, address := range cfg.Peers {
		if _, err := peers.Connect(address); err != nil {
			logger.Warn("seed peer rejected", zap.String("address", address), zap.Error(err))
		}
	}

	resolver := chain.NewOutputResolver(repo, metrics.NewOutputResolver(cfg.Network), logger)
	validator, err := consensus.NewBlockValidator(
		resolver,
		consensus.NewTxScriptEvaluator(params),
		consensus.NewSanityChecker(params),
		metrics.NewBlockValidator(cfg.Network),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init block validator: %w", err)
	}

	headers, err := syncer.NewHeaderDownloader(
		peers,
		repo,
		consensus.NewHeaderChecker(params),
		metrics.NewHeaderDownloader(cfg.Network),
		cfg.Network,
		params,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init header downloader: %w", err)
	}
	blocks, err := syncer.NewBlockDownloader(
		peers,
		repo,
		consensus.NewHeaderChecker(params),
		validator,
		metrics.NewBlockDownloader(cfg.Network),
		cfg.Network,
		params,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init block downloader: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.ListenAddr != "" {
		listener, err := p2p.NewListener(p2pCfg, peers, logger)
		if err != nil {
			return fmt.Errorf("init listener: %w", err)
		}
		g.Go(func() error {
			return listener.ListenAndServe(ctx, cfg.ListenAddr)
		})
	}
	g.Go(func() error {
		return headers.Run(ctx)
	})
	g.Go(func() error {
		return blocks.Run(ctx)
	})
	return g.Wait()
}

func openStore(cfg config, logger *zap.Logger) (store, func(), error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("no ClickHouse DSN configured, keeping chain state in memory")
		return memory.NewRepository(), func() {}, nil
	}

	repo, err := clickhouse.NewRepository(
		cfg.ClickhouseDSN,
		cfg.Network,
		cache.NewTransactionIDs(cfg.TxIDCacheTTL, cfg.TxIDCacheSize),
		metrics.NewClickhouseRepository(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("init repository: %w", err)
	}
	return repo, func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
