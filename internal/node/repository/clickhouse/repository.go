// Package clickhouse stores the node's chain state in ClickHouse. Every table is a ReplacingMergeTree;
// updates are written as newer rows and reads use FINAL.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/decred/dcrd/lru"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/cache"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

const segmentCacheSize = 4096

var (
	_ chain.OutputStore      = (*Repository)(nil)
	_ chain.TransactionStore = (*Repository)(nil)
	_ chain.SegmentStore     = (*Repository)(nil)
	_ chain.BlockStore       = (*Repository)(nil)
)

type Repository struct {
	conn     Conn
	metrics  Metrics
	network  model.Network
	txIDs    *cache.TransactionIDs
	segments lru.KVCache

	// placeMu serializes header placement so segment heads are read and advanced by one writer.
	placeMu sync.Mutex
}

func NewRepository(dsn string, network model.Network, txIDs *cache.TransactionIDs, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if txIDs == nil {
		return nil, errors.New("transaction id cache is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	txIDs.Start()
	return newRepository(driverConn{conn: conn}, network, txIDs, metrics), nil
}

func newRepository(conn Conn, network model.Network, txIDs *cache.TransactionIDs, metrics Metrics) *Repository {
	return &Repository{
		conn:     conn,
		metrics:  metrics,
		network:  network,
		txIDs:    txIDs,
		segments: lru.NewKVCache(segmentCacheSize),
	}
}

// Close stops the caches and closes the connection.
func (r *Repository) Close() error {
	r.txIDs.Stop()
	return r.conn.Close()
}

type driverConn struct {
	conn clickhouse.Conn
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
