// Package cache holds the lookup caches owned by the stores.
package cache

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/atomic"
)

const (
	DefaultTransactionIDTTL      = 10 * time.Minute
	DefaultTransactionIDCapacity = 500_000
)

type transactionKey struct {
	segment model.ChainSegmentID
	hash    chainhash.Hash
}

// TransactionIDs maps (segment, tx hash) to the stored transaction id.
// The owning store starts it on open and stops it on close.
type TransactionIDs struct {
	cache   *ttlcache.Cache[transactionKey, model.TransactionID]
	started atomic.Bool
	stopped atomic.Bool
}

// NewTransactionIDs builds a cache evicting entries after ttl or once capacity is reached.
func NewTransactionIDs(ttl time.Duration, capacity uint64) *TransactionIDs {
	if ttl <= 0 {
		ttl = DefaultTransactionIDTTL
	}
	if capacity == 0 {
		capacity = DefaultTransactionIDCapacity
	}
	return &TransactionIDs{
		cache: ttlcache.New[transactionKey, model.TransactionID](
			ttlcache.WithTTL[transactionKey, model.TransactionID](ttl),
			ttlcache.WithCapacity[transactionKey, model.TransactionID](capacity),
		),
	}
}

// Start launches expiry cleanup. Calling it more than once has no effect.
func (c *TransactionIDs) Start() {
	if c.started.CompareAndSwap(false, true) {
		go c.cache.Start()
	}
}

// Stop halts expiry cleanup. It is safe to call Stop multiple times.
func (c *TransactionIDs) Stop() {
	if c.started.Load() && c.stopped.CompareAndSwap(false, true) {
		c.cache.Stop()
	}
}

func (c *TransactionIDs) Get(segment model.ChainSegmentID, hash chainhash.Hash) (model.TransactionID, bool) {
	item := c.cache.Get(transactionKey{segment: segment, hash: hash})
	if item == nil {
		return 0, false
	}
	return item.Value(), true
}

func (c *TransactionIDs) Set(segment model.ChainSegmentID, hash chainhash.Hash, id model.TransactionID) {
	c.cache.Set(transactionKey{segment: segment, hash: hash}, id, ttlcache.DefaultTTL)
}

func (c *TransactionIDs) Len() int {
	return c.cache.Len()
}
