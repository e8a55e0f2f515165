// Package memory keeps the node's chain state in process memory. It backs regtest runs and tests and
// follows the same contracts as the ClickHouse repository.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

var (
	_ chain.OutputStore      = (*Repository)(nil)
	_ chain.TransactionStore = (*Repository)(nil)
	_ chain.SegmentStore     = (*Repository)(nil)
	_ chain.BlockStore       = (*Repository)(nil)
)

type Repository struct {
	mu        sync.RWMutex
	blocks    map[model.BlockID]model.Block
	byHash    map[chainhash.Hash]model.BlockID
	segments  map[model.ChainSegmentID]model.Segment
	txs       map[model.TransactionID]*model.Transaction
	txsByHash map[chainhash.Hash][]model.TransactionID
	spends    map[outputKey][]model.BlockID
}

type outputKey struct {
	tx    model.TransactionID
	index uint32
}

func NewRepository() *Repository {
	return &Repository{
		blocks:    make(map[model.BlockID]model.Block),
		byHash:    make(map[chainhash.Hash]model.BlockID),
		segments:  make(map[model.ChainSegmentID]model.Segment),
		txs:       make(map[model.TransactionID]*model.Transaction),
		txsByHash: make(map[chainhash.Hash][]model.TransactionID),
		spends:    make(map[outputKey][]model.BlockID),
	}
}

func (r *Repository) StoreBlockHeader(_ context.Context, block model.Block) (model.Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storeBlockLocked(block)
}

func (r *Repository) InsertBlockHeaders(_ context.Context, blocks []model.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, block := range blocks {
		if _, err := r.storeBlockLocked(block); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) BlockByHash(_ context.Context, hash chainhash.Hash) (*model.Block, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byHash[hash]
	if !ok {
		return nil, nil
	}
	block := r.blocks[id]
	return &block, nil
}

func (r *Repository) HeadBlock(_ context.Context, status model.BlockStatus) (*model.Block, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	head, ok := r.headLocked(status)
	if !ok {
		return nil, nil
	}
	return &head, nil
}

func (r *Repository) RecentBlockTimes(_ context.Context, status model.BlockStatus, limit int) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	block, ok := r.headLocked(status)
	times := make([]int64, 0, limit)
	for ok && len(times) < limit {
		times = append(times, block.Timestamp.Unix())
		var id model.BlockID
		id, ok = r.byHash[block.PrevHash]
		block = r.blocks[id]
	}
	return times, nil
}

func (r *Repository) SetBlockStatus(_ context.Context, blockID model.BlockID, status model.BlockStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	block, ok := r.blocks[blockID]
	if !ok {
		return fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}
	block.Status = status
	r.blocks[blockID] = block
	return nil
}

func (r *Repository) IsConnected(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	block, ok := r.blocks[blockID]
	if !ok {
		return false, fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}
	return chain.Connected(ctx, block, segment, r.segmentLocked)
}

func (r *Repository) SegmentForHead(_ context.Context, blockID model.BlockID) (model.ChainSegmentID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	block, ok := r.blocks[blockID]
	if !ok {
		return 0, fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}
	return block.Segment, nil
}

func (r *Repository) storeBlockLocked(block model.Block) (model.Block, error) {
	if id, ok := r.byHash[block.Hash]; ok {
		return r.blocks[id], nil
	}

	var (
		parent    *model.Block
		parentSeg *model.Segment
	)
	if id, ok := r.byHash[block.PrevHash]; ok {
		p := r.blocks[id]
		parent = &p
		if seg, ok := r.segments[p.Segment]; ok {
			parentSeg = &seg
		}
	}

	placed, segment, err := chain.Place(block, parent, parentSeg)
	if err != nil {
		return model.Block{}, err
	}
	r.blocks[placed.ID] = placed
	r.byHash[placed.Hash] = placed.ID
	r.segments[segment.ID] = segment
	return placed, nil
}

// headLocked picks the highest block with the requested status, preferring the lower id on ties.
func (r *Repository) headLocked(status model.BlockStatus) (model.Block, bool) {
	var (
		head  model.Block
		found bool
	)
	for _, block := range r.blocks {
		if !block.Status.AtLeast(status) {
			continue
		}
		if !found || block.Height > head.Height || (block.Height == head.Height && block.ID < head.ID) {
			head = block
			found = true
		}
	}
	return head, found
}

func (r *Repository) segmentLocked(_ context.Context, id model.ChainSegmentID) (*model.Segment, error) {
	seg, ok := r.segments[id]
	if !ok {
		return nil, nil
	}
	return &seg, nil
}
