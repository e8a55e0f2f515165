package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

const selectBlocksQuery = `
SELECT
	id,
	hash,
	prev_hash,
	segment,
	height,
	timestamp,
	version,
	merkleroot,
	bits,
	nonce,
	tx_count,
	status
FROM node_blocks FINAL
WHERE network = ? AND `

const insertBlocksQuery = `
INSERT INTO node_blocks (
	network,
	id,
	hash,
	prev_hash,
	segment,
	height,
	timestamp,
	version,
	merkleroot,
	bits,
	nonce,
	tx_count,
	status
) VALUES`

// StoreBlockHeader places block on the block tree and persists it. A known hash returns the stored block.
func (r *Repository) StoreBlockHeader(ctx context.Context, block model.Block) (stored model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("store_block_header", r.network, err, start)
	}()

	r.placeMu.Lock()
	defer r.placeMu.Unlock()

	placed, err := r.placeBlocks(ctx, []model.Block{block})
	if err != nil {
		return model.Block{}, err
	}
	return placed[0], nil
}

// InsertBlockHeaders places blocks in order. A block may name an earlier block of the same call as its parent.
func (r *Repository) InsertBlockHeaders(ctx context.Context, blocks []model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block_headers", r.network, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	r.placeMu.Lock()
	defer r.placeMu.Unlock()

	_, err = r.placeBlocks(ctx, blocks)
	return err
}

func (r *Repository) BlockByHash(ctx context.Context, hash chainhash.Hash) (block *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_by_hash", r.network, err, start)
	}()

	return r.blockByHash(ctx, hash)
}

func (r *Repository) HeadBlock(ctx context.Context, status model.BlockStatus) (block *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("head_block", r.network, err, start)
	}()

	return r.headBlock(ctx, status)
}

// RecentBlockTimes walks back from the head with at least status and returns unix timestamps, newest first.
func (r *Repository) RecentBlockTimes(ctx context.Context, status model.BlockStatus, limit int) (times []int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_block_times", r.network, err, start)
	}()

	block, err := r.headBlock(ctx, status)
	if err != nil {
		return nil, err
	}
	times = make([]int64, 0, limit)
	for block != nil && len(times) < limit {
		times = append(times, block.Timestamp.Unix())
		if block.Height == 0 {
			break
		}
		if block, err = r.blockByHash(ctx, block.PrevHash); err != nil {
			return nil, err
		}
	}
	return times, nil
}

func (r *Repository) SetBlockStatus(ctx context.Context, blockID model.BlockID, status model.BlockStatus) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_block_status", r.network, err, start)
	}()

	block, err := r.blockByID(ctx, blockID)
	if err != nil {
		return err
	}
	if block == nil {
		return fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}
	if block.Status == status {
		return nil
	}
	block.Status = status
	return r.insertBlocks(ctx, []model.Block{*block})
}

// placeBlocks resolves every parent from the batch itself or the store, places the unknown blocks
// and writes them together with the segments they advanced or created.
func (r *Repository) placeBlocks(ctx context.Context, blocks []model.Block) ([]model.Block, error) {
	lookup := make([]chainhash.Hash, 0, 2*len(blocks))
	for _, block := range blocks {
		lookup = append(lookup, block.Hash, block.PrevHash)
	}
	known, err := r.blocksByHashes(ctx, lookup)
	if err != nil {
		return nil, err
	}

	var (
		placed   = make([]model.Block, 0, len(blocks))
		fresh    []model.Block
		segments = make(map[model.ChainSegmentID]model.Segment)
		touched  []model.ChainSegmentID
	)
	for _, block := range blocks {
		if existing, ok := known[block.Hash]; ok {
			placed = append(placed, existing)
			continue
		}

		var (
			parent    *model.Block
			parentSeg *model.Segment
		)
		if p, ok := known[block.PrevHash]; ok {
			parent = &p
			if seg, ok := segments[p.Segment]; ok {
				parentSeg = &seg
			} else if parentSeg, err = r.segment(ctx, p.Segment); err != nil {
				return nil, err
			}
		}

		next, segment, err := chain.Place(block, parent, parentSeg)
		if err != nil {
			return nil, err
		}
		if _, ok := segments[segment.ID]; !ok {
			touched = append(touched, segment.ID)
		}
		segments[segment.ID] = segment
		known[next.Hash] = next
		fresh = append(fresh, next)
		placed = append(placed, next)
	}

	if len(fresh) == 0 {
		return placed, nil
	}
	if err := r.insertBlocks(ctx, fresh); err != nil {
		return nil, err
	}
	updated := make([]model.Segment, 0, len(touched))
	for _, id := range touched {
		updated = append(updated, segments[id])
	}
	if err := r.insertSegments(ctx, updated); err != nil {
		return nil, err
	}
	return placed, nil
}

func (r *Repository) insertBlocks(ctx context.Context, blocks []model.Block) error {
	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			string(r.network),
			uint64(block.ID),
			block.Hash.String(),
			block.PrevHash.String(),
			uint64(block.Segment),
			block.Height,
			block.Timestamp,
			block.Version,
			block.MerkleRoot.String(),
			block.Bits,
			block.Nonce,
			block.TXCount,
			string(block.Status),
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

func (r *Repository) blockByHash(ctx context.Context, hash chainhash.Hash) (*model.Block, error) {
	blocks, err := r.queryBlocks(ctx, "hash = ? LIMIT 1", hash.String())
	if err != nil || len(blocks) == 0 {
		return nil, err
	}
	return &blocks[0], nil
}

func (r *Repository) blockByID(ctx context.Context, id model.BlockID) (*model.Block, error) {
	blocks, err := r.queryBlocks(ctx, "id = ? LIMIT 1", uint64(id))
	if err != nil || len(blocks) == 0 {
		return nil, err
	}
	return &blocks[0], nil
}

func (r *Repository) blocksByHashes(ctx context.Context, hashes []chainhash.Hash) (map[chainhash.Hash]model.Block, error) {
	blocks, err := r.queryBlocks(ctx, "hash IN ?", hashStrings(hashes))
	if err != nil {
		return nil, err
	}
	result := make(map[chainhash.Hash]model.Block, len(blocks))
	for _, block := range blocks {
		result[block.Hash] = block
	}
	return result, nil
}

// headBlock returns the highest block with at least status, preferring the lower id on ties.
func (r *Repository) headBlock(ctx context.Context, status model.BlockStatus) (*model.Block, error) {
	blocks, err := r.queryBlocks(ctx, "status IN ? ORDER BY height DESC, id ASC LIMIT 1", statusesAtLeast(status))
	if err != nil || len(blocks) == 0 {
		return nil, err
	}
	return &blocks[0], nil
}

func (r *Repository) queryBlocks(ctx context.Context, clause string, args ...any) (blocks []model.Block, err error) {
	rows, err := r.conn.Query(ctx, selectBlocksQuery+clause, append([]any{string(r.network)}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		block, scanErr := scanBlock(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		blocks = append(blocks, block)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}
	return blocks, nil
}

func scanBlock(rows Rows) (model.Block, error) {
	var (
		block                      model.Block
		id, segment                uint64
		hash, prevHash, merkleRoot string
		status                     string
	)
	if err := rows.Scan(
		&id,
		&hash,
		&prevHash,
		&segment,
		&block.Height,
		&block.Timestamp,
		&block.Version,
		&merkleRoot,
		&block.Bits,
		&block.Nonce,
		&block.TXCount,
		&status,
	); err != nil {
		return model.Block{}, fmt.Errorf("scan block: %w", err)
	}

	var err error
	if block.Hash, err = parseHash(hash); err != nil {
		return model.Block{}, err
	}
	if block.PrevHash, err = parseHash(prevHash); err != nil {
		return model.Block{}, err
	}
	if block.MerkleRoot, err = parseHash(merkleRoot); err != nil {
		return model.Block{}, err
	}
	block.ID = model.BlockID(id)
	block.Segment = model.ChainSegmentID(segment)
	block.Timestamp = block.Timestamp.UTC()
	block.Status = model.BlockStatus(status)
	return block, nil
}
