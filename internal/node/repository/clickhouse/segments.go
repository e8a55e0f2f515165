package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

const insertSegmentsQuery = `
INSERT INTO node_segments (
	network,
	id,
	parent,
	fork_height,
	head_block,
	head_height
) VALUES`

// IsConnected reports whether the block lies on the chain ending at the head of segment.
func (r *Repository) IsConnected(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID) (connected bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("is_connected", r.network, err, start)
	}()

	block, err := r.blockByID(ctx, blockID)
	if err != nil {
		return false, err
	}
	if block == nil {
		return false, fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}
	return chain.Connected(ctx, *block, segment, r.segment)
}

func (r *Repository) SegmentForHead(ctx context.Context, blockID model.BlockID) (segment model.ChainSegmentID, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("segment_for_head", r.network, err, start)
	}()

	block, err := r.blockByID(ctx, blockID)
	if err != nil {
		return 0, err
	}
	if block == nil {
		return 0, fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}
	return block.Segment, nil
}

// segment returns the stored segment or nil. Segment heads only move forward under placeMu, so cached
// entries are refreshed on every write.
func (r *Repository) segment(ctx context.Context, id model.ChainSegmentID) (seg *model.Segment, err error) {
	if cached, ok := r.segments.Lookup(id); ok {
		s := cached.(model.Segment)
		return &s, nil
	}

	const query = `
SELECT
	parent,
	fork_height,
	head_block,
	head_height
FROM node_segments FINAL
WHERE network = ? AND id = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(r.network), uint64(id))
	if err != nil {
		return nil, fmt.Errorf("query segment: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate segment: %w", err)
		}
		return nil, nil
	}

	var parent, headBlock uint64
	found := model.Segment{ID: id}
	if err = rows.Scan(&parent, &found.ForkHeight, &headBlock, &found.HeadHeight); err != nil {
		return nil, fmt.Errorf("scan segment: %w", err)
	}
	found.Parent = model.ChainSegmentID(parent)
	found.HeadBlock = model.BlockID(headBlock)

	r.segments.Add(id, found)
	return &found, nil
}

func (r *Repository) insertSegments(ctx context.Context, segments []model.Segment) error {
	batch, err := r.conn.PrepareBatch(ctx, insertSegmentsQuery)
	if err != nil {
		return fmt.Errorf("prepare segments batch: %w", err)
	}

	for _, seg := range segments {
		if err = batch.Append(
			string(r.network),
			uint64(seg.ID),
			uint64(seg.Parent),
			seg.ForkHeight,
			uint64(seg.HeadBlock),
			seg.HeadHeight,
		); err != nil {
			return fmt.Errorf("append segment: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert segments: %w", err)
	}
	for _, seg := range segments {
		r.segments.Add(seg.ID, seg)
	}
	return nil
}
