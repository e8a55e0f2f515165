package chain

import (
	"context"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

// Place assigns block its id, height and segment given its stored parent. A block extending the head
// of the parent's segment joins it; any other block starts a new segment named after the block.
// The returned segment must be persisted together with the block.
func Place(block model.Block, parent *model.Block, parentSegment *model.Segment) (model.Block, model.Segment, error) {
	block.ID = model.BlockIDFromHash(block.Hash)

	if parent == nil {
		if block.PrevHash != (chainhash.Hash{}) {
			return model.Block{}, model.Segment{}, fmt.Errorf("block %s: %w", block.Hash, ErrParentNotFound)
		}
		block.Height = 0
		block.Segment = model.ChainSegmentID(block.ID)
		return block, model.Segment{
			ID:         block.Segment,
			HeadBlock:  block.ID,
			HeadHeight: 0,
		}, nil
	}
	if parentSegment == nil {
		return model.Block{}, model.Segment{}, fmt.Errorf("segment %d of block %s: %w", parent.Segment, parent.Hash, ErrSegmentNotFound)
	}

	block.Height = parent.Height + 1
	if parentSegment.HeadBlock == parent.ID {
		segment := *parentSegment
		segment.HeadBlock = block.ID
		segment.HeadHeight = block.Height
		block.Segment = segment.ID
		return block, segment, nil
	}

	block.Segment = model.ChainSegmentID(block.ID)
	return block, model.Segment{
		ID:         block.Segment,
		Parent:     parentSegment.ID,
		ForkHeight: parent.Height,
		HeadBlock:  block.ID,
		HeadHeight: block.Height,
	}, nil
}

// Connected reports whether block lies on the chain ending at the head of segment.
func Connected(
	ctx context.Context,
	block model.Block,
	segment model.ChainSegmentID,
	lookup func(context.Context, model.ChainSegmentID) (*model.Segment, error),
) (bool, error) {
	limit := uint64(math.MaxUint64)
	for id := segment; id != 0; {
		if block.Segment == id {
			return block.Height <= limit, nil
		}
		seg, err := lookup(ctx, id)
		if err != nil {
			return false, err
		}
		if seg == nil {
			return false, fmt.Errorf("segment %d: %w", id, ErrSegmentNotFound)
		}
		limit = min(limit, seg.ForkHeight)
		id = seg.Parent
	}
	return false, nil
}
