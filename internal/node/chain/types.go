package chain

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// OutputStore resolves and spends committed outputs. FindOutput returns nil, nil when the output is
	// absent on the requested segment, and reports it spent only when a spending block lies on that
	// segment's chain. Recording the same spender twice is a no-op.
	OutputStore interface {
		FindOutput(ctx context.Context, id model.OutputIdentifier) (*model.TransactionOutput, error)
		MarkSpent(ctx context.Context, id model.OutputIdentifier, spender model.BlockID) error
		MarkManySpent(ctx context.Context, ids []model.OutputIdentifier, spender model.BlockID) error
	}

	// TransactionStore persists transactions and resolves their ids on a segment.
	TransactionStore interface {
		ResolveTxID(ctx context.Context, segment model.ChainSegmentID, hash chainhash.Hash) (model.TransactionID, bool, error)
		InsertTransaction(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID, tx model.Transaction) (model.TransactionID, error)
		InsertTransactions(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID, txs []model.Transaction) ([]model.TransactionID, error)
	}

	// SegmentStore answers chain ancestry questions.
	SegmentStore interface {
		IsConnected(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID) (bool, error)
		SegmentForHead(ctx context.Context, blockID model.BlockID) (model.ChainSegmentID, error)
	}

	// BlockStore persists block headers and tracks synchronization progress. Storing a known hash
	// returns the stored block unchanged. HeadBlock and RecentBlockTimes consider blocks whose status
	// is at least the requested one; RecentBlockTimes walks back from that head, newest first.
	BlockStore interface {
		StoreBlockHeader(ctx context.Context, block model.Block) (model.Block, error)
		InsertBlockHeaders(ctx context.Context, blocks []model.Block) error
		BlockByHash(ctx context.Context, hash chainhash.Hash) (*model.Block, error)
		HeadBlock(ctx context.Context, status model.BlockStatus) (*model.Block, error)
		RecentBlockTimes(ctx context.Context, status model.BlockStatus, limit int) ([]int64, error)
		SetBlockStatus(ctx context.Context, blockID model.BlockID, status model.BlockStatus) error
	}

	ResolverMetrics interface {
		ObserveResolve(outcome Outcome, source Source)
	}
)
