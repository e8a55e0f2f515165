package syncer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/peer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PeerManager interface {
		RequestBlock(hash chainhash.Hash, callback peer.BlockCallback)
		RequestBlockHashesAfter(hash chainhash.Hash, callback peer.HashesCallback)
		RequestBlockHeadersAfter(hash chainhash.Hash, callback peer.HeadersCallback)
	}

	Repository interface {
		StoreBlockHeader(ctx context.Context, block model.Block) (model.Block, error)
		InsertBlockHeaders(ctx context.Context, blocks []model.Block) error
		HeadBlock(ctx context.Context, status model.BlockStatus) (*model.Block, error)
		RecentBlockTimes(ctx context.Context, status model.BlockStatus, limit int) ([]int64, error)
		SetBlockStatus(ctx context.Context, blockID model.BlockID, status model.BlockStatus) error
		InsertTransactions(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID, txs []model.Transaction) ([]model.TransactionID, error)
		MarkManySpent(ctx context.Context, ids []model.OutputIdentifier, spender model.BlockID) error
	}

	BlockValidator interface {
		ValidateBlock(ctx context.Context, segment model.ChainSegmentID, height uint64, block *wire.MsgBlock) (bool, error)
	}

	HeaderChecker interface {
		Check(header *wire.BlockHeader, prevHash chainhash.Hash, medianTimePast time.Time) error
	}

	HeaderWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteHeader(ctx context.Context, block model.Block) error
	}

	HeaderDownloaderMetrics interface {
		ObserveHeaders(err error, headers int, started time.Time)
		SetTipHeight(height uint64)
	}

	BlockDownloaderMetrics interface {
		ObserveHashes(err error, hashes int, started time.Time)
		ObserveBlock(err error, txs int, started time.Time)
		SetTipHeight(height uint64)
	}
)
