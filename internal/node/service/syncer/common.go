package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
)

var ErrBlockRejected = errors.New("block rejected by consensus validation")

type reply[T any] struct {
	value T
	err   error
}

// await issues a peer request and waits for its callback. The reply channel is buffered so a callback
// arriving after ctx is done never blocks the peer manager.
func await[T any](ctx context.Context, issue func(callback func(T, error))) (T, error) {
	replies := make(chan reply[T], 1)
	issue(func(value T, err error) {
		replies <- reply[T]{value: value, err: err}
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-replies:
		return r.value, r.err
	}
}

// loadTip returns the highest stored block with status, storing the genesis block first when the
// store is empty.
func loadTip(ctx context.Context, repo Repository, params *chaincfg.Params, status model.BlockStatus) (model.Block, error) {
	head, err := repo.HeadBlock(ctx, status)
	if err != nil {
		return model.Block{}, fmt.Errorf("load %s tip: %w", status, err)
	}
	if head != nil {
		return *head, nil
	}

	genesis := bitcoin.BlockFromHeader(&params.GenesisBlock.Header, 0, model.BlockValidated)
	txCount, err := safe.Uint32(len(params.GenesisBlock.Transactions))
	if err != nil {
		return model.Block{}, err
	}
	genesis.TXCount = txCount
	stored, err := repo.StoreBlockHeader(ctx, genesis)
	if err != nil {
		return model.Block{}, fmt.Errorf("store genesis block: %w", err)
	}
	return stored, nil
}

func seedWindow(ctx context.Context, repo Repository, status model.BlockStatus, window *MedianBlockTime) error {
	times, err := repo.RecentBlockTimes(ctx, status, window.size)
	if err != nil {
		return fmt.Errorf("load recent %s block times: %w", status, err)
	}
	window.Seed(times)
	return nil
}
