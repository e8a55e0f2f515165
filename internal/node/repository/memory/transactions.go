package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

func (r *Repository) ResolveTxID(ctx context.Context, segment model.ChainSegmentID, hash chainhash.Hash) (model.TransactionID, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(ctx, segment, hash)
}

// InsertTransaction stores tx under blockID. Inserting the same transaction into the same block again
// returns the existing id.
func (r *Repository) InsertTransaction(_ context.Context, blockID model.BlockID, _ model.ChainSegmentID, tx model.Transaction) (model.TransactionID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(blockID, tx)
}

func (r *Repository) InsertTransactions(_ context.Context, blockID model.BlockID, _ model.ChainSegmentID, txs []model.Transaction) ([]model.TransactionID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]model.TransactionID, 0, len(txs))
	for _, tx := range txs {
		id, err := r.insertLocked(blockID, tx)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) FindOutput(ctx context.Context, id model.OutputIdentifier) (*model.TransactionOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.outputLocked(ctx, id)
}

func (r *Repository) MarkSpent(ctx context.Context, id model.OutputIdentifier, spender model.BlockID) error {
	return r.MarkManySpent(ctx, []model.OutputIdentifier{id}, spender)
}

// MarkManySpent records spender against every output or none of them.
func (r *Repository) MarkManySpent(ctx context.Context, ids []model.OutputIdentifier, spender model.BlockID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blocks[spender]; !ok {
		return fmt.Errorf("spender %d: %w", spender, chain.ErrBlockNotFound)
	}
	outputs := make([]*model.TransactionOutput, 0, len(ids))
	for _, id := range ids {
		out, err := r.outputLocked(ctx, id)
		if err != nil {
			return err
		}
		if out == nil {
			return fmt.Errorf("%s:%d on segment %d: %w", id.TxHash, id.Index, id.Segment, chain.ErrOutputNotFound)
		}
		outputs = append(outputs, out)
	}
	for _, out := range outputs {
		key := outputKey{tx: out.TransactionID, index: out.Index}
		if !slices.Contains(r.spends[key], spender) {
			r.spends[key] = append(r.spends[key], spender)
		}
	}
	return nil
}

func (r *Repository) insertLocked(blockID model.BlockID, tx model.Transaction) (model.TransactionID, error) {
	if _, ok := r.blocks[blockID]; !ok && blockID != model.Uncommitted {
		return 0, fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
	}

	id := model.TransactionIDFor(blockID, tx.Hash)
	if _, ok := r.txs[id]; ok {
		return id, nil
	}

	stored := tx
	stored.ID = id
	stored.BlockID = blockID
	stored.Inputs = append([]model.TransactionInput(nil), tx.Inputs...)
	stored.Outputs = append([]model.TransactionOutput(nil), tx.Outputs...)
	for i := range stored.Outputs {
		stored.Outputs[i].TransactionID = id
	}

	r.txs[id] = &stored
	r.txsByHash[tx.Hash] = append(r.txsByHash[tx.Hash], id)
	return id, nil
}

// resolveLocked finds the transaction with hash whose block lies on segment's chain.
func (r *Repository) resolveLocked(ctx context.Context, segment model.ChainSegmentID, hash chainhash.Hash) (model.TransactionID, bool, error) {
	for _, id := range r.txsByHash[hash] {
		block, ok := r.blocks[r.txs[id].BlockID]
		if !ok {
			continue
		}
		connected, err := chain.Connected(ctx, block, segment, r.segmentLocked)
		if err != nil {
			return 0, false, err
		}
		if connected {
			return id, true, nil
		}
	}
	return 0, false, nil
}

// outputLocked returns a copy of the output with its spent state resolved against id.Segment.
func (r *Repository) outputLocked(ctx context.Context, id model.OutputIdentifier) (*model.TransactionOutput, error) {
	txID, ok, err := r.resolveLocked(ctx, id.Segment, id.TxHash)
	if err != nil || !ok {
		return nil, err
	}
	tx := r.txs[txID]
	if uint64(id.Index) >= uint64(len(tx.Outputs)) {
		return nil, nil
	}

	found := tx.Outputs[id.Index]
	for _, spender := range r.spends[outputKey{tx: txID, index: id.Index}] {
		block, ok := r.blocks[spender]
		if !ok {
			continue
		}
		connected, err := chain.Connected(ctx, block, id.Segment, r.segmentLocked)
		if err != nil {
			return nil, err
		}
		if connected {
			found.Spent = true
			found.SpentBy = spender
			break
		}
	}
	return &found, nil
}
