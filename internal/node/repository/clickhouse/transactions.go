package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/workerpool"
)

// ResolveTxID finds the transaction with hash whose block lies on the chain of segment.
func (r *Repository) ResolveTxID(ctx context.Context, segment model.ChainSegmentID, hash chainhash.Hash) (id model.TransactionID, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("resolve_tx_id", r.network, err, start)
	}()

	return r.resolve(ctx, segment, hash)
}

// InsertTransaction stores tx under blockID. Inserting the same transaction into the same block again
// returns the existing id.
func (r *Repository) InsertTransaction(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID, tx model.Transaction) (model.TransactionID, error) {
	ids, err := r.InsertTransactions(ctx, blockID, segment, []model.Transaction{tx})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// InsertTransactions stores txs with their inputs and outputs. Transactions already stored under
// blockID are skipped.
func (r *Repository) InsertTransactions(ctx context.Context, blockID model.BlockID, segment model.ChainSegmentID, txs []model.Transaction) (ids []model.TransactionID, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transactions", r.network, err, start)
	}()

	if len(txs) == 0 {
		return nil, nil
	}

	var block *model.Block
	if blockID != model.Uncommitted {
		if block, err = r.blockByID(ctx, blockID); err != nil {
			return nil, err
		}
		if block == nil {
			return nil, fmt.Errorf("block %d: %w", blockID, chain.ErrBlockNotFound)
		}
	}

	ids = make([]model.TransactionID, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, model.TransactionIDFor(blockID, tx.Hash))
	}
	existing, err := r.existingTransactions(ctx, ids)
	if err != nil {
		return nil, err
	}

	fresh := make([]model.Transaction, 0, len(txs))
	for i, tx := range txs {
		if _, ok := existing[ids[i]]; ok {
			continue
		}
		existing[ids[i]] = struct{}{}
		tx.ID = ids[i]
		tx.BlockID = blockID
		fresh = append(fresh, tx)
	}

	if len(fresh) > 0 {
		if err = r.insertTransactionParts(ctx, fresh); err != nil {
			return nil, err
		}
		// Transaction rows mark the write complete: a retry after a partial write finds no row and
		// writes every part again.
		if err = r.insertTransactionRows(ctx, fresh); err != nil {
			return nil, err
		}
	}

	if block != nil && block.Segment == segment {
		for i, tx := range txs {
			r.txIDs.Set(segment, tx.Hash, ids[i])
		}
	}
	return ids, nil
}

// resolve checks the cache first; only positive answers are cached since a block never leaves the
// chain of a segment once connected to it.
func (r *Repository) resolve(ctx context.Context, segment model.ChainSegmentID, hash chainhash.Hash) (model.TransactionID, bool, error) {
	if id, ok := r.txIDs.Get(segment, hash); ok {
		return id, true, nil
	}

	candidates, err := r.transactionsByHash(ctx, hash)
	if err != nil {
		return 0, false, err
	}
	for _, c := range candidates {
		block, err := r.blockByID(ctx, c.blockID)
		if err != nil {
			return 0, false, err
		}
		if block == nil {
			continue
		}
		connected, err := chain.Connected(ctx, *block, segment, r.segment)
		if err != nil {
			return 0, false, err
		}
		if connected {
			r.txIDs.Set(segment, hash, c.id)
			return c.id, true, nil
		}
	}
	return 0, false, nil
}

type txCandidate struct {
	id      model.TransactionID
	blockID model.BlockID
}

func (r *Repository) transactionsByHash(ctx context.Context, hash chainhash.Hash) (candidates []txCandidate, err error) {
	const query = `
SELECT
	id,
	block_id
FROM node_transactions FINAL
WHERE network = ? AND hash = ?
ORDER BY id ASC`

	rows, err := r.conn.Query(ctx, query, string(r.network), hash.String())
	if err != nil {
		return nil, fmt.Errorf("query transactions by hash: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var id, blockID uint64
		if err = rows.Scan(&id, &blockID); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		candidates = append(candidates, txCandidate{id: model.TransactionID(id), blockID: model.BlockID(blockID)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return candidates, nil
}

func (r *Repository) existingTransactions(ctx context.Context, ids []model.TransactionID) (existing map[model.TransactionID]struct{}, err error) {
	const query = `
SELECT id
FROM node_transactions FINAL
WHERE network = ? AND id IN ?`

	rows, err := r.conn.Query(ctx, query, string(r.network), uint64s(ids))
	if err != nil {
		return nil, fmt.Errorf("query existing transactions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	existing = make(map[model.TransactionID]struct{})
	for rows.Next() {
		var id uint64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan transaction id: %w", err)
		}
		existing[model.TransactionID(id)] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction ids: %w", err)
	}
	return existing, nil
}

func (r *Repository) insertTransactionParts(ctx context.Context, txs []model.Transaction) error {
	parts := []func(context.Context) error{
		func(ctx context.Context) error { return r.insertInputs(ctx, txs) },
		func(ctx context.Context) error { return r.insertOutputs(ctx, outputsOf(txs)) },
	}
	return workerpool.Process(ctx, len(parts), parts, func(ctx context.Context, insert func(context.Context) error) error {
		return insert(ctx)
	})
}

func (r *Repository) insertTransactionRows(ctx context.Context, txs []model.Transaction) error {
	const query = `
INSERT INTO node_transactions (
	network,
	id,
	block_id,
	hash,
	version,
	lock_time
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}
	for _, tx := range txs {
		if err = batch.Append(
			string(r.network),
			uint64(tx.ID),
			uint64(tx.BlockID),
			tx.Hash.String(),
			tx.Version,
			tx.LockTime,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func (r *Repository) insertInputs(ctx context.Context, txs []model.Transaction) error {
	const query = `
INSERT INTO node_transaction_inputs (
	network,
	transaction_id,
	input_index,
	prev_tx_hash,
	prev_index,
	unlock_script,
	witness,
	sequence
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction inputs batch: %w", err)
	}
	for _, tx := range txs {
		for _, in := range tx.Inputs {
			if err = batch.Append(
				string(r.network),
				uint64(tx.ID),
				in.Index,
				in.PrevTxHash.String(),
				in.PrevIndex,
				hex.EncodeToString(in.UnlockScript),
				encodeWitness(in.Witness),
				in.Sequence,
			); err != nil {
				return fmt.Errorf("append transaction input: %w", err)
			}
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction inputs: %w", err)
	}
	return nil
}

func outputsOf(txs []model.Transaction) []model.TransactionOutput {
	var outputs []model.TransactionOutput
	for _, tx := range txs {
		for _, out := range tx.Outputs {
			out.TransactionID = tx.ID
			out.TxHash = tx.Hash
			outputs = append(outputs, out)
		}
	}
	return outputs
}
