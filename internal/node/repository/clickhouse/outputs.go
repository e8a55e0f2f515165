package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

// FindOutput returns the output on the chain of id.Segment, or nil when it is absent there.
func (r *Repository) FindOutput(ctx context.Context, id model.OutputIdentifier) (output *model.TransactionOutput, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_output", r.network, err, start)
	}()

	return r.output(ctx, id)
}

func (r *Repository) MarkSpent(ctx context.Context, id model.OutputIdentifier, spender model.BlockID) error {
	return r.MarkManySpent(ctx, []model.OutputIdentifier{id}, spender)
}

// MarkManySpent records spender against every output or none of them. Spend rows are keyed by the
// spending block, so repeating a spend rewrites the same row.
func (r *Repository) MarkManySpent(ctx context.Context, ids []model.OutputIdentifier, spender model.BlockID) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_many_spent", r.network, err, start)
	}()

	if len(ids) == 0 {
		return nil
	}

	block, err := r.blockByID(ctx, spender)
	if err != nil {
		return err
	}
	if block == nil {
		return fmt.Errorf("spender %d: %w", spender, chain.ErrBlockNotFound)
	}

	outputs := make([]model.TransactionOutput, 0, len(ids))
	for _, id := range ids {
		out, err := r.outputRow(ctx, id)
		if err != nil {
			return err
		}
		if out == nil {
			return fmt.Errorf("%s:%d on segment %d: %w", id.TxHash, id.Index, id.Segment, chain.ErrOutputNotFound)
		}
		outputs = append(outputs, *out)
	}
	return r.insertSpends(ctx, outputs, spender)
}

// output returns the output row with its spent state resolved against id.Segment.
func (r *Repository) output(ctx context.Context, id model.OutputIdentifier) (*model.TransactionOutput, error) {
	found, err := r.outputRow(ctx, id)
	if err != nil || found == nil {
		return nil, err
	}

	spenders, err := r.spenders(ctx, found.TransactionID, found.Index)
	if err != nil {
		return nil, err
	}
	for _, spender := range spenders {
		block, err := r.blockByID(ctx, spender)
		if err != nil {
			return nil, err
		}
		if block == nil {
			continue
		}
		connected, err := chain.Connected(ctx, *block, id.Segment, r.segment)
		if err != nil {
			return nil, err
		}
		if connected {
			found.Spent = true
			found.SpentBy = spender
			break
		}
	}
	return found, nil
}

func (r *Repository) outputRow(ctx context.Context, id model.OutputIdentifier) (output *model.TransactionOutput, err error) {
	txID, ok, err := r.resolve(ctx, id.Segment, id.TxHash)
	if err != nil || !ok {
		return nil, err
	}

	const query = `
SELECT
	tx_hash,
	amount,
	lock_script,
	script_type
FROM node_transaction_outputs FINAL
WHERE network = ? AND transaction_id = ? AND output_index = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(r.network), uint64(txID), id.Index)
	if err != nil {
		return nil, fmt.Errorf("query transaction output: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate transaction output: %w", err)
		}
		return nil, nil
	}

	var txHash, lockScript string
	found := model.TransactionOutput{TransactionID: txID, Index: id.Index}
	if err = rows.Scan(&txHash, &found.Amount, &lockScript, &found.ScriptType); err != nil {
		return nil, fmt.Errorf("scan transaction output: %w", err)
	}
	if found.TxHash, err = parseHash(txHash); err != nil {
		return nil, err
	}
	if found.LockScript, err = hex.DecodeString(lockScript); err != nil {
		return nil, fmt.Errorf("decode lock script: %w", err)
	}
	return &found, nil
}

// spenders lists every block recorded as spending the output, whatever fork it is on.
func (r *Repository) spenders(ctx context.Context, txID model.TransactionID, index uint32) (spenders []model.BlockID, err error) {
	const query = `
SELECT spent_by
FROM node_output_spends FINAL
WHERE network = ? AND transaction_id = ? AND output_index = ?
ORDER BY spent_by`

	rows, err := r.conn.Query(ctx, query, string(r.network), uint64(txID), index)
	if err != nil {
		return nil, fmt.Errorf("query output spends: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var spentBy uint64
		if err = rows.Scan(&spentBy); err != nil {
			return nil, fmt.Errorf("scan output spend: %w", err)
		}
		spenders = append(spenders, model.BlockID(spentBy))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate output spends: %w", err)
	}
	return spenders, nil
}

func (r *Repository) insertSpends(ctx context.Context, outputs []model.TransactionOutput, spender model.BlockID) error {
	const query = `
INSERT INTO node_output_spends (
	network,
	transaction_id,
	output_index,
	spent_by
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare output spends batch: %w", err)
	}
	for _, out := range outputs {
		if err = batch.Append(
			string(r.network),
			uint64(out.TransactionID),
			out.Index,
			uint64(spender),
		); err != nil {
			return fmt.Errorf("append output spend: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert output spends: %w", err)
	}
	return nil
}

func (r *Repository) insertOutputs(ctx context.Context, outputs []model.TransactionOutput) error {
	const query = `
INSERT INTO node_transaction_outputs (
	network,
	transaction_id,
	tx_hash,
	output_index,
	amount,
	lock_script,
	script_type
) VALUES`

	if len(outputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}
	for _, out := range outputs {
		if err = batch.Append(
			string(r.network),
			uint64(out.TransactionID),
			out.TxHash.String(),
			out.Index,
			out.Amount,
			hex.EncodeToString(out.LockScript),
			out.ScriptType,
		); err != nil {
			return fmt.Errorf("append transaction output: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
