// Package consensus validates blocks against the consensus rules covered by the node.
package consensus

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
	"go.uber.org/zap"
)

const (
	checkSanity      = "sanity"
	checkExpenditure = "expenditure"
	checkUnlock      = "unlock"
)

// BlockValidator validates the non-coinbase transactions of a block.
type BlockValidator struct {
	resolver  OutputResolver
	evaluator ScriptEvaluator
	checker   BlockChecker
	metrics   ValidatorMetrics
	logger    *zap.Logger
}

func NewBlockValidator(
	resolver OutputResolver,
	evaluator ScriptEvaluator,
	checker BlockChecker,
	metrics ValidatorMetrics,
	logger *zap.Logger,
) (*BlockValidator, error) {
	if resolver == nil {
		return nil, errors.New("output resolver is required")
	}
	if evaluator == nil {
		return nil, errors.New("script evaluator is required")
	}
	if checker == nil {
		return nil, errors.New("block checker is required")
	}
	if metrics == nil {
		return nil, errors.New("validator metrics is required")
	}

	return &BlockValidator{
		resolver:  resolver,
		evaluator: evaluator,
		checker:   checker,
		metrics:   metrics,
		logger:    logger.Named("blockValidator"),
	}, nil
}

// ValidateBlock reports whether block is valid on segment at height. A rejection is (false, nil) and is
// logged together with the serialized block. A non-nil error means no verdict was reached because
// storage lookups failed; the caller should retry. Validation never mutates storage.
func (v *BlockValidator) ValidateBlock(ctx context.Context, segment model.ChainSegmentID, height uint64, block *wire.MsgBlock) (bool, error) {
	started := time.Now()
	txs := len(block.Transactions)

	if err := v.checker.Check(block); err != nil {
		v.reject(segment, height, block, checkSanity, -1, err)
		v.metrics.ObserveValidate(nil, false, txs, started)
		return false, nil
	}

	queued := chain.NewQueuedBatch(block.Transactions)
	consumed := make(map[wire.OutPoint]struct{})
	self := model.BlockIDFromHash(block.BlockHash())

	for i, tx := range block.Transactions {
		if i == 0 {
			continue
		}

		prevOuts, err := v.checkExpenditure(ctx, segment, self, tx, queued, consumed)
		if err != nil {
			if errors.Is(err, ErrLookupFailed) {
				v.metrics.ObserveValidate(err, false, txs, started)
				return false, fmt.Errorf("validate block %s tx %d: %w", block.BlockHash(), i, err)
			}
			v.reject(segment, height, block, checkExpenditure, i, err)
			v.metrics.ObserveValidate(nil, false, txs, started)
			return false, nil
		}

		if err := v.checkUnlock(tx, height, prevOuts); err != nil {
			v.reject(segment, height, block, checkUnlock, i, err)
			v.metrics.ObserveValidate(nil, false, txs, started)
			return false, nil
		}

		for _, in := range tx.TxIn {
			consumed[in.PreviousOutPoint] = struct{}{}
		}
	}

	v.metrics.ObserveValidate(nil, true, txs, started)
	elapsed := time.Since(started)
	v.logger.Info("block validated",
		zap.Stringer("block", block.BlockHash()),
		zap.Uint64("height", height),
		zap.Int("txs", txs),
		zap.Duration("elapsed", elapsed),
		zap.Float64("tx_per_sec", float64(txs)/math.Max(elapsed.Seconds(), 1e-9)))
	return true, nil
}

func (v *BlockValidator) checkExpenditure(
	ctx context.Context,
	segment model.ChainSegmentID,
	self model.BlockID,
	tx *wire.MsgTx,
	queued *chain.QueuedBatch,
	consumed map[wire.OutPoint]struct{},
) (*txscript.MultiPrevOutFetcher, error) {
	prevOuts := txscript.NewMultiPrevOutFetcher(nil)
	var inputSum uint64

	for idx, in := range tx.TxIn {
		op := in.PreviousOutPoint
		if _, spent := consumed[op]; spent {
			return nil, fmt.Errorf("input %d %s: %w", idx, op, ErrDoubleSpend)
		}
		if prevOuts.FetchPrevOutput(op) != nil {
			return nil, fmt.Errorf("input %d %s: %w", idx, op, ErrDoubleSpend)
		}

		res := v.resolver.Resolve(ctx, model.OutputIdentifier{Segment: segment, TxHash: op.Hash, Index: op.Index}, queued)
		switch res.Outcome {
		case chain.Found:
		case chain.LookupFailed:
			return nil, fmt.Errorf("input %d %s: %w: %w", idx, op, ErrLookupFailed, res.Err)
		default:
			return nil, fmt.Errorf("input %d %s: %w", idx, op, ErrUnresolvedInput)
		}
		// A spend recorded by this very block is left over from an interrupted commit.
		if res.Output.Spent && res.Output.SpentBy != self {
			return nil, fmt.Errorf("input %d %s: %w", idx, op, ErrDoubleSpend)
		}
		amount, err := safe.Int64(res.Output.Amount)
		if err != nil {
			return nil, fmt.Errorf("input %d %s: %w: %w", idx, op, ErrAmountOverflow, err)
		}
		if inputSum, err = safe.AddUint64(inputSum, res.Output.Amount); err != nil {
			return nil, fmt.Errorf("input %d %s: %w: %w", idx, op, ErrAmountOverflow, err)
		}
		prevOuts.AddPrevOut(op, wire.NewTxOut(amount, res.Output.LockScript))
	}

	var outputSum uint64
	for idx, out := range tx.TxOut {
		if out.Value < 0 {
			return nil, fmt.Errorf("output %d: %w", idx, ErrNegativeOutput)
		}
		var err error
		if outputSum, err = safe.AddUint64(outputSum, uint64(out.Value)); err != nil {
			return nil, fmt.Errorf("output %d: %w: %w", idx, ErrAmountOverflow, err)
		}
	}

	if outputSum > inputSum {
		return nil, fmt.Errorf("outputs %d, inputs %d: %w", outputSum, inputSum, ErrOverspend)
	}
	return prevOuts, nil
}

func (v *BlockValidator) checkUnlock(tx *wire.MsgTx, height uint64, prevOuts *txscript.MultiPrevOutFetcher) error {
	hashes := txscript.NewTxSigHashes(tx, prevOuts)
	for idx, in := range tx.TxIn {
		prev := prevOuts.FetchPrevOutput(in.PreviousOutPoint)
		if prev == nil {
			return fmt.Errorf("input %d: %w", idx, ErrUnresolvedInput)
		}
		err := v.evaluator.Verify(in.SignatureScript, prev.PkScript, ScriptContext{
			Tx:          tx,
			InputIndex:  idx,
			BlockHeight: height,
			Amount:      prev.Value,
			PrevOutputs: prevOuts,
			SigHashes:   hashes,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *BlockValidator) reject(segment model.ChainSegmentID, height uint64, block *wire.MsgBlock, check string, txIndex int, err error) {
	v.metrics.ObserveRejection(check)
	v.logger.Warn("block rejected",
		zap.Stringer("block", block.BlockHash()),
		zap.Uint64("segment", uint64(segment)),
		zap.Uint64("height", height),
		zap.String("check", check),
		zap.Int("tx_index", txIndex),
		zap.Error(err),
		zap.String("raw", bitcoin.BlockHex(block)))
}
