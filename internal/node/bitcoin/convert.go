package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
)

// BlockFromHeader builds a block record from a wire header. Placement fields are left to the caller.
func BlockFromHeader(header *wire.BlockHeader, height uint64, status model.BlockStatus) model.Block {
	return model.Block{
		Hash:       header.BlockHash(),
		PrevHash:   header.PrevBlock,
		Height:     height,
		Timestamp:  header.Timestamp.UTC(),
		Version:    header.Version,
		MerkleRoot: header.MerkleRoot,
		Bits:       header.Bits,
		Nonce:      header.Nonce,
		Status:     status,
	}
}

// ConvertTransaction maps a wire transaction onto a record owned by blockID.
func ConvertTransaction(tx *wire.MsgTx, blockID model.BlockID) (model.Transaction, error) {
	hash := tx.TxHash()
	result := model.Transaction{
		BlockID:  blockID,
		Hash:     hash,
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs:   make([]model.TransactionInput, 0, len(tx.TxIn)),
		Outputs:  make([]model.TransactionOutput, 0, len(tx.TxOut)),
	}

	for idx, in := range tx.TxIn {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s input index overflow: %w", hash, err)
		}
		result.Inputs = append(result.Inputs, model.TransactionInput{
			TxHash:       hash,
			Index:        index,
			PrevTxHash:   in.PreviousOutPoint.Hash,
			PrevIndex:    in.PreviousOutPoint.Index,
			UnlockScript: in.SignatureScript,
			Witness:      in.Witness,
			Sequence:     in.Sequence,
		})
	}

	for idx, out := range tx.TxOut {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output index overflow: %w", hash, err)
		}
		amount, err := safe.Uint64(out.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d amount: %w", hash, idx, err)
		}
		result.Outputs = append(result.Outputs, model.TransactionOutput{
			TxHash:     hash,
			Index:      index,
			Amount:     amount,
			LockScript: out.PkScript,
			ScriptType: txscript.GetScriptClass(out.PkScript).String(),
		})
	}

	return result, nil
}

// SpentOutputs lists the outputs consumed by the non-coinbase transactions of a block.
func SpentOutputs(block *wire.MsgBlock, segment model.ChainSegmentID) []model.OutputIdentifier {
	var ids []model.OutputIdentifier
	for i, tx := range block.Transactions {
		if i == 0 {
			continue
		}
		for _, in := range tx.TxIn {
			ids = append(ids, model.OutputIdentifier{
				Segment: segment,
				TxHash:  in.PreviousOutPoint.Hash,
				Index:   in.PreviousOutPoint.Index,
			})
		}
	}
	return ids
}

// BlockHex serializes a block for diagnostic logging.
func BlockHex(block *wire.MsgBlock) string {
	var buf bytes.Buffer
	buf.Grow(block.SerializeSize())
	if err := block.Serialize(&buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf.Bytes())
}
