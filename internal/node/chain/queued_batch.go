package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// QueuedBatch indexes transactions that are validated together but not committed yet.
type QueuedBatch struct {
	txs map[chainhash.Hash]*wire.MsgTx
}

// NewQueuedBatch indexes txs by hash. Later duplicates do not replace earlier ones.
func NewQueuedBatch(txs []*wire.MsgTx) *QueuedBatch {
	b := &QueuedBatch{txs: make(map[chainhash.Hash]*wire.MsgTx, len(txs))}
	for _, tx := range txs {
		hash := tx.TxHash()
		if _, ok := b.txs[hash]; ok {
			continue
		}
		b.txs[hash] = tx
	}
	return b
}

// Output returns the output at index of the queued transaction hash.
func (b *QueuedBatch) Output(hash chainhash.Hash, index uint32) (*wire.TxOut, bool) {
	if b == nil {
		return nil, false
	}
	tx, ok := b.txs[hash]
	if !ok {
		return nil, false
	}
	if uint64(index) >= uint64(len(tx.TxOut)) {
		return nil, false
	}
	return tx.TxOut[index], true
}

// Len reports the number of indexed transactions.
func (b *QueuedBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.txs)
}
