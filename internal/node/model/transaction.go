package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// OutputIdentifier names a spendable value on a chain segment.
type OutputIdentifier struct {
	Segment ChainSegmentID
	TxHash  chainhash.Hash
	Index   uint32
}

// Transaction is a stored transaction. BlockID is Uncommitted until the owning block is persisted.
type Transaction struct {
	ID       TransactionID
	BlockID  BlockID
	Hash     chainhash.Hash
	Version  int32
	LockTime uint32
	Inputs   []TransactionInput
	Outputs  []TransactionOutput
}

// TransactionInput references the previous output it consumes.
type TransactionInput struct {
	TxHash       chainhash.Hash
	Index        uint32
	PrevTxHash   chainhash.Hash
	PrevIndex    uint32
	UnlockScript []byte
	Witness      [][]byte
	Sequence     uint32
}

// TransactionOutput is a value created by a transaction. Spent and SpentBy describe the output as
// seen from one segment: a spend recorded by a block on another fork leaves it unspent.
type TransactionOutput struct {
	TransactionID TransactionID
	TxHash        chainhash.Hash
	Index         uint32
	Amount        uint64
	LockScript    []byte
	ScriptType    string
	Spent         bool
	SpentBy       BlockID
}

// Identifier returns the identifier of the output on the given segment.
func (o TransactionOutput) Identifier(segment ChainSegmentID) OutputIdentifier {
	return OutputIdentifier{Segment: segment, TxHash: o.TxHash, Index: o.Index}
}
