package consensus

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// ScriptContext carries what a script evaluation needs beyond the two scripts.
type ScriptContext struct {
	Tx          *wire.MsgTx
	InputIndex  int
	BlockHeight uint64
	Amount      int64
	PrevOutputs txscript.PrevOutputFetcher
	SigHashes   *txscript.TxSigHashes
}
