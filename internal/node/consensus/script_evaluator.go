package consensus

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const defaultSigCacheSize = 100_000

// ActivationHeights lists the heights at which script rules become enforced.
type ActivationHeights struct {
	BIP16   uint64
	BIP66   uint64
	BIP65   uint64
	CSV     uint64
	Segwit  uint64
	Taproot uint64
}

// ActivationHeightsFor returns the script rule activation heights of a network.
// Networks without buried deployments enforce every rule from genesis.
func ActivationHeightsFor(params *chaincfg.Params) ActivationHeights {
	switch params.Net {
	case wire.MainNet:
		return ActivationHeights{
			BIP16:   173_805,
			BIP66:   uint64(params.BIP0066Height),
			BIP65:   uint64(params.BIP0065Height),
			CSV:     419_328,
			Segwit:  481_824,
			Taproot: 709_632,
		}
	case wire.TestNet3:
		return ActivationHeights{
			BIP16:   514,
			BIP66:   uint64(params.BIP0066Height),
			BIP65:   uint64(params.BIP0065Height),
			CSV:     770_112,
			Segwit:  834_624,
			Taproot: 2_011_968,
		}
	default:
		return ActivationHeights{}
	}
}

// TxScriptEvaluator verifies inputs with the btcd script engine.
type TxScriptEvaluator struct {
	heights  ActivationHeights
	sigCache *txscript.SigCache
}

// NewTxScriptEvaluator builds an evaluator enforcing the rules active on params.
func NewTxScriptEvaluator(params *chaincfg.Params) *TxScriptEvaluator {
	return &TxScriptEvaluator{
		heights:  ActivationHeightsFor(params),
		sigCache: txscript.NewSigCache(defaultSigCacheSize),
	}
}

func (e *TxScriptEvaluator) Verify(unlockScript, lockScript []byte, sc ScriptContext) error {
	if sc.Tx == nil || sc.InputIndex < 0 || sc.InputIndex >= len(sc.Tx.TxIn) {
		return fmt.Errorf("input %d: %w", sc.InputIndex, ErrScriptMismatch)
	}
	if !bytes.Equal(sc.Tx.TxIn[sc.InputIndex].SignatureScript, unlockScript) {
		return fmt.Errorf("input %d: %w", sc.InputIndex, ErrScriptMismatch)
	}

	fetcher := sc.PrevOutputs
	if fetcher == nil {
		fetcher = txscript.NewCannedPrevOutputFetcher(lockScript, sc.Amount)
	}
	hashes := sc.SigHashes
	if hashes == nil {
		hashes = txscript.NewTxSigHashes(sc.Tx, fetcher)
	}

	vm, err := txscript.NewEngine(lockScript, sc.Tx, sc.InputIndex, e.flagsAt(sc.BlockHeight), e.sigCache, hashes, sc.Amount, fetcher)
	if err != nil {
		return fmt.Errorf("input %d: create engine: %w: %w", sc.InputIndex, ErrScriptFailed, err)
	}
	if err := vm.Execute(); err != nil {
		return fmt.Errorf("input %d: %w: %w", sc.InputIndex, ErrScriptFailed, err)
	}
	return nil
}

func (e *TxScriptEvaluator) flagsAt(height uint64) txscript.ScriptFlags {
	var flags txscript.ScriptFlags
	if height >= e.heights.BIP16 {
		flags |= txscript.ScriptBip16
	}
	if height >= e.heights.BIP66 {
		flags |= txscript.ScriptVerifyDERSignatures
	}
	if height >= e.heights.BIP65 {
		flags |= txscript.ScriptVerifyCheckLockTimeVerify
	}
	if height >= e.heights.CSV {
		flags |= txscript.ScriptVerifyCheckSequenceVerify
	}
	if height >= e.heights.Segwit {
		flags |= txscript.ScriptVerifyWitness | txscript.ScriptStrictMultiSig
	}
	if height >= e.heights.Taproot {
		flags |= txscript.ScriptVerifyTaproot
	}
	return flags
}
