package consensus

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// SanityChecker runs the context-free block checks: proof of work, timestamp bounds, merkle root,
// coinbase placement and duplicate transactions.
type SanityChecker struct {
	powLimit   *big.Int
	timeSource blockchain.MedianTimeSource
}

func NewSanityChecker(params *chaincfg.Params) *SanityChecker {
	return &SanityChecker{
		powLimit:   params.PowLimit,
		timeSource: blockchain.NewMedianTime(),
	}
}

func (c *SanityChecker) Check(block *wire.MsgBlock) error {
	if err := blockchain.CheckBlockSanity(btcutil.NewBlock(block), c.powLimit, c.timeSource); err != nil {
		return fmt.Errorf("block sanity: %w", err)
	}
	return nil
}
