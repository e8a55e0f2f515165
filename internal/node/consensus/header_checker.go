package consensus

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const maxHeaderTimeOffset = 2 * time.Hour

// HeaderChecker performs the header-only checks used while downloading headers.
type HeaderChecker struct {
	powLimit *big.Int
	now      func() time.Time
}

func NewHeaderChecker(params *chaincfg.Params) *HeaderChecker {
	return &HeaderChecker{powLimit: params.PowLimit, now: time.Now}
}

// Check verifies that header extends prevHash, is newer than medianTimePast and satisfies its target.
// A zero medianTimePast skips the time check.
func (c *HeaderChecker) Check(header *wire.BlockHeader, prevHash chainhash.Hash, medianTimePast time.Time) error {
	if header.PrevBlock != prevHash {
		return fmt.Errorf("prev %s, tip %s: %w", header.PrevBlock, prevHash, ErrHeaderNotLinked)
	}
	if !medianTimePast.IsZero() && !header.Timestamp.After(medianTimePast) {
		return fmt.Errorf("timestamp %s, median %s: %w", header.Timestamp, medianTimePast, ErrHeaderTimeTooOld)
	}
	if header.Timestamp.After(c.now().Add(maxHeaderTimeOffset)) {
		return fmt.Errorf("timestamp %s: %w", header.Timestamp, ErrHeaderTimeTooNew)
	}

	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 || target.Cmp(c.powLimit) > 0 {
		return fmt.Errorf("bits %08x: %w", header.Bits, ErrBadDifficulty)
	}
	hash := header.BlockHash()
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return fmt.Errorf("hash %s: %w", hash, ErrHighHash)
	}
	return nil
}
