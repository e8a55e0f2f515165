package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockStatus describes how far a block has progressed through synchronization.
type BlockStatus string

var (
	// BlockHeader marks a block whose header passed header checks but whose body is not validated yet.
	BlockHeader BlockStatus = "header"
	// BlockValidated marks a block whose transactions passed consensus validation and were persisted.
	BlockValidated BlockStatus = "validated"
)

// Block is a stored block header together with its chain placement.
type Block struct {
	ID         BlockID
	Hash       chainhash.Hash
	PrevHash   chainhash.Hash
	Segment    ChainSegmentID
	Height     uint64
	Timestamp  time.Time
	Version    int32
	MerkleRoot chainhash.Hash
	Bits       uint32
	Nonce      uint32
	TXCount    uint32
	Status     BlockStatus
}

// AtLeast reports whether s has progressed as far as other. A validated block is also a header.
func (s BlockStatus) AtLeast(other BlockStatus) bool {
	return s.rank() >= other.rank()
}

func (s BlockStatus) rank() int {
	switch s {
	case BlockHeader:
		return 1
	case BlockValidated:
		return 2
	default:
		return 0
	}
}
