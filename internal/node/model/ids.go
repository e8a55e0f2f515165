// Package model defines the records shared by the node components.
package model

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ChainSegmentID identifies a branch of the block tree. Outputs are only live on a segment when their
// containing block is connected to that segment's ancestry.
type ChainSegmentID uint64

// BlockID identifies a stored block. Zero means the record is not committed to a block yet.
type BlockID uint64

// TransactionID identifies a stored transaction.
type TransactionID uint64

// Uncommitted marks a transaction that has not been assigned to a block.
const Uncommitted BlockID = 0

// BlockIDFromHash derives the block id from its hash so that every store assigns the same id to the
// same block.
func BlockIDFromHash(hash chainhash.Hash) BlockID {
	id := BlockID(binary.LittleEndian.Uint64(hash[:8]))
	if id == Uncommitted {
		return 1
	}
	return id
}

// TransactionIDFor derives the id of a transaction within its block. The same transaction hash mined
// in two competing blocks gets two ids.
func TransactionIDFor(blockID BlockID, hash chainhash.Hash) TransactionID {
	var buf [8 + chainhash.HashSize]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(blockID))
	copy(buf[8:], hash[:])
	digest := chainhash.HashH(buf[:])
	return TransactionID(binary.LittleEndian.Uint64(digest[:8]))
}
