package model

// Segment is a run of blocks without forks. A segment other than the root branches off its Parent
// after the parent block at ForkHeight.
type Segment struct {
	ID         ChainSegmentID
	Parent     ChainSegmentID
	ForkHeight uint64
	HeadBlock  BlockID
	HeadHeight uint64
}

// IsRoot reports whether the segment starts at the genesis block.
func (s Segment) IsRoot() bool {
	return s.Parent == 0
}
