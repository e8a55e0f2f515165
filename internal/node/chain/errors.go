package chain

import "errors"

var (
	ErrParentNotFound  = errors.New("parent block not found")
	ErrSegmentNotFound = errors.New("chain segment not found")
	ErrBlockNotFound   = errors.New("block not found")
	ErrOutputNotFound  = errors.New("transaction output not found")
)
