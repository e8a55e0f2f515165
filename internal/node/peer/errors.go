package peer

import "errors"

var (
	ErrRetriesExhausted = errors.New("request retries exhausted")
	ErrManagerStopped   = errors.New("peer manager stopped")
	ErrDuplicateAddress = errors.New("address already tracked")
)
