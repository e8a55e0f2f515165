package chain

import (
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

// Outcome classifies the result of an output lookup.
type Outcome int

const (
	// NotFound means the output is definitely absent from both committed storage and the queued batch.
	NotFound Outcome = iota
	// Found means Output holds the referenced output.
	Found
	// LookupFailed means committed storage could not be queried. It is not a consensus negative.
	LookupFailed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case LookupFailed:
		return "lookup_failed"
	default:
		return "unknown"
	}
}

// Source names where a resolved output came from.
type Source string

var (
	SourceNone      Source = "none"
	SourceCommitted Source = "committed"
	SourceQueued    Source = "queued"
)

// Resolution is the tri-state result of OutputResolver.Resolve.
type Resolution struct {
	Outcome Outcome
	Source  Source
	Output  model.TransactionOutput
	Err     error
}
