package consensus

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	OutputResolver interface {
		Resolve(ctx context.Context, id model.OutputIdentifier, queued *chain.QueuedBatch) chain.Resolution
	}

	// ScriptEvaluator verifies that an input's unlock script satisfies the lock script it spends.
	// A nil error means the input is unlocked.
	ScriptEvaluator interface {
		Verify(unlockScript, lockScript []byte, sc ScriptContext) error
	}

	// BlockChecker performs the structural self-check of a block.
	BlockChecker interface {
		Check(block *wire.MsgBlock) error
	}

	ValidatorMetrics interface {
		ObserveValidate(err error, accepted bool, txs int, started time.Time)
		ObserveRejection(reason string)
	}
)
