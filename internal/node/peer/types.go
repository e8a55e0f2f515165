package peer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Transport is a connection to one remote node. Replies are delivered on the transport's own
	// goroutines; a reply that never arrives is handled by the Manager's timeout, which calls the
	// cancel func returned with the request so the transport forgets it.
	Transport interface {
		Address() string
		SetEventHandler(handler func(Event))
		Connect(ctx context.Context) error
		Disconnect()
		Connected() bool
		LastMessageReceived() time.Time
		Ping() error
		RequestBlock(hash chainhash.Hash, reply func(*wire.MsgBlock)) (cancel func(), err error)
		RequestBlockHashesAfter(hash chainhash.Hash, reply func([]chainhash.Hash)) (cancel func(), err error)
		RequestBlockHeadersAfter(hash chainhash.Hash, reply func([]wire.BlockHeader)) (cancel func(), err error)
	}

	TransportFactory interface {
		NewTransport(address string) (Transport, error)
	}

	ManagerMetrics interface {
		ObserveRequest(kind string, err error, attempts int, started time.Time)
		ObserveTimeout(kind string)
		ObserveQueued(kind string)
		ObserveReplay(requests int)
		ObserveEviction()
		SetNodes(total, active int)
	}
)
