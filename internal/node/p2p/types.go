package p2p

import (
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/peer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Acceptor takes ownership of inbound transports.
	Acceptor interface {
		Accept(transport peer.Transport) *peer.Node
	}
)
