package p2p

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	defaultUserAgentName    = "blockinsight7000-node"
	defaultUserAgentVersion = "0.1.0"
	defaultDialTimeout      = 10 * time.Second
)

// Config describes how this node presents itself during the version handshake.
type Config struct {
	Params           *chaincfg.Params
	UserAgentName    string
	UserAgentVersion string
	Services         wire.ServiceFlag
	DialTimeout      time.Duration
	// AllowSelfConns disables the nonce check that drops connections to ourselves.
	AllowSelfConns bool
}

func DefaultConfig(params *chaincfg.Params) Config {
	return Config{
		Params:           params,
		UserAgentName:    defaultUserAgentName,
		UserAgentVersion: defaultUserAgentVersion,
		Services:         wire.SFNodeWitness,
		DialTimeout:      defaultDialTimeout,
	}
}

func (c Config) validate() error {
	switch {
	case c.Params == nil:
		return errors.New("chain params are required")
	case c.DialTimeout <= 0:
		return errors.New("dial timeout must be positive")
	}
	return nil
}
