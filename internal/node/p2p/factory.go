package p2p

import (
	"fmt"
	"net"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/peer"
	"go.uber.org/zap"
)

// Factory creates outbound transports for the peer manager. Addresses without a port get the
// network's default port.
type Factory struct {
	cfg    Config
	logger *zap.Logger
}

func NewFactory(cfg Config, logger *zap.Logger) (*Factory, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("p2p config: %w", err)
	}
	return &Factory{cfg: cfg, logger: logger}, nil
}

func (f *Factory) NewTransport(address string) (peer.Transport, error) {
	return NewOutboundTransport(f.cfg, f.normalize(address), f.logger)
}

func (f *Factory) normalize(address string) string {
	if _, _, err := net.SplitHostPort(address); err == nil {
		return address
	}
	return net.JoinHostPort(address, f.cfg.Params.DefaultPort)
}
