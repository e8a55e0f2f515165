package p2p

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
)

// Listener accepts inbound connections and hands them to an Acceptor.
type Listener struct {
	cfg      Config
	acceptor Acceptor
	logger   *zap.Logger
}

func NewListener(cfg Config, acceptor Acceptor, logger *zap.Logger) (*Listener, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("p2p config: %w", err)
	}
	if acceptor == nil {
		return nil, errors.New("acceptor is required")
	}
	return &Listener{
		cfg:      cfg,
		acceptor: acceptor,
		logger:   logger.Named("listener"),
	}, nil
}

// ListenAndServe listens on address until ctx is canceled.
func (l *Listener) ListenAndServe(ctx context.Context, address string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", address, err)
	}
	return l.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is canceled. ln is closed on return.
func (l *Listener) Serve(ctx context.Context, ln net.Listener) error {
	l.logger.Info("accepting inbound peers", zap.String("address", ln.Addr().String()))

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		transport, err := NewInboundTransport(l.cfg, conn, l.logger)
		if err != nil {
			_ = conn.Close()
			return err
		}
		if l.acceptor.Accept(transport) == nil {
			l.logger.Debug("inbound peer refused", zap.String("address", transport.Address()))
			_ = conn.Close()
			continue
		}
		l.logger.Info("inbound peer accepted", zap.String("address", transport.Address()))
	}
}
