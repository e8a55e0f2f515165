// Package p2p carries the peer manager's requests over the bitcoin wire protocol using btcd's peer
// implementation.
package p2p

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcpeer "github.com/btcsuite/btcd/peer"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/peer"
	"go.uber.org/zap"
)

var errNotConnected = errors.New("transport is not connected")

// Transport is a peer.Transport over a single btcd peer. Block replies are matched by hash. Header
// replies are matched by the locator their first header links to; an empty reply answers the oldest
// header request.
type Transport struct {
	cfg     Config
	address string
	inbound net.Conn
	dialer  *net.Dialer
	logger  *zap.Logger

	mu            sync.Mutex
	handler       func(peer.Event)
	remote        *btcpeer.Peer
	nextWaiter    uint64
	blockWaiters  map[chainhash.Hash][]blockWaiter
	headerWaiters []headerWaiter
}

type blockWaiter struct {
	id    uint64
	reply func(*wire.MsgBlock)
}

type headerWaiter struct {
	id      uint64
	locator chainhash.Hash
	reply   func([]wire.BlockHeader)
}

// NewOutboundTransport returns a transport that dials address on Connect.
func NewOutboundTransport(cfg Config, address string, logger *zap.Logger) (*Transport, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("p2p config: %w", err)
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		return nil, fmt.Errorf("parse address %q: %w", address, err)
	}
	return newTransport(cfg, address, nil, logger), nil
}

// NewInboundTransport wraps a connection accepted by a Listener. Connect starts the handshake.
func NewInboundTransport(cfg Config, conn net.Conn, logger *zap.Logger) (*Transport, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("p2p config: %w", err)
	}
	return newTransport(cfg, conn.RemoteAddr().String(), conn, logger), nil
}

func newTransport(cfg Config, address string, inbound net.Conn, logger *zap.Logger) *Transport {
	return &Transport{
		cfg:          cfg,
		address:      address,
		inbound:      inbound,
		dialer:       &net.Dialer{Timeout: cfg.DialTimeout},
		logger:       logger.Named("transport").With(zap.String("address", address)),
		blockWaiters: make(map[chainhash.Hash][]blockWaiter),
	}
}

func (t *Transport) Address() string {
	return t.address
}

func (t *Transport) SetEventHandler(handler func(peer.Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

// Connect opens the connection and starts the version handshake. Handshake completion and
// disconnection are reported as events.
func (t *Transport) Connect(ctx context.Context) error {
	cfg := t.peerConfig()

	var (
		remote *btcpeer.Peer
		conn   net.Conn
		err    error
	)
	if t.inbound != nil {
		remote = btcpeer.NewInboundPeer(cfg)
		conn = t.inbound
	} else {
		remote, err = btcpeer.NewOutboundPeer(cfg, t.address)
		if err != nil {
			return fmt.Errorf("create outbound peer %s: %w", t.address, err)
		}
		conn, err = t.dialer.DialContext(ctx, "tcp", t.address)
		if err != nil {
			return fmt.Errorf("dial %s: %w", t.address, err)
		}
	}

	t.mu.Lock()
	t.remote = remote
	t.mu.Unlock()

	remote.AssociateConnection(conn)
	t.emit(peer.Event{Type: peer.EventConnected})

	go func() {
		remote.WaitForDisconnect()
		t.logger.Debug("peer disconnected")
		t.emit(peer.Event{Type: peer.EventDisconnected})
	}()
	return nil
}

func (t *Transport) Disconnect() {
	if remote := t.peer(); remote != nil {
		remote.Disconnect()
	}
}

func (t *Transport) Connected() bool {
	remote := t.peer()
	return remote != nil && remote.Connected()
}

func (t *Transport) LastMessageReceived() time.Time {
	remote := t.peer()
	if remote == nil {
		return time.Time{}
	}
	return remote.LastRecv()
}

func (t *Transport) Ping() error {
	remote := t.peer()
	if remote == nil || !remote.Connected() {
		return errNotConnected
	}
	nonce, err := wire.RandomUint64()
	if err != nil {
		return fmt.Errorf("ping nonce: %w", err)
	}
	remote.QueueMessage(wire.NewMsgPing(nonce), nil)
	return nil
}

// RequestBlock sends getdata for hash. Witness data is requested when the remote serves it. The
// returned func withdraws the request so a late reply is dropped.
func (t *Transport) RequestBlock(hash chainhash.Hash, reply func(*wire.MsgBlock)) (func(), error) {
	remote := t.peer()
	if remote == nil || !remote.Connected() {
		return nil, errNotConnected
	}

	invType := wire.InvTypeBlock
	if remote.IsWitnessEnabled() {
		invType = wire.InvTypeWitnessBlock
	}
	msg := wire.NewMsgGetData()
	if err := msg.AddInvVect(wire.NewInvVect(invType, &hash)); err != nil {
		return nil, fmt.Errorf("build getdata: %w", err)
	}

	t.mu.Lock()
	t.nextWaiter++
	id := t.nextWaiter
	t.blockWaiters[hash] = append(t.blockWaiters[hash], blockWaiter{id: id, reply: reply})
	t.mu.Unlock()

	remote.QueueMessage(msg, nil)
	return func() { t.withdrawBlock(hash, id) }, nil
}

// RequestBlockHashesAfter asks for the headers following hash and replies with their hashes. Headers
// are used instead of getblocks because an inventory reply cannot be told apart from a block
// announcement.
func (t *Transport) RequestBlockHashesAfter(hash chainhash.Hash, reply func([]chainhash.Hash)) (func(), error) {
	return t.requestHeaders(hash, func(headers []wire.BlockHeader) {
		hashes := make([]chainhash.Hash, 0, len(headers))
		for i := range headers {
			hashes = append(hashes, headers[i].BlockHash())
		}
		reply(hashes)
	})
}

func (t *Transport) RequestBlockHeadersAfter(hash chainhash.Hash, reply func([]wire.BlockHeader)) (func(), error) {
	return t.requestHeaders(hash, reply)
}

func (t *Transport) requestHeaders(locator chainhash.Hash, reply func([]wire.BlockHeader)) (func(), error) {
	remote := t.peer()
	if remote == nil || !remote.Connected() {
		return nil, errNotConnected
	}

	msg := wire.NewMsgGetHeaders()
	if err := msg.AddBlockLocatorHash(&locator); err != nil {
		return nil, fmt.Errorf("build getheaders: %w", err)
	}

	t.mu.Lock()
	t.nextWaiter++
	id := t.nextWaiter
	t.headerWaiters = append(t.headerWaiters, headerWaiter{id: id, locator: locator, reply: reply})
	t.mu.Unlock()

	remote.QueueMessage(msg, nil)
	return func() { t.withdrawHeaders(id) }, nil
}

func (t *Transport) withdrawBlock(hash chainhash.Hash, id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	waiters := slices.DeleteFunc(t.blockWaiters[hash], func(w blockWaiter) bool { return w.id == id })
	if len(waiters) == 0 {
		delete(t.blockWaiters, hash)
		return
	}
	t.blockWaiters[hash] = waiters
}

func (t *Transport) withdrawHeaders(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.headerWaiters = slices.DeleteFunc(t.headerWaiters, func(w headerWaiter) bool { return w.id == id })
}

func (t *Transport) peer() *btcpeer.Peer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remote
}

func (t *Transport) emit(ev peer.Event) {
	t.mu.Lock()
	handler := t.handler
	t.mu.Unlock()

	if handler != nil {
		handler(ev)
	}
}

func (t *Transport) peerConfig() *btcpeer.Config {
	return &btcpeer.Config{
		UserAgentName:    t.cfg.UserAgentName,
		UserAgentVersion: t.cfg.UserAgentVersion,
		ChainParams:      t.cfg.Params,
		Services:         t.cfg.Services,
		AllowSelfConns:   t.cfg.AllowSelfConns,
		Listeners: btcpeer.MessageListeners{
			OnVerAck:   t.onVerAck,
			OnAddr:     t.onAddr,
			OnAddrV2:   t.onAddrV2,
			OnInv:      t.onInv,
			OnHeaders:  t.onHeaders,
			OnBlock:    t.onBlock,
			OnNotFound: t.onNotFound,
		},
	}
}

func (t *Transport) onVerAck(_ *btcpeer.Peer, _ *wire.MsgVerAck) {
	t.logger.Debug("handshake complete")
	t.emit(peer.Event{Type: peer.EventHandshakeComplete})
}

func (t *Transport) onAddr(_ *btcpeer.Peer, msg *wire.MsgAddr) {
	for _, na := range msg.AddrList {
		t.discovered(na.IP, na.Port)
	}
}

func (t *Transport) onAddrV2(_ *btcpeer.Peer, msg *wire.MsgAddrV2) {
	for _, na := range msg.AddrList {
		// Tor v3 and other non-IP addresses have no legacy form and cannot be dialed.
		legacy := na.ToLegacy()
		if legacy == nil {
			continue
		}
		t.discovered(legacy.IP, legacy.Port)
	}
}

func (t *Transport) discovered(ip net.IP, port uint16) {
	if ip == nil || ip.IsUnspecified() || port == 0 {
		return
	}
	t.emit(peer.Event{
		Type:    peer.EventAddressDiscovered,
		Address: net.JoinHostPort(ip.String(), strconv.Itoa(int(port))),
	})
}

// onInv only logs block announcements; block hashes are requested through getheaders.
func (t *Transport) onInv(_ *btcpeer.Peer, msg *wire.MsgInv) {
	for _, iv := range msg.InvList {
		if iv.Type == wire.InvTypeBlock || iv.Type == wire.InvTypeWitnessBlock {
			t.logger.Debug("block announced", zap.Stringer("hash", iv.Hash))
		}
	}
}

func (t *Transport) onHeaders(_ *btcpeer.Peer, msg *wire.MsgHeaders) {
	t.mu.Lock()
	i := t.headerWaiterLocked(msg.Headers)
	if i < 0 {
		t.mu.Unlock()
		t.logger.Debug("unsolicited headers", zap.Int("headers", len(msg.Headers)))
		return
	}
	reply := t.headerWaiters[i].reply
	t.headerWaiters = slices.Delete(t.headerWaiters, i, i+1)
	t.mu.Unlock()

	headers := make([]wire.BlockHeader, 0, len(msg.Headers))
	for _, h := range msg.Headers {
		headers = append(headers, *h)
	}
	reply(headers)
}

// headerWaiterLocked returns the index of the request answered by headers, or -1.
func (t *Transport) headerWaiterLocked(headers []*wire.BlockHeader) int {
	if len(t.headerWaiters) == 0 {
		return -1
	}
	if len(headers) == 0 {
		return 0
	}
	return slices.IndexFunc(t.headerWaiters, func(w headerWaiter) bool {
		return w.locator == headers[0].PrevBlock
	})
}

func (t *Transport) onBlock(_ *btcpeer.Peer, msg *wire.MsgBlock, _ []byte) {
	hash := msg.BlockHash()

	t.mu.Lock()
	waiters := t.blockWaiters[hash]
	delete(t.blockWaiters, hash)
	t.mu.Unlock()

	if len(waiters) == 0 {
		t.logger.Debug("unsolicited block", zap.Stringer("hash", hash))
		return
	}
	for _, w := range waiters {
		w.reply(msg)
	}
}

// onNotFound drops waiters for blocks the remote does not have; the manager's timeout retries them
// elsewhere.
func (t *Transport) onNotFound(_ *btcpeer.Peer, msg *wire.MsgNotFound) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, iv := range msg.InvList {
		delete(t.blockWaiters, iv.Hash)
	}
}
