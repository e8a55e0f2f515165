package peer

import (
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	requestBlock        = "block"
	requestBlockHashes  = "block_hashes"
	requestBlockHeaders = "block_headers"
)

type (
	BlockCallback   func(block *wire.MsgBlock, err error)
	HashesCallback  func(hashes []chainhash.Hash, err error)
	HeadersCallback func(headers []wire.BlockHeader, err error)
)

// request is one logical request. It survives timeouts and is re-dispatched until it succeeds, its
// attempts run out or the manager stops.
type request[T any] struct {
	id       string
	kind     string
	hash     chainhash.Hash
	issue    func(t Transport, reply func(T)) (func(), error)
	callback func(T, error)
	started  time.Time
	attempts int
	backoff  backoff.BackOff
}

// RequestBlock fetches the block with hash from the best node.
func (m *Manager) RequestBlock(hash chainhash.Hash, callback BlockCallback) {
	dispatch(m, newRequestOf(m, requestBlock, hash,
		func(t Transport, reply func(*wire.MsgBlock)) (func(), error) { return t.RequestBlock(hash, reply) },
		callback))
}

// RequestBlockHashesAfter fetches the hashes of the blocks following hash on the best node's chain.
func (m *Manager) RequestBlockHashesAfter(hash chainhash.Hash, callback HashesCallback) {
	dispatch(m, newRequestOf(m, requestBlockHashes, hash,
		func(t Transport, reply func([]chainhash.Hash)) (func(), error) {
			return t.RequestBlockHashesAfter(hash, reply)
		},
		callback))
}

// RequestBlockHeadersAfter fetches the headers following hash on the best node's chain.
func (m *Manager) RequestBlockHeadersAfter(hash chainhash.Hash, callback HeadersCallback) {
	dispatch(m, newRequestOf(m, requestBlockHeaders, hash,
		func(t Transport, reply func([]wire.BlockHeader)) (func(), error) {
			return t.RequestBlockHeadersAfter(hash, reply)
		},
		callback))
}

func newRequestOf[T any](m *Manager, kind string, hash chainhash.Hash, issue func(Transport, func(T)) (func(), error), callback func(T, error)) *request[T] {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.cfg.RetryInitialInterval
	b.MaxInterval = m.cfg.RetryMaxInterval
	b.MaxElapsedTime = 0
	b.Reset()

	return &request[T]{
		id:       uuid.NewString(),
		kind:     kind,
		hash:     hash,
		issue:    issue,
		callback: callback,
		started:  m.now(),
		backoff:  b,
	}
}

// dispatch sends r to the best active node or queues it until a node becomes available.
func dispatch[T any](m *Manager, r *request[T]) {
	logger := m.logger.With(zap.String("request", r.id), zap.String("kind", r.kind), zap.Stringer("hash", r.hash))

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		finish(m, r, *new(T), ErrManagerStopped)
		return
	}
	node := m.selectBestLocked()
	if node == nil {
		m.queue = append(m.queue, func() { dispatch(m, r) })
		m.mu.Unlock()
		m.metrics.ObserveQueued(r.kind)
		logger.Debug("no active node, request queued")
		return
	}
	r.attempts++
	m.health[node.id].OnMessageSent()

	resolved := atomic.NewBool(false)
	pending := &withdrawal{}
	timer := time.AfterFunc(m.cfg.RequestTimeout, func() {
		if !resolved.CompareAndSwap(false, true) {
			return
		}
		pending.withdraw()
		m.metrics.ObserveTimeout(r.kind)
		logger.Warn("request timed out", zap.Uint64("node", node.id), zap.Int("attempt", r.attempts))
		retry(m, node, r, fmt.Errorf("%s timed out after %s", r.kind, m.cfg.RequestTimeout))
	})
	m.mu.Unlock()

	cancel, err := r.issue(node.transport, func(result T) {
		if !resolved.CompareAndSwap(false, true) {
			logger.Debug("late reply ignored", zap.Uint64("node", node.id))
			return
		}
		timer.Stop()
		m.markReceived(node, true)
		finish(m, r, result, nil)
	})
	if err != nil {
		if resolved.CompareAndSwap(false, true) {
			timer.Stop()
			logger.Warn("request send failed", zap.Uint64("node", node.id), zap.Error(err))
			retry(m, node, r, err)
		}
		return
	}
	pending.set(cancel)
}

// withdrawal holds the transport's cancel func of one attempt. The timeout may fire before issue
// returns; the cancel func is then called as soon as it is set.
type withdrawal struct {
	mu        sync.Mutex
	cancel    func()
	withdrawn bool
}

func (w *withdrawal) set(cancel func()) {
	w.mu.Lock()
	if !w.withdrawn {
		w.cancel = cancel
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (w *withdrawal) withdraw() {
	w.mu.Lock()
	w.withdrawn = true
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// retry penalizes node and re-dispatches r after a backoff delay.
func retry[T any](m *Manager, node *Node, r *request[T], cause error) {
	m.markReceived(node, false)

	if r.attempts >= m.cfg.MaxAttempts {
		finish(m, r, *new(T), fmt.Errorf("%s %s after %d attempts: %w: %w", r.kind, r.hash, r.attempts, ErrRetriesExhausted, cause))
		return
	}
	delay := r.backoff.NextBackOff()
	if delay == backoff.Stop {
		finish(m, r, *new(T), fmt.Errorf("%s %s: %w: %w", r.kind, r.hash, ErrRetriesExhausted, cause))
		return
	}
	time.AfterFunc(delay, func() { dispatch(m, r) })
}

func finish[T any](m *Manager, r *request[T], result T, err error) {
	m.metrics.ObserveRequest(r.kind, err, r.attempts, r.started)
	r.callback(result, err)
}
