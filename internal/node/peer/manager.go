// Package peer tracks remote nodes, scores their health and dispatches requests to the best of them.
package peer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/pkg/workerpool"
	"go.uber.org/zap"
)

// Manager owns the node set. One mutex guards the nodes, their health records and the queue of
// deferred requests; callbacks and network I/O never run while it is held.
type Manager struct {
	cfg     Config
	factory TransportFactory
	metrics ManagerMetrics
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	nodes   map[uint64]*Node
	health  map[uint64]*Health
	queue   []func()
	nextID  uint64
	stopped bool
	ctx     context.Context

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewManager(cfg Config, factory TransportFactory, metrics ManagerMetrics, logger *zap.Logger) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("peer manager config: %w", err)
	}
	if factory == nil {
		return nil, errors.New("transport factory is required")
	}
	if metrics == nil {
		return nil, errors.New("peer manager metrics is required")
	}

	return &Manager{
		cfg:     cfg,
		factory: factory,
		metrics: metrics,
		logger:  logger.Named("peerManager"),
		now:     time.Now,
		nodes:   make(map[uint64]*Node),
		health:  make(map[uint64]*Health),
		ctx:     context.Background(),
		stopCh:  make(chan struct{}),
	}, nil
}

// AddNode registers transport, evicting the worst nodes first when the set is full. It returns nil
// once the manager is stopped.
func (m *Manager) AddNode(transport Transport) *Node {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	node, evicted := m.addNodeLocked(transport)
	m.mu.Unlock()

	m.afterMembershipChange(evicted)
	return node
}

// Accept registers an inbound transport and starts its handshake. It returns nil once the manager
// is stopped; the caller keeps ownership of the transport then.
func (m *Manager) Accept(transport Transport) *Node {
	node := m.AddNode(transport)
	if node == nil {
		return nil
	}
	m.connect(node)
	return node
}

// Connect dials address unless a node with the same address is already tracked.
func (m *Manager) Connect(address string) (*Node, error) {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil, ErrManagerStopped
	}
	if m.hasAddressLocked(address) {
		m.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", address, ErrDuplicateAddress)
	}
	transport, err := m.factory.NewTransport(address)
	if err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("create transport for %s: %w", address, err)
	}
	node, evicted := m.addNodeLocked(transport)
	m.mu.Unlock()

	m.afterMembershipChange(evicted)
	m.connect(node)
	return node, nil
}

// HandleEvent applies a lifecycle event emitted by node's transport.
func (m *Manager) HandleEvent(node *Node, ev Event) {
	logger := m.logger.With(zap.Uint64("node", node.id), zap.String("event", ev.Type.String()))

	switch ev.Type {
	case EventConnected:
		if err := node.transition(fsmEventConnect); err != nil {
			logger.Warn("state transition failed", zap.Error(err))
		}
		m.replayQueue()
	case EventHandshakeComplete:
		if err := node.transition(fsmEventHandshake); err != nil {
			logger.Warn("state transition failed", zap.Error(err))
		}
		m.reportNodes()
		m.replayQueue()
	case EventAddressDiscovered:
		m.discover(ev.Address)
	case EventDisconnected:
		if err := node.transition(fsmEventDisconnect); err != nil {
			logger.Warn("state transition failed", zap.Error(err))
		}
		m.removeNode(node)
	default:
		logger.Debug("ignoring unknown event")
	}
}

// SelectBestNode returns the active node with the highest health, or nil.
func (m *Manager) SelectBestNode() *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectBestLocked()
}

// SelectWorstActiveNode returns the active node with the lowest health, or nil.
func (m *Manager) SelectWorstActiveNode() *Node {
	m.mu.Lock()
	defer m.mu.Unlock()

	ranked := m.rankLocked(true)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[len(ranked)-1].node
}

// NodeInfo is a point-in-time view of a tracked node.
type NodeInfo struct {
	ID      uint64
	Address string
	State   State
	Health  int
	Active  bool
}

// Nodes returns the tracked nodes ordered best first.
func (m *Manager) Nodes() []NodeInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	ranked := m.rankLocked(false)
	infos := make([]NodeInfo, 0, len(ranked))
	for _, r := range ranked {
		infos = append(infos, NodeInfo{
			ID:      r.node.id,
			Address: r.node.Address(),
			State:   r.node.State(),
			Health:  r.health,
			Active:  r.active,
		})
	}
	return infos
}

// QueuedRequests reports how many requests wait for an active node.
func (m *Manager) QueuedRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *Manager) addNodeLocked(transport Transport) (*Node, []*Node) {
	m.nextID++
	node := newNode(m.nextID, transport)
	transport.SetEventHandler(func(ev Event) {
		m.HandleEvent(node, ev)
	})

	evicted := m.evictLocked(m.cfg.MaxNodes - 1)
	m.nodes[node.id] = node
	m.health[node.id] = NewHealth(m.now)

	m.logger.Info("node added",
		zap.Uint64("node", node.id),
		zap.String("address", transport.Address()),
		zap.Int("nodes", len(m.nodes)))
	return node, evicted
}

// evictLocked removes the worst nodes until at most limit remain. Inactive nodes go first.
func (m *Manager) evictLocked(limit int) []*Node {
	if len(m.nodes) <= limit {
		return nil
	}
	ranked := m.rankLocked(false)
	var evicted []*Node
	for len(m.nodes) > limit && len(ranked) > 0 {
		worst := ranked[len(ranked)-1]
		ranked = ranked[:len(ranked)-1]
		delete(m.nodes, worst.node.id)
		delete(m.health, worst.node.id)
		evicted = append(evicted, worst.node)
		m.logger.Info("node evicted",
			zap.Uint64("node", worst.node.id),
			zap.String("address", worst.node.Address()),
			zap.Int("health", worst.health),
			zap.Bool("active", worst.active))
	}
	return evicted
}

func (m *Manager) afterMembershipChange(evicted []*Node) {
	for _, node := range evicted {
		m.metrics.ObserveEviction()
		node.transport.Disconnect()
	}
	m.reportNodes()
}

func (m *Manager) discover(address string) {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	healthy := 0
	for id := range m.nodes {
		if m.health[id].CalculateHealth() > m.cfg.HealthyThreshold {
			healthy++
		}
	}
	if healthy >= m.cfg.MaxNodes || m.hasAddressLocked(address) {
		m.mu.Unlock()
		return
	}
	transport, err := m.factory.NewTransport(address)
	if err != nil {
		m.mu.Unlock()
		m.logger.Debug("discovered address rejected", zap.String("address", address), zap.Error(err))
		return
	}
	node, evicted := m.addNodeLocked(transport)
	m.mu.Unlock()

	m.afterMembershipChange(evicted)
	m.connect(node)
}

func (m *Manager) connect(node *Node) {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()

	go func() {
		if err := node.transport.Connect(ctx); err != nil {
			m.logger.Warn("connect failed",
				zap.Uint64("node", node.id),
				zap.String("address", node.Address()),
				zap.Error(err))
			_ = node.transition(fsmEventDisconnect)
			m.removeNode(node)
		}
	}()
}

func (m *Manager) removeNode(node *Node) {
	m.mu.Lock()
	_, tracked := m.nodes[node.id]
	delete(m.nodes, node.id)
	delete(m.health, node.id)
	remaining := len(m.nodes)
	m.mu.Unlock()

	if tracked {
		m.logger.Info("node removed",
			zap.Uint64("node", node.id),
			zap.String("address", node.Address()),
			zap.Int("nodes", remaining))
		m.reportNodes()
	}
}

func (m *Manager) hasAddressLocked(address string) bool {
	for _, node := range m.nodes {
		if node.Address() == address {
			return true
		}
	}
	return false
}

func (m *Manager) reportNodes() {
	m.mu.Lock()
	total := len(m.nodes)
	active := 0
	for _, node := range m.nodes {
		if node.Active() {
			active++
		}
	}
	m.mu.Unlock()
	m.metrics.SetNodes(total, active)
}

// replayQueue drains the deferred requests and re-dispatches each on its own goroutine.
func (m *Manager) replayQueue() {
	m.mu.Lock()
	queued := m.queue
	m.queue = nil
	m.mu.Unlock()

	if len(queued) == 0 {
		return
	}
	m.logger.Debug("replaying queued requests", zap.Int("requests", len(queued)))
	m.metrics.ObserveReplay(len(queued))

	go func() {
		_ = workerpool.Each(context.Background(), len(queued), queued, func(_ context.Context, replay func()) error {
			replay()
			return nil
		})
	}()
}

type rankedNode struct {
	node     *Node
	health   int
	failures uint64
	active   bool
}

// rankLocked orders nodes best first: active before inactive, then higher health, fewer failures and
// lower id.
func (m *Manager) rankLocked(activeOnly bool) []rankedNode {
	ranked := make([]rankedNode, 0, len(m.nodes))
	for id, node := range m.nodes {
		active := node.Active()
		if activeOnly && !active {
			continue
		}
		h := m.health[id]
		ranked = append(ranked, rankedNode{
			node:     node,
			health:   h.CalculateHealth(),
			failures: h.Failures(),
			active:   active,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.active != b.active {
			return a.active
		}
		if a.health != b.health {
			return a.health > b.health
		}
		if a.failures != b.failures {
			return a.failures < b.failures
		}
		return a.node.id < b.node.id
	})
	return ranked
}

func (m *Manager) selectBestLocked() *Node {
	ranked := m.rankLocked(true)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0].node
}

func (m *Manager) markReceived(node *Node, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.health[node.id]; ok {
		h.OnMessageReceived(success)
	}
}
