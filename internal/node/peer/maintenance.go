package peer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/pkg/workerpool"
	"go.uber.org/zap"
)

// Start runs the maintenance loop until ctx is canceled or Stop is called. Connections opened by the
// manager inherit ctx.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()

	m.wg.Add(1)
	go m.maintenanceLoop(ctx)
}

// Stop halts maintenance, fails queued requests with ErrManagerStopped and disconnects every node.
// Requests in flight resolve with ErrManagerStopped on their next dispatch. Safe to call repeatedly.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		m.stopped = true
		queued := m.queue
		m.queue = nil
		nodes := make([]*Node, 0, len(m.nodes))
		for _, node := range m.nodes {
			nodes = append(nodes, node)
		}
		m.mu.Unlock()

		close(m.stopCh)
		m.wg.Wait()

		for _, replay := range queued {
			replay()
		}
		for _, node := range nodes {
			node.transport.Disconnect()
		}
	})
}

func (m *Manager) maintenanceLoop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.MaintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("stopping maintenance", zap.Error(ctx.Err()))
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.maintain(ctx)
		}
	}
}

// maintain pings idle nodes and replays requests queued while no node was active.
func (m *Manager) maintain(ctx context.Context) {
	now := m.now()

	m.mu.Lock()
	var idle []*Node
	hasActive := false
	for _, node := range m.nodes {
		if node.Active() {
			hasActive = true
		}
		if !node.transport.Connected() {
			continue
		}
		idleFor := now.Sub(node.transport.LastMessageReceived())
		if idleFor < 0 {
			continue
		}
		if idleFor > m.cfg.IdleThreshold {
			idle = append(idle, node)
		}
	}
	pending := len(m.queue)
	m.mu.Unlock()

	if len(idle) > 0 {
		m.logger.Debug("pinging idle nodes", zap.Int("nodes", len(idle)))
		err := workerpool.Each(ctx, m.cfg.PingConcurrency, idle, func(_ context.Context, node *Node) error {
			if err := node.transport.Ping(); err != nil {
				return fmt.Errorf("node %d (%s): %w", node.id, node.Address(), err)
			}
			return nil
		})
		if err != nil {
			m.logger.Warn("ping failed", zap.Error(err))
		}
	}

	if hasActive && pending > 0 {
		m.replayQueue()
	}
	m.reportNodes()
}
