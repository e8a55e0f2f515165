package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerManagerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "requests_total",
		Help:      "Count of completed peer requests.",
	}, []string{"network", "kind", "status"})

	peerManagerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "request_duration_seconds",
		Help:      "Duration of peer requests including retries.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"network", "kind", "status"})

	peerManagerRequestAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "request_attempts",
		Help:      "Number of dispatch attempts per request.",
		Buckets:   prometheus.LinearBuckets(1, 1, 5),
	}, []string{"network", "kind"})

	peerManagerTimeoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "timeouts_total",
		Help:      "Count of request attempts that timed out.",
	}, []string{"network", "kind"})

	peerManagerQueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "queued_total",
		Help:      "Count of requests deferred until a node became active.",
	}, []string{"network", "kind"})

	peerManagerReplayedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "replayed_total",
		Help:      "Count of deferred requests replayed.",
	}, []string{"network"})

	peerManagerEvictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "evictions_total",
		Help:      "Count of nodes evicted to make room for new ones.",
	}, []string{"network"})

	peerManagerNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_manager",
		Name:      "nodes",
		Help:      "Tracked nodes by activity.",
	}, []string{"network", "state"})
)

// PeerManager tracks request dispatch and node membership.
type PeerManager struct {
	network string
}

func NewPeerManager(network model.Network) *PeerManager {
	return &PeerManager{network: networkLabel(network)}
}

func (m PeerManager) ObserveRequest(kind string, err error, attempts int, started time.Time) {
	peerManagerRequestsTotal.WithLabelValues(m.network, kind, statusOf(err)).Inc()
	peerManagerRequestDuration.WithLabelValues(m.network, kind, statusOf(err)).Observe(time.Since(started).Seconds())
	peerManagerRequestAttempts.WithLabelValues(m.network, kind).Observe(float64(attempts))
}

func (m PeerManager) ObserveTimeout(kind string) {
	peerManagerTimeoutsTotal.WithLabelValues(m.network, kind).Inc()
}

func (m PeerManager) ObserveQueued(kind string) {
	peerManagerQueuedTotal.WithLabelValues(m.network, kind).Inc()
}

func (m PeerManager) ObserveReplay(requests int) {
	peerManagerReplayedTotal.WithLabelValues(m.network).Add(float64(requests))
}

func (m PeerManager) ObserveEviction() {
	peerManagerEvictionsTotal.WithLabelValues(m.network).Inc()
}

func (m PeerManager) SetNodes(total, active int) {
	peerManagerNodes.WithLabelValues(m.network, "active").Set(float64(active))
	peerManagerNodes.WithLabelValues(m.network, "inactive").Set(float64(total - active))
}
