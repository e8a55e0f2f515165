package peer

import "time"

const (
	maxHealth          = 100
	maxLatencyPenalty  = 20
	latencyPenaltyStep = 250 * time.Millisecond
	maxPendingSends    = 64
)

// Health scores the reliability of one node from its round trips. A node with no history scores
// maxHealth. It is not safe for concurrent use: the Manager only touches it under its lock.
type Health struct {
	sent      uint64
	successes uint64
	failures  uint64
	pending   []time.Time
	latency   time.Duration
	now       func() time.Time
}

func NewHealth(now func() time.Time) *Health {
	if now == nil {
		now = time.Now
	}
	return &Health{now: now}
}

// OnMessageSent records a request awaiting a reply.
func (h *Health) OnMessageSent() {
	h.sent++
	h.pending = append(h.pending, h.now())
	if len(h.pending) > maxPendingSends {
		h.pending = h.pending[len(h.pending)-maxPendingSends:]
	}
}

// OnMessageReceived resolves the oldest pending request. Failures cover timeouts and failed sends.
func (h *Health) OnMessageReceived(success bool) {
	if success {
		h.successes++
	} else {
		h.failures++
	}
	if len(h.pending) == 0 {
		return
	}
	sentAt := h.pending[0]
	h.pending = h.pending[1:]
	if !success {
		return
	}

	rtt := h.now().Sub(sentAt)
	if rtt < 0 {
		rtt = 0
	}
	if h.successes == 1 {
		h.latency = rtt
		return
	}
	h.latency = (h.latency*4 + rtt) / 5
}

// CalculateHealth returns a score in [0, 100]: the success ratio of completed round trips minus a
// latency penalty of one point per 250ms of average round trip, capped at 20.
func (h *Health) CalculateHealth() int {
	score := maxHealth
	if total := h.successes + h.failures; total > 0 {
		score = int(h.successes * maxHealth / total)
	}

	penalty := int(h.latency / latencyPenaltyStep)
	if penalty > maxLatencyPenalty {
		penalty = maxLatencyPenalty
	}
	score -= penalty

	if score < 0 {
		return 0
	}
	return score
}

func (h *Health) Failures() uint64 {
	return h.failures
}

func (h *Health) Latency() time.Duration {
	return h.latency
}
