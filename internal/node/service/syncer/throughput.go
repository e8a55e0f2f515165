package syncer

import (
	"sync"
	"time"
)

// ThroughputStats counts processed items over a sliding window.
type ThroughputStats struct {
	mu      sync.Mutex
	window  time.Duration
	now     func() time.Time
	samples []throughputSample
	total   uint64
}

type throughputSample struct {
	at    time.Time
	count int
}

func NewThroughputStats(window time.Duration) *ThroughputStats {
	if window <= 0 {
		window = throughputWindow
	}
	return &ThroughputStats{window: window, now: time.Now}
}

func (s *ThroughputStats) Add(count int) {
	if count <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.samples = append(s.samples, throughputSample{at: now, count: count})
	s.total += uint64(count)
	s.pruneLocked(now)
}

// PerSecond averages the items recorded within the window over the window length.
func (s *ThroughputStats) PerSecond() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now())
	sum := 0
	for _, sample := range s.samples {
		sum += sample.count
	}
	return float64(sum) / s.window.Seconds()
}

func (s *ThroughputStats) Total() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *ThroughputStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	drop := 0
	for drop < len(s.samples) && !s.samples[drop].at.After(cutoff) {
		drop++
	}
	s.samples = s.samples[drop:]
}
