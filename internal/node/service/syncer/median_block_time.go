package syncer

import (
	"slices"
	"sync"
	"time"
)

// MedianBlockTime is the median timestamp of the most recent blocks on the synchronized chain.
type MedianBlockTime struct {
	mu    sync.Mutex
	size  int
	times []time.Time
}

func NewMedianBlockTime(size int) *MedianBlockTime {
	if size <= 0 {
		size = medianWindowSize
	}
	return &MedianBlockTime{size: size, times: make([]time.Time, 0, size)}
}

// Seed replaces the window with unix timestamps ordered newest first, as stores return them.
func (m *MedianBlockTime) Seed(newestFirst []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.times = m.times[:0]
	for i := min(len(newestFirst), m.size) - 1; i >= 0; i-- {
		m.times = append(m.times, time.Unix(newestFirst[i], 0).UTC())
	}
}

func (m *MedianBlockTime) Add(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.times) == m.size {
		copy(m.times, m.times[1:])
		m.times = m.times[:m.size-1]
	}
	m.times = append(m.times, t)
}

// Median returns the zero time while the window is empty.
func (m *MedianBlockTime) Median() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.times) == 0 {
		return time.Time{}
	}
	sorted := slices.Clone(m.times)
	slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })
	return sorted[len(sorted)/2]
}

func (m *MedianBlockTime) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.times)
}
