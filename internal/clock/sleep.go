// Package clock provides helpers for pacing polling loops.
package clock

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff doubles the pause between consecutive failures, starting at initial and capped at max.
// It never gives up; Reset starts over after a success.
type Backoff struct {
	b *backoff.ExponentialBackOff
}

func NewBackoff(initial, max time.Duration) *Backoff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     initial,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         max,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return &Backoff{b: b}
}

// Next returns the pause before the next attempt.
func (b *Backoff) Next() time.Duration {
	return b.b.NextBackOff()
}

func (b *Backoff) Reset() {
	b.b.Reset()
}
