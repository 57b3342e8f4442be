// Package pipeline orchestrates per-unit structured extraction: one record
// per article unit, paced by an injectable limiter.
package pipeline

import (
	"context"
	"time"
)

// Limiter paces consecutive calls to the generation service. Wait blocks
// until the next call may proceed or ctx is cancelled. Pacing is
// backpressure against collaborator rate limits, not a correctness
// requirement, so implementations are free to return immediately.
type Limiter interface {
	Wait(ctx context.Context) error
}

// DelayLimiter sleeps a fixed interval between calls. It is the default
// pacing used against hosted endpoints.
type DelayLimiter struct {
	Delay time.Duration
}

// Wait sleeps for the configured delay, returning early with ctx.Err() on
// cancellation. A non-positive delay returns immediately.
func (l DelayLimiter) Wait(ctx context.Context) error {
	if l.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(l.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NopLimiter applies no pacing. Used by tests and local backends.
type NopLimiter struct{}

// Wait returns immediately.
func (NopLimiter) Wait(ctx context.Context) error {
	return ctx.Err()
}
