// Package throttle implements token-bucket rate limiting for outbound calls
// to the external language APIs, so a burst of requests cannot exhaust a
// collaborator's quota.
package throttle

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps golang.org/x/time/rate with the call sites' blocking usage.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter allowing a sustained requestsPerSecond with the given
// burst capacity.
func New(requestsPerSecond float64, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a token is available or the context is canceled. Call it
// before each outbound request.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed right now without blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
