package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// RateLimiter throttles invocations with a token bucket.
// A limiter configured with a zero rate admits everything.
type RateLimiter struct {
	mu      sync.RWMutex
	limiter *rate.Limiter // nil when throttling is disabled
}

// NewRateLimiter creates a limiter from settings.
func NewRateLimiter(cfg domain.LimitSettings) *RateLimiter {
	r := &RateLimiter{}
	r.Update(cfg)
	return r
}

// Update applies new limits. The bucket is replaced and starts full;
// callers already waiting finish against the old one.
func (r *RateLimiter) Update(cfg domain.LimitSettings) {
	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), burst)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.limiter = limiter
}

func (r *RateLimiter) current() *rate.Limiter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.limiter
}

// Enabled reports whether throttling is active.
func (r *RateLimiter) Enabled() bool {
	return r.current() != nil
}

// Wait blocks until an invocation may proceed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	limiter := r.current()
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}
	return nil
}

// Allow reports whether an invocation may proceed now, without waiting.
func (r *RateLimiter) Allow() bool {
	limiter := r.current()
	return limiter == nil || limiter.Allow()
}
