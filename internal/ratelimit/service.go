// Package ratelimit throttles requests per client IP with token buckets held
// in a bounded, expiring cache.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"ltrack-server/internal/observability"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const defaultMaxClients = 100000

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed    bool          `json:"allowed"`
	Limit      int           `json:"limit"`
	Remaining  int           `json:"remaining"`
	RetryAfter time.Duration `json:"retry_after,omitempty"`
}

// Service hands out one limiter per client key. Every check refreshes the
// key's TTL, so only a key idle for a full window is evicted and starts again
// with a full bucket.
type Service struct {
	maxRequests int
	window      time.Duration
	limit       rate.Limit

	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	logger   *observability.Logger
}

// NewService allows maxRequests per window per key, refilled evenly across the window
func NewService(maxRequests int, window time.Duration, logger *observability.Logger) *Service {
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &Service{
		maxRequests: maxRequests,
		window:      window,
		limit:       rate.Every(window / time.Duration(maxRequests)),
		limiters:    expirable.NewLRU[string, *rate.Limiter](defaultMaxClients, nil, window),
		logger:      logger,
	}
}

func (s *Service) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(s.limit, s.maxRequests)
	}
	// Add resets the expiry; Get alone does not
	s.limiters.Add(key, l)
	return l
}

// CheckRateLimit consumes one token for key at now
func (s *Service) CheckRateLimit(ctx context.Context, key string, now time.Time) RateLimitResult {
	l := s.limiter(key)
	result := RateLimitResult{Limit: s.maxRequests}

	if l.AllowN(now, 1) {
		result.Allowed = true
		result.Remaining = max(0, int(l.TokensAt(now)))
		return result
	}

	reservation := l.ReserveN(now, 1)
	result.RetryAfter = reservation.DelayFrom(now)
	reservation.CancelAt(now)

	s.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "client", Value: key}), "rate limit exceeded")
	return result
}
