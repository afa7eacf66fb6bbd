package ai

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisRateLimiter implements a fixed-window per-owner rate limiter backed
// by Redis INCR + EXPIRE, matching spec.md §5's "60/min per user" example.
// Cross-process consistent by construction.
type redisRateLimiter struct {
	client      *redis.Client
	limit       int
	window      time.Duration
	logger      *zap.Logger
	memoryLimiter *memoryRateLimiter // fallback if Redis is unreachable
}

// NewRedisRateLimiter constructs a per-owner rate limiter. When client is
// nil, it behaves as an in-process-only limiter (single instance).
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	fallback := newMemoryRateLimiter(limit, window)
	if client == nil {
		return fallback
	}
	return &redisRateLimiter{client: client, limit: limit, window: window, logger: logger, memoryLimiter: fallback}
}

func (l *redisRateLimiter) Allow(ownerID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	key := "ai_ratelimit:" + ownerID
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("redis rate limiter unreachable, falling back to in-process", zap.Error(err))
		return l.memoryLimiter.Allow(ownerID)
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
	return count <= int64(l.limit)
}

// memoryRateLimiter is a single-process fixed-window counter, used as the
// Redis fallback and in tests.
type memoryRateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	counts  map[string]int
	resetAt map[string]time.Time
}

func newMemoryRateLimiter(limit int, window time.Duration) *memoryRateLimiter {
	return &memoryRateLimiter{limit: limit, window: window, counts: make(map[string]int), resetAt: make(map[string]time.Time)}
}

func (l *memoryRateLimiter) Allow(ownerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if reset, ok := l.resetAt[ownerID]; !ok || now.After(reset) {
		l.counts[ownerID] = 0
		l.resetAt[ownerID] = now.Add(l.window)
	}
	l.counts[ownerID]++
	return l.counts[ownerID] <= l.limit
}
