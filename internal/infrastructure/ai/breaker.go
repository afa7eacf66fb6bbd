package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BreakerState is one of the three states from spec.md §4.2's state machine.
type BreakerState string

const (
	BreakerClosed   BreakerState = "CLOSED"
	BreakerOpen     BreakerState = "OPEN"
	BreakerHalfOpen BreakerState = "HALF_OPEN"
)

// BreakerConfig tunes the failure-rate threshold, sliding window, and
// cooldown used to trip and reset the breaker.
type BreakerConfig struct {
	WindowSize       int           // number of recent calls tracked
	FailureThreshold float64       // fraction of WindowSize, e.g. 0.5
	CooldownPeriod   time.Duration // e.g. 30s
}

// DefaultBreakerConfig matches spec.md's documented "sliding window of N
// calls exceeds 50%" example.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{WindowSize: 20, FailureThreshold: 0.5, CooldownPeriod: 30 * time.Second}
}

// slidingWindowStore tracks recent call outcomes for a single adapter
// instance. It is backed by Redis when a client is configured (so the
// window is shared across process instances) and by an in-process ring
// buffer when no client is configured. A failed Redis update does not fall
// back to the in-process buffer: RecordResult logs it and leaves the breaker
// state unchanged, so the call path is never blocked (spec.md §5 "Caching").
type slidingWindowStore interface {
	Record(ctx context.Context, key string, success bool) (failureRate float64, sampleCount int, err error)
}

type redisWindowStore struct {
	client     *redis.Client
	windowSize int
}

func newRedisWindowStore(client *redis.Client, windowSize int) *redisWindowStore {
	return &redisWindowStore{client: client, windowSize: windowSize}
}

func (s *redisWindowStore) Record(ctx context.Context, key string, success bool) (float64, int, error) {
	val := "0"
	if !success {
		val = "1"
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, val)
	pipe.LTrim(ctx, key, 0, int64(s.windowSize-1))
	listCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Expire(ctx, key, 10*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("redis breaker window update failed: %w", err)
	}

	values := listCmd.Val()
	failures := 0
	for _, v := range values {
		if v == "1" {
			failures++
		}
	}
	if len(values) == 0 {
		return 0, 0, nil
	}
	return float64(failures) / float64(len(values)), len(values), nil
}

type memoryWindowStore struct {
	mu      sync.Mutex
	windows map[string][]bool
	size    int
}

func newMemoryWindowStore(size int) *memoryWindowStore {
	return &memoryWindowStore{windows: make(map[string][]bool), size: size}
}

func (s *memoryWindowStore) Record(ctx context.Context, key string, success bool) (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := append(s.windows[key], success)
	if len(w) > s.size {
		w = w[len(w)-s.size:]
	}
	s.windows[key] = w

	failures := 0
	for _, ok := range w {
		if !ok {
			failures++
		}
	}
	return float64(failures) / float64(len(w)), len(w), nil
}

// Breaker implements the CLOSED/OPEN/HALF_OPEN state machine. It is safe
// for concurrent use.
type Breaker struct {
	cfg    BreakerConfig
	store  slidingWindowStore
	logger *zap.Logger

	mu           sync.Mutex
	state        BreakerState
	openedAt     time.Time
}

// NewBreaker constructs a Breaker. redisClient may be nil, in which case the
// breaker falls back to an in-process window (single-instance only).
func NewBreaker(redisClient *redis.Client, cfg BreakerConfig, logger *zap.Logger) *Breaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	var store slidingWindowStore
	if redisClient != nil {
		store = newRedisWindowStore(redisClient, cfg.WindowSize)
	} else {
		store = newMemoryWindowStore(cfg.WindowSize)
	}
	return &Breaker{cfg: cfg, store: store, logger: logger, state: BreakerClosed}
}

// Allow reports whether a call should proceed, transitioning OPEN -> HALF_OPEN
// once the cooldown has elapsed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case BreakerOpen:
		if time.Since(b.openedAt) >= b.cfg.CooldownPeriod {
			b.state = BreakerHalfOpen
			return true
		}
		return false
	default:
		return true
	}
}

// RecordResult folds a call outcome into the sliding window and updates the
// state machine.
func (b *Breaker) RecordResult(ctx context.Context, ownerID string, success bool) {
	b.mu.Lock()
	if b.state == BreakerHalfOpen {
		if success {
			b.state = BreakerClosed
		} else {
			b.state = BreakerOpen
			b.openedAt = time.Now()
		}
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	failureRate, sampleCount, err := b.store.Record(ctx, "ai_breaker:"+ownerID, success)
	if err != nil {
		b.logger.Warn("breaker window update failed, leaving state unchanged", zap.Error(err))
		return
	}
	if sampleCount < b.cfg.WindowSize/2 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if failureRate > b.cfg.FailureThreshold && b.state == BreakerClosed {
		b.state = BreakerOpen
		b.openedAt = time.Now()
		b.logger.Warn("ai adapter circuit breaker tripped", zap.Float64("failure_rate", failureRate))
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
