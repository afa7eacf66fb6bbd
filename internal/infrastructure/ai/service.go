package ai

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryConfig controls the exponential backoff policy (spec.md §4.2:
// "3 attempts, delays 2s/4s/8s").
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	Multiplier      float64
}

// DefaultRetryConfig matches spec.md's documented example.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialInterval: 2 * time.Second, Multiplier: 2}
}

// RateLimiter bounds adapter calls per owner within a fixed time window; it
// does not bound concurrent calls (spec.md §5).
type RateLimiter interface {
	Allow(ownerID string) bool
}

// ErrRateLimited is returned when the caller has exceeded its adapter quota.
var ErrRateLimited = errors.New("ai adapter: too many requests")

// Adapter is the AI Analysis Adapter: Provider wrapped with retry, a
// circuit breaker, and a per-owner rate limiter.
type Adapter struct {
	provider Provider
	breaker  *Breaker
	limiter  RateLimiter
	retry    RetryConfig
	logger   *zap.Logger
}

// NewAdapter constructs the AI Analysis Adapter. limiter may be nil to skip
// rate limiting (e.g. in tests).
func NewAdapter(provider Provider, breaker *Breaker, limiter RateLimiter, retry RetryConfig, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{provider: provider, breaker: breaker, limiter: limiter, retry: retry, logger: logger}
}

// Analyze runs the full resilience pipeline: rate limit -> breaker check ->
// retried provider call -> breaker update. On an open breaker or exhausted
// retries it returns the tagged fallback result rather than an error, so the
// Ingestion Orchestrator can always proceed to validation (spec.md §4.1
// failure semantics).
func (a *Adapter) Analyze(ctx context.Context, req Request) (*Result, error) {
	if a.limiter != nil && !a.limiter.Allow(req.OwnerID) {
		return nil, ErrRateLimited
	}

	if a.breaker != nil && !a.breaker.Allow() {
		a.logger.Info("ai adapter circuit open, returning fallback", zap.String("owner_id", req.OwnerID))
		return fallbackResult(), nil
	}

	result, err := a.callWithRetry(ctx, req)

	if a.breaker != nil {
		a.breaker.RecordResult(ctx, req.OwnerID, err == nil)
	}

	if err != nil {
		var adapterErr *Error
		if errors.As(err, &adapterErr) && adapterErr.Kind == FailureParse {
			return nil, err
		}
		a.logger.Warn("ai adapter call failed after retries, returning fallback", zap.Error(err))
		return fallbackResult(), nil
	}

	return result, nil
}

func (a *Adapter) callWithRetry(ctx context.Context, req Request) (*Result, error) {
	var result *Result

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = a.retry.InitialInterval
	exp.Multiplier = a.retry.Multiplier
	exp.MaxElapsedTime = 0

	policy := backoff.WithContext(
		backoff.WithMaxRetries(exp, uint64(a.retry.MaxAttempts-1)),
		ctx,
	)

	operation := func() error {
		r, err := a.provider.Analyze(ctx, req)
		if err != nil {
			var adapterErr *Error
			if errors.As(err, &adapterErr) && adapterErr.Kind == FailureParse {
				return backoff.Permanent(err)
			}
			return err
		}
		result = r
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return result, nil
}
