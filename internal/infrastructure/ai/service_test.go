package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

type fakeProvider struct {
	calls   int
	failN   int // number of leading calls that fail before succeeding
	failAll bool
	kind    FailureKind
}

func (p *fakeProvider) Analyze(ctx context.Context, req Request) (*Result, error) {
	p.calls++
	if p.failAll || p.calls <= p.failN {
		kind := p.kind
		if kind == "" {
			kind = FailureTransport
		}
		return nil, &Error{Kind: kind, Err: errors.New("simulated failure")}
	}
	return &Result{
		Nutrition:  shared.NutritionFields{Calories: shared.Float64Ptr(500)},
		Confidence: 0.8,
	}, nil
}

func TestAdapter_RetriesTransientFailuresThenSucceeds(t *testing.T) {
	provider := &fakeProvider{failN: 2}
	adapter := NewAdapter(provider, nil, nil, RetryConfig{MaxAttempts: 3, InitialInterval: time.Millisecond, Multiplier: 2}, nil)

	result, err := adapter.Analyze(context.Background(), Request{OwnerID: "u1", Description: "rice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsFallback {
		t.Fatal("expected a real result once the provider succeeds")
	}
	if provider.calls != 3 {
		t.Fatalf("expected 3 calls (2 failures + 1 success), got %d", provider.calls)
	}
}

func TestAdapter_ParseErrorIsNotRetried(t *testing.T) {
	provider := &fakeProvider{failAll: true, kind: FailureParse}
	adapter := NewAdapter(provider, nil, nil, RetryConfig{MaxAttempts: 3, InitialInterval: time.Millisecond, Multiplier: 2}, nil)

	result, err := adapter.Analyze(context.Background(), Request{OwnerID: "u1"})
	if err == nil {
		t.Fatal("expected parse error to propagate, not fall back")
	}
	if result != nil {
		t.Fatal("expected nil result on parse error")
	}
	if provider.calls != 1 {
		t.Fatalf("expected exactly 1 call (no retry on parse error), got %d", provider.calls)
	}
}

func TestAdapter_ExhaustedRetriesReturnsFallback(t *testing.T) {
	provider := &fakeProvider{failAll: true}
	adapter := NewAdapter(provider, nil, nil, RetryConfig{MaxAttempts: 3, InitialInterval: time.Millisecond, Multiplier: 2}, nil)

	result, err := adapter.Analyze(context.Background(), Request{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("expected fallback without error, got %v", err)
	}
	if !result.IsFallback {
		t.Fatal("expected tagged fallback result")
	}
	if result.Confidence > 0.3 {
		t.Fatalf("expected low-confidence fallback, got %v", result.Confidence)
	}
}

func TestAdapter_RateLimiterRejectsExcessCalls(t *testing.T) {
	provider := &fakeProvider{}
	limiter := newMemoryRateLimiter(1, time.Minute)
	adapter := NewAdapter(provider, nil, limiter, DefaultRetryConfig(), nil)

	_, err := adapter.Analyze(context.Background(), Request{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error on first call: %v", err)
	}
	_, err = adapter.Analyze(context.Background(), Request{OwnerID: "u1"})
	if err != ErrRateLimited {
		t.Fatalf("expected ErrRateLimited on second call, got %v", err)
	}
}

func TestBreaker_TripsAfterFailureThreshold(t *testing.T) {
	cfg := BreakerConfig{WindowSize: 10, FailureThreshold: 0.5, CooldownPeriod: time.Hour}
	breaker := NewBreaker(nil, cfg, nil)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		breaker.RecordResult(ctx, "u1", false)
	}
	for i := 0; i < 4; i++ {
		breaker.RecordResult(ctx, "u1", true)
	}

	if breaker.State() != BreakerOpen {
		t.Fatalf("expected breaker OPEN after 60%% failure rate, got %v", breaker.State())
	}
	if breaker.Allow() {
		t.Fatal("expected Allow()=false while OPEN and cooldown has not elapsed")
	}
}

func TestBreaker_HalfOpenProbeRecoversToClosed(t *testing.T) {
	cfg := BreakerConfig{WindowSize: 10, FailureThreshold: 0.5, CooldownPeriod: time.Millisecond}
	breaker := NewBreaker(nil, cfg, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		breaker.RecordResult(ctx, "u1", false)
	}
	if breaker.State() != BreakerOpen {
		t.Fatalf("expected OPEN, got %v", breaker.State())
	}

	time.Sleep(2 * time.Millisecond)
	if !breaker.Allow() {
		t.Fatal("expected Allow()=true after cooldown (HALF_OPEN probe)")
	}
	if breaker.State() != BreakerHalfOpen {
		t.Fatalf("expected HALF_OPEN after cooldown, got %v", breaker.State())
	}

	breaker.RecordResult(ctx, "u1", true)
	if breaker.State() != BreakerClosed {
		t.Fatalf("expected CLOSED after successful probe, got %v", breaker.State())
	}
}
