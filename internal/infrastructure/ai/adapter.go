// Package ai implements the AI Analysis Adapter (spec.md §4.2): it calls an
// opaque external nutrition-estimation model, retries transient failures
// with exponential backoff, trips a circuit breaker under sustained
// failure, and always degrades to a tagged low-confidence fallback rather
// than propagating an open breaker to the caller.
package ai

import (
	"context"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

// FailureKind classifies an adapter failure for the orchestrator.
type FailureKind string

const (
	FailureTransport   FailureKind = "transport_error"
	FailureRateLimited FailureKind = "rate_limited"
	FailureParse       FailureKind = "parse_error"
	FailureTimeout     FailureKind = "timeout"
)

// Error is a structured adapter failure.
type Error struct {
	Kind FailureKind
	Err  error

	// RawResponse is the adapter's raw response body, when one was received
	// (e.g. an unparseable payload). Empty when the failure happened before
	// any body could be read (transport/timeout with no response).
	RawResponse string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// IngredientEstimate is one AI-decomposed ingredient line.
type IngredientEstimate struct {
	Name      string
	Quantity  float64
	Unit      string
	Nutrition shared.NutritionFields
}

// Result is a successful adapter response.
type Result struct {
	Nutrition   shared.NutritionFields
	Ingredients []IngredientEstimate
	Confidence  float64
	IsFallback  bool // true when synthesized by the circuit breaker, never used for training

	// RawResponse is the adapter's raw response body, kept so a later
	// NEEDS_REVIEW verdict can retain it verbatim (spec.md §4.3).
	RawResponse string
}

// Request is the adapter's input contract.
type Request struct {
	OwnerID     string
	ImageHandle string
	Description string
	LocationKind string
	ClockBucket  string
}

// Provider is the opaque underlying model call, implemented by a concrete
// HTTP client adapter. Analyze should return a *Error for any failure so the
// retry/breaker pipeline can classify it.
type Provider interface {
	Analyze(ctx context.Context, req Request) (*Result, error)
}

// fallbackCalories/fallbackConfidence follow spec.md §4.2's documented
// synthetic fallback: "calories ~= 400, confidence <= 0.3".
const (
	fallbackCalories   = 400.0
	fallbackConfidence = 0.3
)

func fallbackResult() *Result {
	return &Result{
		Nutrition: shared.NutritionFields{
			Calories: shared.Float64Ptr(fallbackCalories),
		},
		Confidence: fallbackConfidence,
		IsFallback: true,
	}
}

// FallbackResult returns the tagged low-confidence synthetic result used
// whenever the adapter cannot produce a trustworthy response at all — the
// circuit breaker path here, and the Ingestion Orchestrator's FAILED
// transition (spec.md §4.1 "Analysis adapter failure") in the caller.
func FallbackResult() *Result {
	return fallbackResult()
}
