package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/ai"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/repository/memory"
	"github.com/kjanat/poo-tracker/backend/internal/validation"
)

// fakeProvider is a hand-rolled ai.Provider stub: it returns whatever result
// or error it was configured with, once per call.
type fakeProvider struct {
	result *ai.Result
	err    error
}

func (f *fakeProvider) Analyze(ctx context.Context, req ai.Request) (*ai.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestAdapter(provider ai.Provider) *ai.Adapter {
	return ai.NewAdapter(provider, nil, nil, ai.RetryConfig{
		MaxAttempts:     1,
		InitialInterval: time.Millisecond,
		Multiplier:      1,
	}, zap.NewNop())
}

func newTestMealService(provider ai.Provider) (*MealService, meal.Repository) {
	repo := memory.NewMealRepository()
	ingredientRepo := memory.NewMealIngredientRepository()
	svc := NewMealServiceWithIntelligence(
		repo,
		ingredientRepo,
		newTestAdapter(provider),
		nil,
		nil,
		validation.DefaultNutritionThresholds(),
		zap.NewNop(),
	).(*MealService)
	return svc, repo
}

// TestMealService_Create_ValidationError_NeedsReview covers the "impossible
// sugar" scenario: the adapter call succeeds but the numbers it returns are
// physically implausible (sugar_g exceeds carbs_g). The meal must land on
// NEEDS_REVIEW, not FAILED, with the raw adapter response retained verbatim.
func TestMealService_Create_ValidationError_NeedsReview(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{
		result: &ai.Result{
			Nutrition: shared.NutritionFields{
				CarbsG: shared.Float64Ptr(30),
				SugarG: shared.Float64Ptr(45),
			},
			Confidence:  0.8,
			RawResponse: `{"carbs_g":30,"sugar_g":45}`,
		},
	}
	svc, repo := newTestMealService(provider)

	created, err := svc.Create(ctx, "user-1", &meal.CreateMealInput{
		Name:        "Suspicious smoothie",
		MealTime:    time.Now(),
		Description: "a smoothie",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, shared.AnalysisStatusNeedsReview, stored.AnalysisStatus)
	assert.Equal(t, `{"carbs_g":30,"sugar_g":45}`, stored.RawAdapterDump)
}

// TestMealService_Create_AdapterError_FailedWithFallback covers an adapter
// call that cannot produce a trustworthy response at all (a non-retryable
// parse failure). The meal must transition out of PENDING to FAILED, with a
// fallback nutrition estimate and the raw payload retained.
func TestMealService_Create_AdapterError_FailedWithFallback(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{
		err: &ai.Error{
			Kind:        ai.FailureParse,
			Err:         assertErr("truncated json"),
			RawResponse: `{"confidence":0.`,
		},
	}
	svc, repo := newTestMealService(provider)

	created, err := svc.Create(ctx, "user-1", &meal.CreateMealInput{
		Name:        "Mystery leftovers",
		MealTime:    time.Now(),
		Description: "leftovers",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, shared.AnalysisStatusFailed, stored.AnalysisStatus)
	assert.Equal(t, `{"confidence":0.`, stored.RawAdapterDump)
	require.NotNil(t, stored.Confidence)
	assert.LessOrEqual(t, *stored.Confidence, 0.3)
	calories, ok := stored.Nutrition.Get(shared.FieldCalories)
	require.True(t, ok)
	assert.Equal(t, 400.0, calories)
}

// TestMealService_Create_ValidationWarning_Completed covers an Atwater
// mismatch mild enough to only warrant a WARNING: the meal still completes
// and is saved with the adapter's reported nutrition.
func TestMealService_Create_ValidationWarning_Completed(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{
		result: &ai.Result{
			Nutrition: shared.NutritionFields{
				Calories: shared.Float64Ptr(500),
				ProteinG: shared.Float64Ptr(20),
				FatG:     shared.Float64Ptr(10),
				CarbsG:   shared.Float64Ptr(50),
			},
			Confidence:  0.75,
			RawResponse: `{"calories":500}`,
		},
	}
	svc, repo := newTestMealService(provider)

	created, err := svc.Create(ctx, "user-1", &meal.CreateMealInput{
		Name:        "Chicken bowl",
		MealTime:    time.Now(),
		Description: "chicken and rice bowl",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, shared.AnalysisStatusCompleted, stored.AnalysisStatus)
	assert.Empty(t, stored.RawAdapterDump)
	calories, ok := stored.Nutrition.Get(shared.FieldCalories)
	require.True(t, ok)
	assert.Equal(t, 500.0, calories)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
