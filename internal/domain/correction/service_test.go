package correction

import (
	"context"
	"sync"
	"testing"

	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

type fakeRepo struct {
	mu      sync.Mutex
	rows    []*AiCorrectionLog
	editKey map[string]bool
}

func newFakeRepo() *fakeRepo { return &fakeRepo{editKey: make(map[string]bool)} }

func (r *fakeRepo) Create(ctx context.Context, log *AiCorrectionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, log)
	if log.EditKey != "" {
		r.editKey[log.EditKey] = true
	}
	return nil
}

func (r *fakeRepo) ExistsByEditKey(ctx context.Context, editKey string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.editKey[editKey], nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*AiCorrectionLog, error) {
	return r.rows, nil
}

func (r *fakeRepo) ListByMealID(ctx context.Context, mealID string) ([]*AiCorrectionLog, error) {
	var out []*AiCorrectionLog
	for _, row := range r.rows {
		if row.MealID == mealID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeLearner struct {
	calls []ingredientlibrary.Observation
}

func (l *fakeLearner) Observe(ctx context.Context, obs ingredientlibrary.Observation) (*ingredientlibrary.Entry, error) {
	l.calls = append(l.calls, obs)
	return &ingredientlibrary.Entry{}, nil
}

func ingredient(calories, protein, fat, carbs float64, corrected bool) meal.MealIngredient {
	return meal.MealIngredient{
		MealID:   "meal-1",
		Name:     "rice",
		Quantity: 100,
		Unit:     "g",
		Nutrition: shared.NutritionFields{
			Calories: shared.Float64Ptr(calories),
			ProteinG: shared.Float64Ptr(protein),
			FatG:     shared.Float64Ptr(fat),
			CarbsG:   shared.Float64Ptr(carbs),
		},
		IsUserCorrected: corrected,
	}
}

func TestRecordEdit_WritesOneRowPerChangedField(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	before := ingredient(100, 2, 1, 20, false)
	after := ingredient(120, 2, 1, 25, true)

	written, err := svc.RecordEdit(context.Background(), EditInput{
		Before: before, After: after, OwnerID: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 rows (calories, carbs_g), got %d", written)
	}
}

func TestRecordEdit_SkipsUnchangedAndZeroValueFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	before := ingredient(100, 2, 1, 20, false)
	after := before
	after.Nutrition.Calories = shared.Float64Ptr(0)

	written, err := svc.RecordEdit(context.Background(), EditInput{
		Before: before, After: after, OwnerID: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 0 {
		t.Fatalf("expected 0 rows (user_value=0 skipped, rest unchanged), got %d", written)
	}
}

func TestRecordEdit_IdempotentOnRedeliveredEditKey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	before := ingredient(100, 2, 1, 20, false)
	after := ingredient(120, 2, 1, 20, true)

	in := EditInput{Before: before, After: after, OwnerID: "u1", EditKey: "edit-1"}
	first, err := svc.RecordEdit(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 1 {
		t.Fatalf("expected 1 row, got %d", first)
	}

	second, err := svc.RecordEdit(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != 0 {
		t.Fatalf("expected redelivery to write 0 rows, got %d", second)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly 1 stored row, got %d", len(repo.rows))
	}
}

func TestRecordEdit_TriggersLearnerOnlyOnFirstCorrection(t *testing.T) {
	repo := newFakeRepo()
	learner := &fakeLearner{}
	svc := NewService(repo, learner, nil)

	before := ingredient(100, 2, 1, 20, false)
	after := ingredient(120, 2, 1, 20, true)

	if _, err := svc.RecordEdit(context.Background(), EditInput{Before: before, After: after, OwnerID: "u1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(learner.calls) != 1 {
		t.Fatalf("expected learner invoked once, got %d", len(learner.calls))
	}

	// Second correction on an already-corrected ingredient must not
	// re-trigger learning.
	before2 := after
	after2 := ingredient(130, 2, 1, 20, true)
	if _, err := svc.RecordEdit(context.Background(), EditInput{Before: before2, After: after2, OwnerID: "u1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(learner.calls) != 1 {
		t.Fatalf("expected learner still invoked exactly once, got %d", len(learner.calls))
	}
}
