package recipepattern

import (
	"context"
	"testing"

	"github.com/kjanat/poo-tracker/backend/internal/normalize"
)

type fakeRepo struct {
	patterns map[string]*Pattern
}

func newFakeRepo() *fakeRepo { return &fakeRepo{patterns: make(map[string]*Pattern)} }

func (r *fakeRepo) GetByNormalizedPrimary(ctx context.Context, ownerID, normalizedPrimary string) (*Pattern, error) {
	p, ok := r.patterns[ownerID+"/"+normalizedPrimary]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]*Pattern, error) {
	var out []*Pattern
	for _, p := range r.patterns {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Save(ctx context.Context, pattern *Pattern) error {
	r.patterns[pattern.OwnerID+"/"+pattern.NormalizedPrimary] = pattern
	return nil
}

func testTables() normalize.Tables {
	return normalize.NewTables(normalize.DefaultAliases(), normalize.DefaultUnitGrams())
}

func TestPrimaryIngredient_LargestCalorieContributionWins(t *testing.T) {
	ingredients := []IngredientObservation{
		{Name: "rice", Calories: 200, DisplayOrder: 0},
		{Name: "chicken", Calories: 350, DisplayOrder: 1},
		{Name: "sauce", Calories: 50, DisplayOrder: 2},
	}
	primary, err := PrimaryIngredient(ingredients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Name != "chicken" {
		t.Fatalf("expected chicken, got %q", primary.Name)
	}
}

func TestPrimaryIngredient_TiesBrokenByEarliestDisplayOrder(t *testing.T) {
	ingredients := []IngredientObservation{
		{Name: "rice", Calories: 200, DisplayOrder: 1},
		{Name: "beans", Calories: 200, DisplayOrder: 0},
	}
	primary, err := PrimaryIngredient(ingredients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Name != "beans" {
		t.Fatalf("expected beans (earlier display_order), got %q", primary.Name)
	}
}

func TestOnMealCompleted_IncrementsTimesMadeAndMergesCompanions(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testTables(), nil)
	ctx := context.Background()

	ingredients := []IngredientObservation{
		{Name: "chicken", Calories: 350, DisplayOrder: 0, Quantity: 200, Unit: "g"},
		{Name: "rice", Calories: 200, DisplayOrder: 1, Quantity: 150, Unit: "g"},
	}

	pattern, err := svc.OnMealCompleted(ctx, "u1", "chicken rice bowl", ingredients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pattern.TimesMade != 1 {
		t.Fatalf("expected times_made=1, got %d", pattern.TimesMade)
	}

	pattern2, err := svc.OnMealCompleted(ctx, "u1", "chicken rice bowl", ingredients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pattern2.TimesMade != 2 {
		t.Fatalf("expected times_made=2, got %d", pattern2.TimesMade)
	}
	for _, companion := range pattern2.CommonIngredients {
		if companion.ObservationCount != 2 {
			t.Fatalf("expected companion %q observation_count=2, got %d", companion.Name, companion.ObservationCount)
		}
	}
}

func TestSuggest_ExcludesIngredientsAlreadyInMealOrderedByCooccurrence(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testTables(), nil)
	ctx := context.Background()

	base := []IngredientObservation{
		{Name: "chicken", Calories: 350, DisplayOrder: 0, Quantity: 200, Unit: "g"},
		{Name: "rice", Calories: 200, DisplayOrder: 1, Quantity: 150, Unit: "g"},
		{Name: "sauce", Calories: 50, DisplayOrder: 2, Quantity: 20, Unit: "g"},
	}
	if _, err := svc.OnMealCompleted(ctx, "u1", "chicken bowl", base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.OnMealCompleted(ctx, "u1", "chicken bowl", base[:2]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	suggestions, err := svc.Suggest(ctx, "u1", "chicken", []string{"chicken"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions (rice, sauce), got %d", len(suggestions))
	}
	if suggestions[0].Name != "rice" {
		t.Fatalf("expected rice ranked first (higher co-occurrence), got %q", suggestions[0].Name)
	}
}
