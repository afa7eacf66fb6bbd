package prediction

import (
	"context"
	"math"
	"testing"

	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/normalize"
)

type fakeRepo struct {
	entries map[string]*ingredientlibrary.Entry
}

func newFakeRepo(entries ...*ingredientlibrary.Entry) *fakeRepo {
	r := &fakeRepo{entries: make(map[string]*ingredientlibrary.Entry)}
	for _, e := range entries {
		r.entries[e.NormalizedName] = e
	}
	return r
}

func (r *fakeRepo) GetByNormalizedName(ctx context.Context, ownerID, normalizedName string) (*ingredientlibrary.Entry, error) {
	e, ok := r.entries[normalizedName]
	if !ok {
		return nil, ingredientlibrary.ErrNotFound
	}
	return e, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, ownerID, id string) (*ingredientlibrary.Entry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ingredientlibrary.ErrNotFound
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]*ingredientlibrary.Entry, error) {
	var out []*ingredientlibrary.Entry
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeRepo) Save(ctx context.Context, entry *ingredientlibrary.Entry) error {
	r.entries[entry.NormalizedName] = entry
	return nil
}

func (r *fakeRepo) Stats(ctx context.Context, ownerID string) (*ingredientlibrary.Stats, error) {
	return &ingredientlibrary.Stats{Total: len(r.entries)}, nil
}

func testTables() normalize.Tables {
	return normalize.NewTables(normalize.DefaultAliases(), normalize.DefaultUnitGrams())
}

func TestPredict_ExactMatchScalesToQuantity(t *testing.T) {
	repo := newFakeRepo(&ingredientlibrary.Entry{
		ID: "1", NormalizedName: "rice", DisplayName: "rice",
		AvgCaloriesPer100g: 130, Confidence: 0.9, SampleSize: 10,
		TypicalQuantity: 100, TypicalUnit: "g",
	})
	svc := NewService(repo, testTables(), 2)

	result, err := svc.Predict(context.Background(), "u1", "rice", 200, "g")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched != "exact" {
		t.Fatalf("expected exact match, got %q", result.Matched)
	}
	if math.Abs(result.Calories-260) > 1e-9 {
		t.Fatalf("expected 260 calories for 200g, got %v", result.Calories)
	}
}

func TestPredict_FuzzyMatchWithinBound(t *testing.T) {
	repo := newFakeRepo(&ingredientlibrary.Entry{
		ID: "1", NormalizedName: "idli", DisplayName: "idli",
		AvgCaloriesPer100g: 150, Confidence: 0.5, SampleSize: 3,
		TypicalQuantity: 50, TypicalUnit: "g",
	})
	svc := NewService(repo, testTables(), 2)

	result, err := svc.Predict(context.Background(), "u1", "idl", 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched != "fuzzy" {
		t.Fatalf("expected fuzzy match, got %q", result.Matched)
	}
}

func TestPredict_NotFoundBeyondDistance(t *testing.T) {
	repo := newFakeRepo(&ingredientlibrary.Entry{ID: "1", NormalizedName: "rice", TypicalQuantity: 100, TypicalUnit: "g"})
	svc := NewService(repo, testTables(), 2)

	_, err := svc.Predict(context.Background(), "u1", "completely different thing", 0, "")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAutocomplete_RankedByConfidenceDescending(t *testing.T) {
	repo := newFakeRepo(
		&ingredientlibrary.Entry{ID: "1", NormalizedName: "apple pie", DisplayName: "apple pie", Confidence: 0.4},
		&ingredientlibrary.Entry{ID: "2", NormalizedName: "apple juice", DisplayName: "apple juice", Confidence: 0.9},
	)
	svc := NewService(repo, testTables(), 2)

	results, err := svc.Autocomplete(context.Background(), "u1", "apple", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	if results[0].DisplayName != "apple juice" {
		t.Fatalf("expected higher-confidence entry first, got %q", results[0].DisplayName)
	}
}
