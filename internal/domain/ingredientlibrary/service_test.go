package ingredientlibrary

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/kjanat/poo-tracker/backend/internal/normalize"
)

type fakeRepository struct {
	mu      sync.Mutex
	entries map[string]*Entry // keyed by ownerID + "/" + normalizedName
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{entries: make(map[string]*Entry)}
}

func key(ownerID, normalizedName string) string { return ownerID + "/" + normalizedName }

func (r *fakeRepository) GetByNormalizedName(ctx context.Context, ownerID, normalizedName string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key(ownerID, normalizedName)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepository) GetByID(ctx context.Context, ownerID, id string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Entry
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepository) Save(ctx context.Context, entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[key(entry.OwnerID, entry.NormalizedName)] = &cp
	return nil
}

func (r *fakeRepository) Stats(ctx context.Context, ownerID string) (*Stats, error) {
	entries, _ := r.ListByOwner(ctx, ownerID)
	stats := &Stats{Total: len(entries)}
	var confSum float64
	for _, e := range entries {
		confSum += e.Confidence
		if e.Confidence >= 0.8 {
			stats.HighConfidenceCount++
		}
	}
	if len(entries) > 0 {
		stats.AvgConfidence = confSum / float64(len(entries))
	}
	return stats, nil
}

func testService() (*Service, *fakeRepository) {
	tables := normalize.NewTables(normalize.DefaultAliases(), normalize.DefaultUnitGrams())
	repo := newFakeRepository()
	return NewService(repo, tables, DefaultConfig(), nil), repo
}

func TestObserve_FirstCorrectionScenario(t *testing.T) {
	// S1 — chutney 50g/68kcal correction.
	svc, _ := testService()
	entry, err := svc.Observe(context.Background(), Observation{
		OwnerID: "u1", RawName: "chutney", Quantity: 50, Unit: "g",
		PerServingCalories: 68,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SampleSize != 1 {
		t.Fatalf("expected sample_size=1, got %d", entry.SampleSize)
	}
	if math.Abs(entry.AvgCaloriesPer100g-136) > 1e-9 {
		t.Fatalf("expected avg_calories_per_100g=136, got %v", entry.AvgCaloriesPer100g)
	}
	if entry.StddevCalories != 0 {
		t.Fatalf("expected stddev=0, got %v", entry.StddevCalories)
	}
	if math.Abs(entry.Confidence-0.18) > 0.01 {
		t.Fatalf("expected confidence ~0.18, got %v", entry.Confidence)
	}
	if entry.TypicalQuantity != 50 || entry.TypicalUnit != "g" {
		t.Fatalf("expected typical_quantity=50 unit=g, got %v %v", entry.TypicalQuantity, entry.TypicalUnit)
	}
}

func TestObserve_AliasCollapseScenario(t *testing.T) {
	// S3 — "Idly" then "idli" collapse onto one row.
	svc, repo := testService()
	ctx := context.Background()

	_, err := svc.Observe(ctx, Observation{OwnerID: "u1", RawName: "Idly", Quantity: 100, Unit: "g", PerServingCalories: 160})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, err := svc.Observe(ctx, Observation{OwnerID: "u1", RawName: "idli", Quantity: 100, Unit: "g", PerServingCalories: 140})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.SampleSize != 2 {
		t.Fatalf("expected sample_size=2, got %d", entry.SampleSize)
	}
	if math.Abs(entry.AvgCaloriesPer100g-150) > 1e-9 {
		t.Fatalf("expected mean=150, got %v", entry.AvgCaloriesPer100g)
	}
	if math.Abs(entry.StddevCalories-math.Sqrt(200)) > 1e-6 {
		t.Fatalf("expected stddev=sqrt(200), got %v", entry.StddevCalories)
	}

	all, _ := repo.ListByOwner(ctx, "u1")
	if len(all) != 1 {
		t.Fatalf("expected a single collapsed library row, got %d", len(all))
	}
	if all[0].NormalizedName != "idli" {
		t.Fatalf("expected normalized name idli, got %q", all[0].NormalizedName)
	}
}

func TestObserve_UnknownUnitSkipsSilently(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()
	_, err := svc.Observe(ctx, Observation{OwnerID: "u1", RawName: "mystery", Quantity: 1, Unit: "bushel", PerServingCalories: 100})
	if err != ErrUnknownUnit {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
	all, _ := repo.ListByOwner(ctx, "u1")
	if len(all) != 0 {
		t.Fatalf("expected no library mutation, got %d entries", len(all))
	}
}

func TestObserve_ConcurrentCorrectionsPreserveCount(t *testing.T) {
	// S7 — two concurrent corrections to the same ingredient.
	svc, repo := testService()
	ctx := context.Background()

	var wg sync.WaitGroup
	values := []float64{60, 70}
	for _, v := range values {
		wg.Add(1)
		go func(calories float64) {
			defer wg.Done()
			_, err := svc.Observe(ctx, Observation{
				OwnerID: "u1", RawName: "rice", Quantity: 100, Unit: "g",
				PerServingCalories: calories,
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(v)
	}
	wg.Wait()

	entry, err := repo.GetByNormalizedName(ctx, "u1", "rice")
	if err != nil {
		t.Fatalf("expected entry to exist: %v", err)
	}
	if entry.SampleSize != 2 {
		t.Fatalf("expected sample_size=2 after two concurrent corrections, got %d", entry.SampleSize)
	}
	wantMean := (60.0 + 70.0) / 2
	if math.Abs(entry.AvgCaloriesPer100g-wantMean) > 1e-9 {
		t.Fatalf("expected mean=%v, got %v", wantMean, entry.AvgCaloriesPer100g)
	}
}

func TestObserve_PerUserIsolation(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()
	_, err := svc.Observe(ctx, Observation{OwnerID: "a", RawName: "rice", Quantity: 100, Unit: "g", PerServingCalories: 100})
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.Observe(ctx, Observation{OwnerID: "b", RawName: "rice", Quantity: 100, Unit: "g", PerServingCalories: 500})
	if err != nil {
		t.Fatal(err)
	}

	aEntry, _ := repo.GetByNormalizedName(ctx, "a", "rice")
	bEntry, _ := repo.GetByNormalizedName(ctx, "b", "rice")
	if aEntry.AvgCaloriesPer100g == bEntry.AvgCaloriesPer100g {
		t.Fatal("expected isolated library rows per owner")
	}
	if aEntry.AvgCaloriesPer100g != 100 || bEntry.AvgCaloriesPer100g != 500 {
		t.Fatalf("unexpected cross-contamination: a=%v b=%v", aEntry.AvgCaloriesPer100g, bEntry.AvgCaloriesPer100g)
	}
}
