package memory

import (
	"context"
	"sync"

	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
)

// IngredientLibraryRepository implements ingredientlibrary.Repository using
// in-memory storage, keyed by (owner_id, normalized_name).
type IngredientLibraryRepository struct {
	mu      sync.RWMutex
	entries map[string]*ingredientlibrary.Entry
}

// NewIngredientLibraryRepository creates a new in-memory library repository.
func NewIngredientLibraryRepository() ingredientlibrary.Repository {
	return &IngredientLibraryRepository{entries: make(map[string]*ingredientlibrary.Entry)}
}

func libraryKey(ownerID, normalizedName string) string { return ownerID + "/" + normalizedName }

func (r *IngredientLibraryRepository) GetByNormalizedName(ctx context.Context, ownerID, normalizedName string) (*ingredientlibrary.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[libraryKey(ownerID, normalizedName)]
	if !ok {
		return nil, ingredientlibrary.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *IngredientLibraryRepository) GetByID(ctx context.Context, ownerID, id string) (*ingredientlibrary.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, ingredientlibrary.ErrNotFound
}

func (r *IngredientLibraryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*ingredientlibrary.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*ingredientlibrary.Entry
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *IngredientLibraryRepository) Save(ctx context.Context, entry *ingredientlibrary.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[libraryKey(entry.OwnerID, entry.NormalizedName)] = &cp
	return nil
}

func (r *IngredientLibraryRepository) Stats(ctx context.Context, ownerID string) (*ingredientlibrary.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ingredientlibrary.Stats{}
	var confSum float64
	for _, e := range r.entries {
		if e.OwnerID != ownerID {
			continue
		}
		stats.Total++
		confSum += e.Confidence
		if e.Confidence >= 0.8 {
			stats.HighConfidenceCount++
		}
	}
	if stats.Total > 0 {
		stats.AvgConfidence = confSum / float64(stats.Total)
	}
	return stats, nil
}
