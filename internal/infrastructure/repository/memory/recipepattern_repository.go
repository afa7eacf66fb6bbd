package memory

import (
	"context"
	"sync"

	"github.com/kjanat/poo-tracker/backend/internal/domain/recipepattern"
)

// RecipePatternRepository implements recipepattern.Repository using
// in-memory storage, keyed by (owner_id, normalized primary ingredient).
type RecipePatternRepository struct {
	mu       sync.RWMutex
	patterns map[string]*recipepattern.Pattern
}

// NewRecipePatternRepository creates a new in-memory recipe pattern repository.
func NewRecipePatternRepository() recipepattern.Repository {
	return &RecipePatternRepository{patterns: make(map[string]*recipepattern.Pattern)}
}

func patternKey(ownerID, normalizedPrimary string) string { return ownerID + "/" + normalizedPrimary }

func (r *RecipePatternRepository) GetByNormalizedPrimary(ctx context.Context, ownerID, normalizedPrimary string) (*recipepattern.Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[patternKey(ownerID, normalizedPrimary)]
	if !ok {
		return nil, recipepattern.ErrNotFound
	}
	return p, nil
}

func (r *RecipePatternRepository) ListByOwner(ctx context.Context, ownerID string) ([]*recipepattern.Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*recipepattern.Pattern
	for _, p := range r.patterns {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *RecipePatternRepository) Save(ctx context.Context, pattern *recipepattern.Pattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns[patternKey(pattern.OwnerID, pattern.NormalizedPrimary)] = pattern
	return nil
}
