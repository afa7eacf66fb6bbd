package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

// MealIngredientRepository implements meal.IngredientRepository using
// in-memory storage.
type MealIngredientRepository struct {
	mu          sync.RWMutex
	ingredients map[string]*meal.MealIngredient
}

// NewMealIngredientRepository creates a new in-memory ingredient repository.
func NewMealIngredientRepository() meal.IngredientRepository {
	return &MealIngredientRepository{ingredients: make(map[string]*meal.MealIngredient)}
}

func (r *MealIngredientRepository) Create(ctx context.Context, ingredient *meal.MealIngredient) error {
	if ingredient.ID == "" {
		return shared.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ingredients[ingredient.ID] = ingredient
	return nil
}

func (r *MealIngredientRepository) GetByID(ctx context.Context, id string) (*meal.MealIngredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, meal.ErrIngredientNotFound
	}
	return ing, nil
}

func (r *MealIngredientRepository) ListByMealID(ctx context.Context, mealID string) ([]*meal.MealIngredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*meal.MealIngredient
	for _, ing := range r.ingredients {
		if ing.MealID == mealID {
			out = append(out, ing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *MealIngredientRepository) Update(ctx context.Context, ingredient *meal.MealIngredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ingredients[ingredient.ID]; !ok {
		return meal.ErrIngredientNotFound
	}
	ingredient.UpdatedAt = time.Now()
	r.ingredients[ingredient.ID] = ingredient
	return nil
}

func (r *MealIngredientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ingredients[id]; !ok {
		return meal.ErrIngredientNotFound
	}
	delete(r.ingredients, id)
	return nil
}

func (r *MealIngredientRepository) DeleteByMealID(ctx context.Context, mealID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ing := range r.ingredients {
		if ing.MealID == mealID {
			delete(r.ingredients, id)
		}
	}
	return nil
}
