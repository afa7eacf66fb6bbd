package recipepattern

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/normalize"
	"go.uber.org/zap"
)

// IngredientObservation is one meal ingredient line, reduced to what the
// Recipe Pattern Tracker needs: name, quantity/unit, calorie contribution,
// and its display order (for primary-ingredient tie-breaking).
type IngredientObservation struct {
	Name         string
	Quantity     float64
	Unit         string
	Calories     float64
	DisplayOrder int
}

// Service is the Recipe Pattern Tracker (spec.md §4.8).
type Service struct {
	repo   Repository
	tables normalize.Tables
	logger *zap.Logger
}

// NewService constructs the Recipe Pattern Tracker.
func NewService(repo Repository, tables normalize.Tables, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, tables: tables, logger: logger}
}

// PrimaryIngredient returns the ingredient with the largest calorie
// contribution; ties are broken by earliest display_order.
func PrimaryIngredient(ingredients []IngredientObservation) (IngredientObservation, error) {
	if len(ingredients) == 0 {
		return IngredientObservation{}, ErrEmptyIngredients
	}
	primary := ingredients[0]
	for _, ing := range ingredients[1:] {
		if ing.Calories > primary.Calories ||
			(ing.Calories == primary.Calories && ing.DisplayOrder < primary.DisplayOrder) {
			primary = ing
		}
	}
	return primary, nil
}

// OnMealCompleted updates or creates the recipe pattern keyed by the meal's
// primary ingredient, incrementing times_made and merging the ingredient
// set into common_ingredients.
func (s *Service) OnMealCompleted(ctx context.Context, ownerID, recipeName string, ingredients []IngredientObservation) (*Pattern, error) {
	primary, err := PrimaryIngredient(ingredients)
	if err != nil {
		return nil, err
	}
	normalizedPrimary := s.tables.Normalize(primary.Name)

	pattern, err := s.repo.GetByNormalizedPrimary(ctx, ownerID, normalizedPrimary)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("failed to load recipe pattern: %w", err)
		}
		pattern = NewPattern(ownerID, recipeName, normalizedPrimary)
		pattern.ID = uuid.New().String()
	}

	pattern.TimesMade++
	pattern.LastMade = nowFunc()
	if recipeName != "" {
		pattern.RecipeName = recipeName
	}

	for _, ing := range ingredients {
		normalizedName := s.tables.Normalize(ing.Name)
		merged := false
		for i := range pattern.CommonIngredients {
			if s.tables.Normalize(pattern.CommonIngredients[i].Name) == normalizedName {
				pattern.CommonIngredients[i].ObservationCount++
				pattern.CommonIngredients[i].TypicalQuantity = ing.Quantity
				pattern.CommonIngredients[i].Unit = ing.Unit
				merged = true
				break
			}
		}
		if !merged {
			pattern.CommonIngredients = append(pattern.CommonIngredients, CommonIngredient{
				Name:             ing.Name,
				TypicalQuantity:  ing.Quantity,
				Unit:             ing.Unit,
				ObservationCount: 1,
			})
		}
	}

	if err := s.repo.Save(ctx, pattern); err != nil {
		return nil, fmt.Errorf("failed to save recipe pattern: %w", err)
	}
	return pattern, nil
}

// Suggest returns the companions of the pattern keyed by primaryName that
// are not already present in currentIngredientNames, ordered by
// co-occurrence count descending.
func (s *Service) Suggest(ctx context.Context, ownerID, primaryName string, currentIngredientNames []string) ([]CommonIngredient, error) {
	normalizedPrimary := s.tables.Normalize(primaryName)
	pattern, err := s.repo.GetByNormalizedPrimary(ctx, ownerID, normalizedPrimary)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load recipe pattern: %w", err)
	}

	present := make(map[string]bool, len(currentIngredientNames))
	for _, n := range currentIngredientNames {
		present[s.tables.Normalize(n)] = true
	}

	var suggestions []CommonIngredient
	for _, companion := range pattern.CommonIngredients {
		if !present[s.tables.Normalize(companion.Name)] {
			suggestions = append(suggestions, companion)
		}
	}
	for i := 0; i < len(suggestions); i++ {
		for j := i + 1; j < len(suggestions); j++ {
			if suggestions[j].ObservationCount > suggestions[i].ObservationCount {
				suggestions[i], suggestions[j] = suggestions[j], suggestions[i]
			}
		}
	}
	return suggestions, nil
}

