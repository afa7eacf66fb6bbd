// Package recipepattern implements the Recipe Pattern Tracker: it learns
// which ingredients co-occur around a meal's primary ingredient
// (spec.md §4.8), mirroring the shape of internal/domain/meal.
package recipepattern

import (
	"time"

	"gorm.io/datatypes"
)

// CommonIngredient is one companion ingredient observed alongside a
// recipe's primary ingredient.
type CommonIngredient struct {
	Name             string  `json:"name"`
	TypicalQuantity  float64 `json:"typicalQuantity"`
	Unit             string  `json:"unit"`
	ObservationCount int     `json:"observationCount"`
}

// Pattern is one per-user, per-canonical-primary-ingredient recipe row.
// Keywords and CommonIngredients are stored as JSON columns via
// gorm.io/datatypes, since neither needs its own relational table.
type Pattern struct {
	ID                string                                 `json:"id"`
	OwnerID           string                                 `json:"ownerId"`
	RecipeName        string                                 `json:"recipeName"`
	NormalizedPrimary string                                 `json:"normalizedPrimary"`
	Keywords          datatypes.JSONSlice[string]             `json:"keywords"`
	CommonIngredients datatypes.JSONSlice[CommonIngredient]   `json:"commonIngredients"`
	TimesMade         int                                    `json:"timesMade"`
	LastMade          time.Time                              `json:"lastMade"`
	CreatedAt         time.Time                              `json:"createdAt"`
}

// NewPattern creates the first observation of a recipe pattern.
func NewPattern(ownerID, recipeName, normalizedPrimary string) *Pattern {
	now := time.Now()
	return &Pattern{
		OwnerID:           ownerID,
		RecipeName:        recipeName,
		NormalizedPrimary: normalizedPrimary,
		TimesMade:         0,
		CreatedAt:         now,
		LastMade:          now,
	}
}
