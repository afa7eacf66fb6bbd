package meal

import (
	"context"
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

// MealIngredient is a single line item of a Meal's ingredient decomposition,
// either produced by the AI Analysis Adapter or added/edited by the owner.
type MealIngredient struct {
	ID       string `json:"id"`
	MealID   string `json:"mealId"`
	Name     string `json:"name"`
	Category *string `json:"category,omitempty"`

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`

	Nutrition shared.NutritionFields `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`

	IsAIExtracted   bool     `json:"isAiExtracted"`
	IsUserCorrected bool     `json:"isUserCorrected"`
	AIConfidence    *float64 `json:"aiConfidence,omitempty"`
	DisplayOrder    int      `json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAIIngredient builds a MealIngredient as first produced by the AI
// Analysis Adapter's decomposition of a meal.
func NewAIIngredient(mealID, name string, quantity float64, unit string, confidence float64, displayOrder int) MealIngredient {
	now := time.Now()
	return MealIngredient{
		MealID:        mealID,
		Name:          name,
		Quantity:      quantity,
		Unit:          unit,
		IsAIExtracted: true,
		AIConfidence:  shared.Float64Ptr(confidence),
		DisplayOrder:  displayOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IngredientRepository persists MealIngredient rows. Ingredients are always
// scoped to their owning meal and cascade-deleted with it (spec.md §9).
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *MealIngredient) error
	GetByID(ctx context.Context, id string) (*MealIngredient, error)
	ListByMealID(ctx context.Context, mealID string) ([]*MealIngredient, error)
	Update(ctx context.Context, ingredient *MealIngredient) error
	Delete(ctx context.Context, id string) error
	DeleteByMealID(ctx context.Context, mealID string) error
}
