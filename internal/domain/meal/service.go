package meal

import (
	"context"
	"time"
)

// Service defines the interface for meal business logic
type Service interface {
	// Core operations
	Create(ctx context.Context, userID string, input *CreateMealInput) (*Meal, error)
	GetByID(ctx context.Context, id string) (*Meal, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*Meal, error)
	Update(ctx context.Context, id string, input *UpdateMealInput) (*Meal, error)
	Delete(ctx context.Context, id string) error

	// Query operations
	GetByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*Meal, error)
	GetByCategory(ctx context.Context, userID string, category string) ([]*Meal, error)
	GetLatest(ctx context.Context, userID string) (*Meal, error)

	// Analytics operations
	GetNutritionStats(ctx context.Context, userID string, start, end time.Time) (*MealNutritionStats, error)
	GetMealInsights(ctx context.Context, userID string, start, end time.Time) (*MealInsights, error)

	// Ingredient operations (spec.md §4.1, §4.4)
	ListIngredients(ctx context.Context, mealID string) ([]*MealIngredient, error)
	AddIngredient(ctx context.Context, mealID string, input *IngredientInput) (*MealIngredient, error)
	UpdateIngredient(ctx context.Context, ingredientID string, input *IngredientCorrectionInput) (*MealIngredient, error)
	DeleteIngredient(ctx context.Context, ingredientID string) error
}

// IngredientInput is the payload for adding an ingredient line to a meal.
type IngredientInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// IngredientCorrectionInput is the payload for a user-originated edit to an
// ingredient's nutrition fields. A nil field means "leave unchanged"; the
// Correction Telemetry module (spec.md §4.4) only records fields that
// actually change.
type IngredientCorrectionInput struct {
	Name          *string  `json:"name,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	Unit          *string  `json:"unit,omitempty"`
	Calories      *float64 `json:"calories,omitempty"`
	ProteinG      *float64 `json:"proteinG,omitempty"`
	FatG          *float64 `json:"fatG,omitempty"`
	SaturatedFatG *float64 `json:"saturatedFatG,omitempty"`
	CarbsG        *float64 `json:"carbsG,omitempty"`
	FiberG        *float64 `json:"fiberG,omitempty"`
	SugarG        *float64 `json:"sugarG,omitempty"`
	SodiumMg      *float64 `json:"sodiumMg,omitempty"`
}

// CreateMealInput represents input for creating a meal
type CreateMealInput struct {
	Name        string    `json:"name" binding:"required,min=1,max=200"`
	Description string    `json:"description,omitempty"`
	MealTime    time.Time `json:"mealTime" binding:"required"`
	Category    *string   `json:"category,omitempty"`
	Cuisine     string    `json:"cuisine,omitempty"`
	Calories    int       `json:"calories,omitempty" binding:"omitempty,min=0,max=10000"`
	SpicyLevel  *int      `json:"spicyLevel,omitempty" binding:"omitempty,min=1,max=10"`
	FiberRich   bool      `json:"fiberRich"`
	Dairy       bool      `json:"dairy"`
	Gluten      bool      `json:"gluten"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	// Ingestion Orchestrator inputs (spec.md §4.1). At least one of
	// ImageHandle or Description must be set for AI analysis to run; a meal
	// with neither simply skips analysis and stays PENDING until edited.
	ImageHandle          string `json:"imageHandle,omitempty"`
	LocationIsRestaurant *bool  `json:"locationIsRestaurant,omitempty"`
	LocationIsHome       *bool  `json:"locationIsHome,omitempty"`
	PlaceType            string `json:"placeType,omitempty"`
}

// UpdateMealInput represents input for updating a meal
type UpdateMealInput struct {
	Name        *string    `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty"`
	MealTime    *time.Time `json:"mealTime,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Cuisine     *string    `json:"cuisine,omitempty"`
	Calories    *int       `json:"calories,omitempty" binding:"omitempty,min=0,max=10000"`
	SpicyLevel  *int       `json:"spicyLevel,omitempty" binding:"omitempty,min=1,max=10"`
	FiberRich   *bool      `json:"fiberRich,omitempty"`
	Dairy       *bool      `json:"dairy,omitempty"`
	Gluten      *bool      `json:"gluten,omitempty"`
	PhotoURL    *string    `json:"photoUrl,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// MealNutritionStats represents nutrition analytics for a user
type MealNutritionStats struct {
	TotalCalories     int            `json:"totalCalories"`
	AverageCalories   float64        `json:"averageCalories"`
	FiberRichMeals    int64          `json:"fiberRichMeals"`
	DairyMeals        int64          `json:"dairyMeals"`
	GlutenMeals       int64          `json:"glutenMeals"`
	AverageSpiciness  float64        `json:"averageSpiciness"`
	MealCount         int64          `json:"mealCount"`
	CategoryBreakdown map[string]int `json:"categoryBreakdown"`
	CuisineBreakdown  map[string]int `json:"cuisineBreakdown"`
}

// MealInsights represents behavioral insights from meal data
type MealInsights struct {
	MostCommonCategory string             `json:"mostCommonCategory"`
	MostCommonCuisine  string             `json:"mostCommonCuisine"`
	AverageMealsPerDay float64            `json:"averageMealsPerDay"`
	MealTimePatterns   map[string]float64 `json:"mealTimePatterns"` // Hour -> frequency
	HealthScore        float64            `json:"healthScore"`      // 1-10 based on fiber, calories, etc.
}
