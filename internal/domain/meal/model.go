package meal

import (
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

// Meal represents a meal entry with comprehensive tracking.
type Meal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Basic meal information
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MealTime    time.Time `json:"mealTime"`
	ImageHandle string    `json:"imageHandle,omitempty"`

	// Categorization
	Category *shared.MealCategory `json:"category,omitempty"`
	Cuisine  string               `json:"cuisine,omitempty"`
	MealType *shared.MealType     `json:"mealType,omitempty"`

	// Nutritional and dietary information. Calories stays a plain int for
	// backward compatibility with the existing analytics aggregator; the
	// pointer-based nutrition summary below is the nutrition-intelligence
	// source of truth (see shared.NutritionFields — §9 "no sentinel values").
	Calories   int  `json:"calories,omitempty"`
	SpicyLevel *int `json:"spicyLevel,omitempty"` // 1-10 scale
	FiberRich  bool `json:"fiberRich"`
	Dairy      bool `json:"dairy"`
	Gluten     bool `json:"gluten"`

	Nutrition       shared.NutritionFields `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`
	Confidence      *float64               `json:"confidence,omitempty"`
	AnalysisStatus  shared.AnalysisStatus  `json:"analysisStatus"`
	RawAdapterDump  string                 `json:"rawAdapterDump,omitempty"`
	UserEdited      bool                   `json:"userEdited"`

	// Location context tags, carried through from the meal-creation request.
	LocationIsRestaurant *bool  `json:"locationIsRestaurant,omitempty"`
	LocationIsHome       *bool  `json:"locationIsHome,omitempty"`
	PlaceType            string `json:"placeType,omitempty"`

	// Optional fields
	PhotoURL string `json:"photoUrl,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MealUpdate represents fields that can be updated on a Meal.
// Pointer fields allow distinguishing between "not provided" and "set to zero value".
type MealUpdate struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	MealTime    *time.Time           `json:"mealTime,omitempty"`
	Category    *shared.MealCategory `json:"category,omitempty"`
	Cuisine     *string              `json:"cuisine,omitempty"`
	Calories    *int                 `json:"calories,omitempty"`
	SpicyLevel  *int                 `json:"spicyLevel,omitempty"`
	FiberRich   *bool                `json:"fiberRich,omitempty"`
	Dairy       *bool                `json:"dairy,omitempty"`
	Gluten      *bool                `json:"gluten,omitempty"`
	PhotoURL    *string              `json:"photoUrl,omitempty"`
	Notes       *string              `json:"notes,omitempty"`

	// Ingestion Orchestrator outcome fields, set only by the AI analysis
	// pipeline's post-call status write, never by user-facing update requests.
	Nutrition      *shared.NutritionFields `json:"-" gorm:"embedded;embeddedPrefix:nutrition_"`
	Confidence     *float64                `json:"-"`
	AnalysisStatus *shared.AnalysisStatus  `json:"-"`
	RawAdapterDump *string                 `json:"-"`
}

// NewMeal creates a new Meal with sensible defaults. It is written PENDING,
// per the Ingestion Orchestrator's ordering: allocate id, write PENDING row,
// only then call out to the AI Analysis Adapter.
func NewMeal(userID, name string, mealTime time.Time) Meal {
	now := time.Now()
	return Meal{
		UserID:         userID,
		Name:           name,
		MealTime:       mealTime,
		CreatedAt:      now,
		UpdatedAt:      now,
		FiberRich:      false,
		Dairy:          false,
		Gluten:         false,
		AnalysisStatus: shared.AnalysisStatusPending,
	}
}
