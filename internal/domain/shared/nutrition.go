package shared

// NutritionFields is the common optional nutrition block shared by Meal,
// MealIngredient, and the AI Analysis Adapter's parsed response. Every
// field is a pointer so "not reported" is distinguishable from zero,
// per the "never a sentinel" rule.
type NutritionFields struct {
	Calories      *float64 `json:"calories,omitempty"`
	ProteinG      *float64 `json:"proteinG,omitempty"`
	FatG          *float64 `json:"fatG,omitempty"`
	SaturatedFatG *float64 `json:"saturatedFatG,omitempty"`
	CarbsG        *float64 `json:"carbsG,omitempty"`
	FiberG        *float64 `json:"fiberG,omitempty"`
	SugarG        *float64 `json:"sugarG,omitempty"`
	SodiumMg      *float64 `json:"sodiumMg,omitempty"`
}

// Get returns the value of the named tracked field and whether it was set.
// fieldName is one of the TrackedField constants.
func (n NutritionFields) Get(fieldName string) (float64, bool) {
	var p *float64
	switch fieldName {
	case FieldCalories:
		p = n.Calories
	case FieldProteinG:
		p = n.ProteinG
	case FieldFatG:
		p = n.FatG
	case FieldSaturatedFatG:
		p = n.SaturatedFatG
	case FieldCarbsG:
		p = n.CarbsG
	case FieldFiberG:
		p = n.FiberG
	case FieldSugarG:
		p = n.SugarG
	case FieldSodiumMg:
		p = n.SodiumMg
	default:
		return 0, false
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Tracked field names for Correction Telemetry (spec §4.4) and Validation (§4.3).
const (
	FieldCalories      = "calories"
	FieldProteinG      = "protein_g"
	FieldFatG          = "fat_g"
	FieldSaturatedFatG = "saturated_fat_g"
	FieldCarbsG        = "carbs_g"
	FieldFiberG        = "fiber_g"
	FieldSugarG        = "sugar_g"
	FieldSodiumMg      = "sodium_mg"
)

// TrackedFields lists every field Correction Telemetry watches, in a stable order.
func TrackedFields() []string {
	return []string{
		FieldCalories, FieldProteinG, FieldFatG, FieldSaturatedFatG,
		FieldCarbsG, FieldFiberG, FieldSugarG, FieldSodiumMg,
	}
}

func Float64Ptr(v float64) *float64 { return &v }
