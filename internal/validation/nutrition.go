package validation

import (
	"fmt"
	"math"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

// Atwater factors (kcal per gram), used by the energy-balance check.
const (
	atwaterProteinKcalPerGram = 4.0
	atwaterFatKcalPerGram     = 9.0
	atwaterCarbsKcalPerGram   = 4.0
)

// Verdict summarizes the outcome of a nutrition validation pass.
type Verdict string

const (
	VerdictValid   Verdict = "VALID"
	VerdictWarning Verdict = "WARNING"
	VerdictError   Verdict = "ERROR"
)

// IssueSeverity is the severity of a single check failure.
type IssueSeverity string

const (
	SeverityWarning IssueSeverity = "WARNING"
	SeverityError   IssueSeverity = "ERROR"
)

// NutritionIssue names one failed check, the field it concerns, and an
// optional suggested replacement value (used by the Atwater check).
type NutritionIssue struct {
	Field        string
	Severity     IssueSeverity
	Message      string
	SuggestedFix *float64
}

// NutritionVerdict is the result of ValidateNutrition.
type NutritionVerdict struct {
	Verdict Verdict
	Issues  []NutritionIssue
}

// NutritionThresholds carries the closed-set config values from spec.md §6
// that tune the Validation Engine.
type NutritionThresholds struct {
	AtwaterWarnPct     float64 // default 20
	AtwaterErrorPct    float64 // default 50
	CalorieSoftCeiling float64 // default 2500
}

// DefaultNutritionThresholds returns the spec's documented defaults.
func DefaultNutritionThresholds() NutritionThresholds {
	return NutritionThresholds{
		AtwaterWarnPct:     20,
		AtwaterErrorPct:    50,
		CalorieSoftCeiling: 2500,
	}
}

// ValidateNutrition applies the eight physical-law checks from spec.md §4.3
// to a nutrition record, tolerating any subset of missing fields.
func ValidateNutrition(fields shared.NutritionFields, thresholds NutritionThresholds) NutritionVerdict {
	var issues []NutritionIssue

	calories, hasCalories := fields.Get(shared.FieldCalories)
	protein, hasProtein := fields.Get(shared.FieldProteinG)
	fat, hasFat := fields.Get(shared.FieldFatG)
	satFat, hasSatFat := fields.Get(shared.FieldSaturatedFatG)
	carbs, hasCarbs := fields.Get(shared.FieldCarbsG)
	fiber, hasFiber := fields.Get(shared.FieldFiberG)
	sugar, hasSugar := fields.Get(shared.FieldSugarG)
	sodium, hasSodium := fields.Get(shared.FieldSodiumMg)

	// 1. Atwater energy balance.
	if hasCalories && hasProtein && hasFat && hasCarbs {
		eMacro := atwaterProteinKcalPerGram*protein + atwaterFatKcalPerGram*fat + atwaterCarbsKcalPerGram*carbs
		denom := math.Max(calories, 1)
		deviationPct := math.Abs(calories-eMacro) / denom * 100
		if deviationPct > thresholds.AtwaterErrorPct {
			fix := eMacro
			issues = append(issues, NutritionIssue{
				Field: shared.FieldCalories, Severity: SeverityError,
				Message:      fmt.Sprintf("calories deviate from Atwater estimate by %.1f%%", deviationPct),
				SuggestedFix: &fix,
			})
		} else if deviationPct > thresholds.AtwaterWarnPct {
			fix := eMacro
			issues = append(issues, NutritionIssue{
				Field: shared.FieldCalories, Severity: SeverityWarning,
				Message:      fmt.Sprintf("calories deviate from Atwater estimate by %.1f%%", deviationPct),
				SuggestedFix: &fix,
			})
		}
	}

	// 2. Fiber <= carbs.
	if hasFiber && hasCarbs && fiber > carbs {
		issues = append(issues, NutritionIssue{
			Field: shared.FieldFiberG, Severity: SeverityError,
			Message: "fiber_g exceeds carbs_g",
		})
	}

	// 3. Sugar <= carbs.
	if hasSugar && hasCarbs && sugar > carbs {
		issues = append(issues, NutritionIssue{
			Field: shared.FieldSugarG, Severity: SeverityError,
			Message: "sugar_g exceeds carbs_g",
		})
	}

	// 4. Saturated <= total fat.
	if hasSatFat && hasFat && satFat > fat {
		issues = append(issues, NutritionIssue{
			Field: shared.FieldSaturatedFatG, Severity: SeverityError,
			Message: "saturated_fat_g exceeds fat_g",
		})
	}

	// 5. Macro-calorie cap: no single macro may claim more than 110% of total calories.
	if hasCalories && calories > 0 {
		cap := calories * 1.1
		if hasProtein && protein*atwaterProteinKcalPerGram > cap {
			issues = append(issues, NutritionIssue{
				Field: shared.FieldProteinG, Severity: SeverityWarning,
				Message: "protein_g alone exceeds claimed total calories",
			})
		}
		if hasFat && fat*atwaterFatKcalPerGram > cap {
			issues = append(issues, NutritionIssue{
				Field: shared.FieldFatG, Severity: SeverityWarning,
				Message: "fat_g alone exceeds claimed total calories",
			})
		}
		if hasCarbs && carbs*atwaterCarbsKcalPerGram > cap {
			issues = append(issues, NutritionIssue{
				Field: shared.FieldCarbsG, Severity: SeverityWarning,
				Message: "carbs_g alone exceeds claimed total calories",
			})
		}
	}

	// 6. Range sanity.
	if hasCalories {
		if calories < 0 || calories > 10000 {
			issues = append(issues, NutritionIssue{
				Field: shared.FieldCalories, Severity: SeverityError,
				Message: "calories out of range [0, 10000]",
			})
		} else if calories > thresholds.CalorieSoftCeiling {
			issues = append(issues, NutritionIssue{
				Field: shared.FieldCalories, Severity: SeverityWarning,
				Message: "calories above soft ceiling, check portion size",
			})
		}
	}
	gramFields := []struct {
		name string
		v    float64
		has  bool
	}{
		{shared.FieldProteinG, protein, hasProtein},
		{shared.FieldFatG, fat, hasFat},
		{shared.FieldSaturatedFatG, satFat, hasSatFat},
		{shared.FieldCarbsG, carbs, hasCarbs},
		{shared.FieldFiberG, fiber, hasFiber},
		{shared.FieldSugarG, sugar, hasSugar},
	}
	for _, f := range gramFields {
		if f.has && (f.v < 0 || f.v > 1000) {
			issues = append(issues, NutritionIssue{
				Field: f.name, Severity: SeverityError,
				Message: fmt.Sprintf("%s out of range [0, 1000]", f.name),
			})
		}
	}
	if hasSodium && (sodium < 0 || sodium > 100000) {
		issues = append(issues, NutritionIssue{
			Field: shared.FieldSodiumMg, Severity: SeverityError,
			Message: "sodium_mg out of range [0, 100000]",
		})
	}

	// 7. Negative values: negative calories get an explicit issue in addition to
	// the range error from #6; negative gram and sodium fields are reported by #6 only.
	if hasCalories && calories < 0 {
		issues = append(issues, NutritionIssue{Field: shared.FieldCalories, Severity: SeverityError, Message: "calories is negative"})
	}

	// 8. Sparse response: calories present but all four macros missing.
	if hasCalories && !hasProtein && !hasFat && !hasCarbs {
		issues = append(issues, NutritionIssue{
			Field: "macros", Severity: SeverityWarning,
			Message: "calories reported but protein_g, fat_g, and carbs_g are all missing",
		})
	}

	return NutritionVerdict{Verdict: aggregateVerdict(issues), Issues: issues}
}

func aggregateVerdict(issues []NutritionIssue) Verdict {
	hasError := false
	hasWarning := false
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			hasError = true
		case SeverityWarning:
			hasWarning = true
		}
	}
	switch {
	case hasError:
		return VerdictError
	case hasWarning:
		return VerdictWarning
	default:
		return VerdictValid
	}
}
