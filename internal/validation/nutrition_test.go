package validation

import (
	"math/rand"
	"testing"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

func fields(calories, protein, fat, satFat, carbs, fiber, sugar, sodium *float64) shared.NutritionFields {
	return shared.NutritionFields{
		Calories: calories, ProteinG: protein, FatG: fat, SaturatedFatG: satFat,
		CarbsG: carbs, FiberG: fiber, SugarG: sugar, SodiumMg: sodium,
	}
}

func TestValidateNutrition_FiberInvariant(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	for i := 0; i < 200; i++ {
		carbs := rand.Float64() * 500
		fiber := rand.Float64() * 500

		v := ValidateNutrition(fields(nil, nil, nil, nil, &carbs, &fiber, nil, nil), thresholds)
		gotErr := hasFieldIssue(v, shared.FieldFiberG, SeverityError)
		wantErr := fiber > carbs
		if gotErr != wantErr {
			t.Fatalf("carbs=%v fiber=%v: got error=%v want=%v", carbs, fiber, gotErr, wantErr)
		}
	}
}

func TestValidateNutrition_SugarInvariant(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	for i := 0; i < 200; i++ {
		carbs := rand.Float64() * 500
		sugar := rand.Float64() * 500

		v := ValidateNutrition(fields(nil, nil, nil, nil, &carbs, nil, &sugar, nil), thresholds)
		gotErr := hasFieldIssue(v, shared.FieldSugarG, SeverityError)
		wantErr := sugar > carbs
		if gotErr != wantErr {
			t.Fatalf("carbs=%v sugar=%v: got error=%v want=%v", carbs, sugar, gotErr, wantErr)
		}
	}
}

func TestValidateNutrition_SaturatedFatInvariant(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	for i := 0; i < 200; i++ {
		fat := rand.Float64() * 500
		satFat := rand.Float64() * 500

		v := ValidateNutrition(fields(nil, nil, &fat, &satFat, nil, nil, nil, nil), thresholds)
		gotErr := hasFieldIssue(v, shared.FieldSaturatedFatG, SeverityError)
		wantErr := satFat > fat
		if gotErr != wantErr {
			t.Fatalf("fat=%v satFat=%v: got error=%v want=%v", fat, satFat, gotErr, wantErr)
		}
	}
}

func TestValidateNutrition_AtwaterWithinTolerance(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	protein, fat, carbs := 50.0, 20.0, 60.0
	eMacro := 4*protein + 9*fat + 4*carbs
	calories := eMacro * 1.03 // within 5%

	v := ValidateNutrition(fields(&calories, &protein, &fat, nil, &carbs, nil, nil, nil), thresholds)
	if v.Verdict != VerdictValid {
		t.Fatalf("expected VALID within 5%% Atwater tolerance, got %v (%+v)", v.Verdict, v.Issues)
	}
}

func TestValidateNutrition_AtwaterBeyond20PctIsAtLeastWarning(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	protein, fat, carbs := 50.0, 20.0, 60.0
	eMacro := 4*protein + 9*fat + 4*carbs
	calories := eMacro * 1.25 // 25% over

	v := ValidateNutrition(fields(&calories, &protein, &fat, nil, &carbs, nil, nil, nil), thresholds)
	if v.Verdict == VerdictValid {
		t.Fatalf("expected at least WARNING at 25%% Atwater deviation, got %v", v.Verdict)
	}
}

func TestValidateNutrition_ImpossibleSugarScenario(t *testing.T) {
	// S4 — Impossible sugar: carbs_g: 30, sugar_g: 45.
	thresholds := DefaultNutritionThresholds()
	carbs, sugar := 30.0, 45.0
	v := ValidateNutrition(fields(nil, nil, nil, nil, &carbs, nil, &sugar, nil), thresholds)
	if v.Verdict != VerdictError {
		t.Fatalf("expected ERROR verdict, got %v", v.Verdict)
	}
	if !hasFieldIssue(v, shared.FieldSugarG, SeverityError) {
		t.Fatal("expected an ERROR issue on sugar_g")
	}
}

func TestValidateNutrition_AtwaterMismatchScenario(t *testing.T) {
	// S5 — calories: 500, protein_g: 50, fat_g: 50, carbs_g: 50 (implied 850).
	thresholds := DefaultNutritionThresholds()
	calories, protein, fat, carbs := 500.0, 50.0, 50.0, 50.0
	v := ValidateNutrition(fields(&calories, &protein, &fat, nil, &carbs, nil, nil, nil), thresholds)
	if v.Verdict != VerdictWarning {
		t.Fatalf("expected WARNING verdict, got %v (%+v)", v.Verdict, v.Issues)
	}
	var found bool
	for _, issue := range v.Issues {
		if issue.Field == shared.FieldCalories && issue.SuggestedFix != nil && *issue.SuggestedFix == 850 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected suggested fix of 850 on calories, got %+v", v.Issues)
	}
}

func TestValidateNutrition_NegativeValuesAreErrors(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	neg := -5.0
	v := ValidateNutrition(fields(nil, &neg, nil, nil, nil, nil, nil, nil), thresholds)
	if v.Verdict != VerdictError {
		t.Fatalf("expected ERROR for negative protein, got %v", v.Verdict)
	}
}

func TestValidateNutrition_SparseResponseWarns(t *testing.T) {
	thresholds := DefaultNutritionThresholds()
	calories := 400.0
	v := ValidateNutrition(fields(&calories, nil, nil, nil, nil, nil, nil, nil), thresholds)
	if v.Verdict != VerdictWarning {
		t.Fatalf("expected WARNING for sparse macros, got %v", v.Verdict)
	}
}

func hasFieldIssue(v NutritionVerdict, field string, severity IssueSeverity) bool {
	for _, issue := range v.Issues {
		if issue.Field == field && issue.Severity == severity {
			return true
		}
	}
	return false
}
