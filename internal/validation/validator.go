// Package validation provides comprehensive validation functions for the poo-tracker backend.
// This file holds only the package documentation; it declares no functions.
package validation

// The validation functions are declared directly in the package's other files:
//
// - errors.go: ValidationError and ValidationErrors types
// - basic.go: Basic validation functions (Bristol type, scales, enums)
// - user.go: User-related validations (email, password, name, etc.)
// - content.go: Content validation (notes, URLs, meal names, etc.)
// - security.go: Security-focused validation (strong passwords, policies)
// - models.go: Complex model validation (BowelMovement, Meal)
// - meal_update.go: Meal update validation
// - nutrition.go: Nutrition record checks (Atwater balance, ranges, invariants)
