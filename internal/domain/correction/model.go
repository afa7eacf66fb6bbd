// Package correction implements Correction Telemetry: an append-only log of
// every user edit to AI-estimated nutrition fields, used for accuracy
// analytics. It is grounded on the existing audit log (internal/domain/audit)
// but tracks nutrition-specific before/after values instead of opaque
// JSON blobs.
package correction

import (
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
)

// TrackedField is one of shared.TrackedFields() — the nutrition fields
// Correction Telemetry watches.
type TrackedField = string

// AllTrackedFields returns every field Correction Telemetry tracks, in a
// stable order.
func AllTrackedFields() []TrackedField {
	return shared.TrackedFields()
}

// AiCorrectionLog is one append-only correction row for a single tracked
// field of a single meal ingredient edit.
type AiCorrectionLog struct {
	ID      string `json:"id"`
	MealID  string `json:"mealId"`
	OwnerID string `json:"ownerId"`

	FieldName TrackedField `json:"fieldName" gorm:"uniqueIndex:idx_correction_editkey_field,priority:2"`

	AIValue        float64 `json:"aiValue"`
	UserValue      float64 `json:"userValue"`
	AbsoluteError  float64 `json:"absoluteError"`
	PercentError   float64 `json:"percentError"`

	ConfidenceAtAnalysis    *float64 `json:"confidenceAtAnalysis,omitempty"`
	LocationType            string   `json:"locationType,omitempty"`
	MealDescriptionSnapshot string   `json:"mealDescriptionSnapshot,omitempty"`

	AIAnalyzedAt *time.Time `json:"aiAnalyzedAt,omitempty"`
	CorrectedAt  time.Time  `json:"correctedAt"`

	// EditKey is a hash of the after-image plus an edit sequence number (or
	// transport-supplied ETag), used to detect and drop redelivered edits
	// before any rows are written (spec.md §4.4 idempotence rule). The
	// composite index with FieldName is the DB-level backstop behind that
	// check: one row per (edit_key, field_name), scoped to non-empty keys so
	// callers that skip idempotence (EditKey == "") aren't constrained.
	EditKey string `json:"editKey" gorm:"uniqueIndex:idx_correction_editkey_field,priority:1,where:edit_key <> ''"`
}
