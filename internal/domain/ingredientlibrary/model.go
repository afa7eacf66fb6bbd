// Package ingredientlibrary implements the per-user ingredient library and
// the Welford-style online learner that keeps it updated from user
// corrections (spec.md §4.6).
package ingredientlibrary

import "time"

// Entry is one per-user, per-canonical-name library row.
type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`

	DisplayName    string  `json:"displayName"`
	NormalizedName string  `json:"normalizedName"`
	Category       *string `json:"category,omitempty"`

	// Per-100g running statistics.
	AvgCaloriesPer100g float64 `json:"avgCaloriesPer100g"`
	AvgProteinPer100g  float64 `json:"avgProteinPer100g"`
	AvgFatPer100g      float64 `json:"avgFatPer100g"`
	AvgCarbsPer100g    float64 `json:"avgCarbsPer100g"`

	StddevCalories float64 `json:"stddevCalories"`
	M2Calories     float64 `json:"m2Calories"` // Welford continuation state
	SampleSize     int     `json:"sampleSize"`

	Confidence      float64   `json:"confidence"`
	TypicalQuantity float64   `json:"typicalQuantity"`
	TypicalUnit     string    `json:"typicalUnit"`
	LastUsed        time.Time `json:"lastUsed"`

	// Version is an optimistic-concurrency counter. Repository.Save bumps it
	// on every write and rejects a write whose Version doesn't match the
	// row currently in the database, so two processes racing to fold an
	// observation into the same entry can't silently clobber each other's
	// Welford state (spec.md §5, §9 option (a)).
	Version int64 `json:"-"`
}

// NewEntry builds the first observation of a canonical name for a user,
// per spec.md §4.6's "First observation" edge case.
func NewEntry(ownerID, displayName, normalizedName string) *Entry {
	now := time.Now()
	return &Entry{
		OwnerID:        ownerID,
		DisplayName:    displayName,
		NormalizedName: normalizedName,
		CreatedAt:      now,
		LastUsed:       now,
	}
}
