package shared

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

// MealType represents which meal-of-the-day slot a Meal belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeSnack     MealType = "SNACK"
)

// AllMealTypes returns all valid MealType values
func AllMealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}
}

// IsValid checks if the MealType value is valid
func (t MealType) IsValid() bool {
	for _, valid := range AllMealTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// String returns the string representation
func (t MealType) String() string {
	return string(t)
}

// Value implements the driver.Valuer interface for database storage
func (t MealType) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid meal type: %s", t)
	}
	return string(t), nil
}

// ParseMealType converts a string to MealType with validation
func ParseMealType(s string) (MealType, error) {
	t := MealType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid meal type: %s", s)
	}
	return t, nil
}

// Scan implements the sql.Scanner interface for database reading
func (t *MealType) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		parsed, err := ParseMealType(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseMealType(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MealType", value)
	}
}

// AnalysisStatus represents the lifecycle state of a meal's AI nutrition analysis.
type AnalysisStatus string

const (
	AnalysisStatusPending     AnalysisStatus = "PENDING"
	AnalysisStatusCompleted   AnalysisStatus = "COMPLETED"
	AnalysisStatusFailed      AnalysisStatus = "FAILED"
	AnalysisStatusNeedsReview AnalysisStatus = "NEEDS_REVIEW"
)

// AllAnalysisStatuses returns all valid AnalysisStatus values
func AllAnalysisStatuses() []AnalysisStatus {
	return []AnalysisStatus{
		AnalysisStatusPending, AnalysisStatusCompleted,
		AnalysisStatusFailed, AnalysisStatusNeedsReview,
	}
}

// IsValid checks if the AnalysisStatus value is valid
func (s AnalysisStatus) IsValid() bool {
	for _, valid := range AllAnalysisStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// String returns the string representation
func (s AnalysisStatus) String() string {
	return string(s)
}

// Value implements the driver.Valuer interface for database storage
func (s AnalysisStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid analysis status: %s", s)
	}
	return string(s), nil
}

// ParseAnalysisStatus converts a string to AnalysisStatus with validation
func ParseAnalysisStatus(s string) (AnalysisStatus, error) {
	as := AnalysisStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid analysis status: %s", s)
	}
	return as, nil
}

// Scan implements the sql.Scanner interface for database reading
func (s *AnalysisStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		parsed, err := ParseAnalysisStatus(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		parsed, err := ParseAnalysisStatus(string(v))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into AnalysisStatus", value)
	}
}

// Compile-time interface checks
var (
	_ driver.Valuer = (*MealType)(nil)
	_ sql.Scanner   = (*MealType)(nil)
	_ driver.Valuer = (*AnalysisStatus)(nil)
	_ sql.Scanner   = (*AnalysisStatus)(nil)
)
