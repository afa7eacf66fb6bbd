package correction

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"go.uber.org/zap"
)

const (
	epsilon                   = 1e-6
	descriptionSnapshotMaxLen = 200
)

// Learner is the Online Learner collaborator invoked once per ingredient
// edit (spec.md §4.4: "invoke the Online Learner if the edit was at
// ingredient granularity"). internal/domain/ingredientlibrary.Service
// satisfies this directly.
type Learner interface {
	Observe(ctx context.Context, obs ingredientlibrary.Observation) (*ingredientlibrary.Entry, error)
}

// Service is Correction Telemetry (spec.md §4.4).
type Service struct {
	repo   Repository
	learn  Learner
	logger *zap.Logger
}

// NewService constructs Correction Telemetry. learn may be nil when the
// caller only wants meal-granularity telemetry without triggering learning.
func NewService(repo Repository, learn Learner, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, learn: learn, logger: logger}
}

// EditInput carries everything RecordEdit needs to diff an ingredient edit
// and, on a genuine first correction, feed the Online Learner.
type EditInput struct {
	Before  meal.MealIngredient
	After   meal.MealIngredient
	OwnerID string

	ConfidenceAtAnalysis    *float64
	LocationType            string
	MealDescriptionSnapshot string
	AIAnalyzedAt            *time.Time

	// EditKey identifies this specific edit request (a hash of the
	// after-image plus an edit sequence number or transport ETag). A
	// redelivery with the same key must not create additional rows or
	// re-trigger learning (spec.md §4.4 idempotence).
	EditKey string
}

// RecordEdit computes a correction delta per tracked field, writes one
// append-only row per actually-changed field, and — on the ingredient's
// first AI→user correction — invokes the Online Learner exactly once.
// It returns the number of correction rows written.
func (s *Service) RecordEdit(ctx context.Context, in EditInput) (int, error) {
	if in.OwnerID == "" {
		return 0, ErrInvalidOwnerID
	}
	if in.After.MealID == "" {
		return 0, ErrInvalidMealID
	}

	if in.EditKey != "" {
		exists, err := s.repo.ExistsByEditKey(ctx, in.EditKey)
		if err != nil {
			return 0, fmt.Errorf("failed to check edit idempotence: %w", err)
		}
		if exists {
			s.logger.Info("dropping redelivered edit", zap.String("edit_key", in.EditKey))
			return 0, nil
		}
	}

	now := time.Now()
	written := 0

	for _, field := range AllTrackedFields() {
		beforeV, beforeOK := in.Before.Nutrition.Get(string(field))
		afterV, afterOK := in.After.Nutrition.Get(string(field))
		if !beforeOK || !afterOK {
			continue
		}
		if math.Abs(afterV-beforeV) <= epsilon {
			continue
		}
		if afterV == 0 {
			// percent_error undefined at user_value = 0: skip rather than
			// coerce to +/-Inf.
			continue
		}

		percentError := (afterV - beforeV) / afterV * 100

		row := &AiCorrectionLog{
			ID:                      uuid.New().String(),
			MealID:                  in.After.MealID,
			OwnerID:                 in.OwnerID,
			FieldName:               field,
			AIValue:                 beforeV,
			UserValue:               afterV,
			AbsoluteError:           math.Abs(afterV - beforeV),
			PercentError:            percentError,
			ConfidenceAtAnalysis:    in.ConfidenceAtAnalysis,
			LocationType:            in.LocationType,
			MealDescriptionSnapshot: truncate(in.MealDescriptionSnapshot, descriptionSnapshotMaxLen),
			AIAnalyzedAt:            in.AIAnalyzedAt,
			CorrectedAt:             now,
			EditKey:                 in.EditKey,
		}
		if err := s.repo.Create(ctx, row); err != nil {
			return written, fmt.Errorf("failed to write correction row for %s: %w", field, err)
		}
		written++
	}

	if written == 0 {
		return 0, nil
	}

	// Only ingredient-granularity edits train the library, and only on the
	// is_user_corrected false->true transition, never on the ingredient's
	// subsequent corrections (spec.md §4.6 "never trigger learning twice").
	if s.learn != nil && !in.Before.IsUserCorrected && in.After.IsUserCorrected {
		_, err := s.learn.Observe(ctx, ingredientlibrary.Observation{
			OwnerID:            in.OwnerID,
			RawName:            in.After.Name,
			Category:           in.After.Category,
			Quantity:           in.After.Quantity,
			Unit:               in.After.Unit,
			PerServingCalories: valueOrZero(in.After.Nutrition.Calories),
			PerServingProtein:  valueOrZero(in.After.Nutrition.ProteinG),
			PerServingFat:      valueOrZero(in.After.Nutrition.FatG),
			PerServingCarbs:    valueOrZero(in.After.Nutrition.CarbsG),
		})
		if err != nil {
			s.logger.Warn("online learner observation failed", zap.Error(err))
		}
	}

	return written, nil
}

func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
