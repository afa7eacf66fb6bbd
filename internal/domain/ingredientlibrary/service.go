package ingredientlibrary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/normalize"
	"go.uber.org/zap"
)

// Config carries the closed-set tuning values from spec.md §6 that govern
// the Online Learner.
type Config struct {
	WelfordDecayK            float64 // default 5
	TypicalQuantityNewWeight float64 // default 0.3 (prior weight is 1 - this)
}

// DefaultConfig returns spec.md's documented defaults.
func DefaultConfig() Config {
	return Config{WelfordDecayK: 5, TypicalQuantityNewWeight: 0.3}
}

// Observation is one user-corrected ingredient reading, already resolved to
// a raw (pre-gram-conversion) quantity/unit and per-serving nutrition.
type Observation struct {
	OwnerID            string
	RawName            string
	Category           *string
	Quantity           float64
	Unit               string
	PerServingCalories float64
	PerServingProtein  float64
	PerServingFat      float64
	PerServingCarbs    float64
}

// Service is the Online Learner (spec.md §4.6).
type Service struct {
	repo   Repository
	tables normalize.Tables
	locks  *keyLockTable
	cfg    Config
	logger *zap.Logger
}

// NewService constructs the Online Learner.
func NewService(repo Repository, tables normalize.Tables, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		tables: tables,
		locks:  newKeyLockTable(),
		cfg:    cfg,
		logger: logger,
	}
}

// maxConflictRetries bounds Observe's retry-on-conflict loop (spec.md §5,
// §9 option (a)): a process that loses the optimistic-lock race re-reads
// the row and redoes the Welford fold instead of giving up immediately.
const maxConflictRetries = 5

// Observe folds one corrected observation into the caller's library entry
// for the observation's canonical ingredient name. It is the *only* entry
// point that mutates library state; callers (Correction Telemetry) must
// invoke it exactly once per first-time correction (spec.md §4.6's
// "never trigger learning twice" rule) — Observe itself does not
// deduplicate redeliveries.
//
// The in-process sharded mutex (keylock.go) already serializes same-process
// callers; the retry loop below additionally covers multi-process
// deployments, where the gorm repository's Save rejects a stale write with
// ErrConflict rather than silently overwriting a sibling process's update.
func (s *Service) Observe(ctx context.Context, obs Observation) (*Entry, error) {
	if obs.OwnerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if obs.RawName == "" {
		return nil, ErrInvalidName
	}
	if obs.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	grams, ok := s.tables.ResolveGrams(obs.Quantity, obs.Unit)
	if !ok {
		s.logger.Warn("dropping observation: unresolvable unit",
			zap.String("owner_id", obs.OwnerID),
			zap.String("name", obs.RawName),
			zap.String("unit", obs.Unit),
		)
		return nil, ErrUnknownUnit
	}

	normalizedName := s.tables.Normalize(obs.RawName)

	unlock := s.locks.Lock(obs.OwnerID, normalizedName)
	defer unlock()

	var lastErr error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		entry, err := s.foldObservation(ctx, obs, normalizedName, grams)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
		lastErr = err
		s.logger.Info("library entry write conflict, retrying",
			zap.String("owner_id", obs.OwnerID),
			zap.String("normalized_name", normalizedName),
			zap.Int("attempt", attempt+1),
		)
	}
	return nil, fmt.Errorf("failed to save library entry after %d attempts: %w", maxConflictRetries, lastErr)
}

// foldObservation runs one read-merge-write attempt. It returns ErrConflict,
// unwrapped, when the repository rejects the write as stale so Observe's
// loop can tell a retryable conflict apart from a hard failure.
func (s *Service) foldObservation(ctx context.Context, obs Observation, normalizedName string, grams float64) (*Entry, error) {
	entry, err := s.repo.GetByNormalizedName(ctx, obs.OwnerID, normalizedName)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to load library entry: %w", err)
	}
	if entry == nil {
		entry = NewEntry(obs.OwnerID, obs.RawName, normalizedName)
		entry.ID = uuid.New().String()
	}

	scale := 100 / grams
	caloriesPer100 := obs.PerServingCalories * scale
	proteinPer100 := obs.PerServingProtein * scale
	fatPer100 := obs.PerServingFat * scale
	carbsPer100 := obs.PerServingCarbs * scale

	priorN := entry.SampleSize
	welford := WelfordState{N: entry.SampleSize, Mean: entry.AvgCaloriesPer100g, M2: entry.M2Calories}
	welford = welford.Update(caloriesPer100)

	entry.SampleSize = welford.N
	entry.AvgCaloriesPer100g = welford.Mean
	entry.M2Calories = welford.M2
	entry.StddevCalories = welford.Stddev()
	entry.Confidence = Confidence(entry.SampleSize, entry.StddevCalories, s.cfg.WelfordDecayK)

	entry.AvgProteinPer100g = incrementalMean(entry.AvgProteinPer100g, priorN, entry.SampleSize, proteinPer100)
	entry.AvgFatPer100g = incrementalMean(entry.AvgFatPer100g, priorN, entry.SampleSize, fatPer100)
	entry.AvgCarbsPer100g = incrementalMean(entry.AvgCarbsPer100g, priorN, entry.SampleSize, carbsPer100)

	if priorN == 0 {
		entry.TypicalQuantity = obs.Quantity
		entry.TypicalUnit = obs.Unit
	} else {
		newWeight := s.cfg.TypicalQuantityNewWeight
		priorWeight := 1 - newWeight
		entry.TypicalQuantity = priorWeight*entry.TypicalQuantity + newWeight*obs.Quantity
		if obs.Unit != entry.TypicalUnit {
			// documented simplification: prefer the newer unit on mismatch
			entry.TypicalUnit = obs.Unit
		}
	}

	entry.DisplayName = obs.RawName
	if obs.Category != nil {
		entry.Category = obs.Category
	}
	entry.LastUsed = nowFunc()

	if err := s.repo.Save(ctx, entry); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to save library entry: %w", err)
	}

	return entry, nil
}

// nowFunc is a package-level indirection so tests can freeze LastUsed if needed.
var nowFunc = defaultNow
