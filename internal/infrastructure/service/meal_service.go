package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/domain/correction"
	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"github.com/kjanat/poo-tracker/backend/internal/domain/recipepattern"
	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/ai"
	"github.com/kjanat/poo-tracker/backend/internal/validation"
	"go.uber.org/zap"
)

// MealService implements the meal business logic and, when its optional
// intelligence collaborators are wired, the Ingestion Orchestrator
// (spec.md §4.1): allocate id, write PENDING, call the AI Analysis Adapter,
// validate, persist ingredients, update the recipe pattern.
type MealService struct {
	repo           meal.Repository
	ingredientRepo meal.IngredientRepository
	adapter        *ai.Adapter
	corrections    *correction.Service
	recipes        *recipepattern.Service
	thresholds     validation.NutritionThresholds
	logger         *zap.Logger
}

// NewMealService creates a meal service with no intelligence collaborators
// wired; Create falls back to plain CRUD and analysis stays PENDING forever.
func NewMealService(repo meal.Repository) meal.Service {
	return &MealService{
		repo:       repo,
		thresholds: validation.DefaultNutritionThresholds(),
		logger:     zap.NewNop(),
	}
}

// NewMealServiceWithIntelligence wires the full Ingestion Orchestrator.
// Any collaborator may be nil to degrade gracefully: a nil adapter skips
// analysis, a nil corrections service disables Correction Telemetry, a nil
// recipes service skips Recipe Pattern Tracker updates.
func NewMealServiceWithIntelligence(
	repo meal.Repository,
	ingredientRepo meal.IngredientRepository,
	adapter *ai.Adapter,
	corrections *correction.Service,
	recipes *recipepattern.Service,
	thresholds validation.NutritionThresholds,
	logger *zap.Logger,
) meal.Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MealService{
		repo:           repo,
		ingredientRepo: ingredientRepo,
		adapter:        adapter,
		corrections:    corrections,
		recipes:        recipes,
		thresholds:     thresholds,
		logger:         logger,
	}
}

// Create creates a new meal and, when analysis inputs and an adapter are
// present, runs the Ingestion Orchestrator's full pipeline.
func (s *MealService) Create(ctx context.Context, userID string, input *meal.CreateMealInput) (*meal.Meal, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}
	if input.MealTime.IsZero() {
		input.MealTime = time.Now()
	}

	var category *shared.MealCategory
	if input.Category != nil {
		cat := shared.MealCategory(*input.Category)
		if cat.IsValid() {
			category = &cat
		}
	}

	now := time.Now()
	mealEntity := &meal.Meal{
		ID:                   uuid.New().String(),
		UserID:               userID,
		Name:                 input.Name,
		Description:          input.Description,
		MealTime:             input.MealTime,
		ImageHandle:          input.ImageHandle,
		Category:             category,
		Cuisine:              input.Cuisine,
		Calories:             input.Calories,
		SpicyLevel:           input.SpicyLevel,
		FiberRich:            input.FiberRich,
		Dairy:                input.Dairy,
		Gluten:               input.Gluten,
		PhotoURL:             input.PhotoURL,
		Notes:                input.Notes,
		LocationIsRestaurant: input.LocationIsRestaurant,
		LocationIsHome:       input.LocationIsHome,
		PlaceType:            input.PlaceType,
		AnalysisStatus:       shared.AnalysisStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Step 1: allocate id, write PENDING (spec.md §4.1).
	if err := s.repo.Create(ctx, mealEntity); err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	if s.adapter == nil || (input.ImageHandle == "" && input.Description == "") {
		return mealEntity, nil
	}

	s.runIngestionPipeline(ctx, mealEntity, input)

	return mealEntity, nil
}

// runIngestionPipeline calls the AI Analysis Adapter, validates its output,
// persists ingredient lines, and feeds the Recipe Pattern Tracker. Nothing
// it does is propagated to the caller: the meal row already exists and the
// caller has it in hand. An adapter failure still needs to resolve the
// meal out of PENDING, so it's handled here (failMeal), not just logged.
func (s *MealService) runIngestionPipeline(ctx context.Context, m *meal.Meal, input *meal.CreateMealInput) {
	locationKind := locationKindOf(input)

	result, err := s.adapter.Analyze(ctx, ai.Request{
		OwnerID:      m.UserID,
		ImageHandle:  input.ImageHandle,
		Description:  input.Description,
		LocationKind: locationKind,
		ClockBucket:  clockBucketOf(m.MealTime),
	})
	if err != nil {
		s.logger.Warn("ai analysis failed, meal marked failed", zap.String("meal_id", m.ID), zap.Error(err))
		s.failMeal(ctx, m, err)
		return
	}

	verdict := validation.ValidateNutrition(result.Nutrition, s.thresholds)

	m.Nutrition = result.Nutrition
	m.Confidence = shared.Float64Ptr(result.Confidence)
	var rawDump *string
	if verdict.Verdict == validation.VerdictError {
		m.AnalysisStatus = shared.AnalysisStatusNeedsReview
		if result.RawResponse != "" {
			raw := result.RawResponse
			rawDump = &raw
		}
	} else {
		m.AnalysisStatus = shared.AnalysisStatusCompleted
	}
	status := m.AnalysisStatus
	if err := s.repo.Update(ctx, m.ID, &meal.MealUpdate{
		Nutrition:      &m.Nutrition,
		Confidence:     m.Confidence,
		AnalysisStatus: &status,
		RawAdapterDump: rawDump,
	}); err != nil {
		s.logger.Warn("failed to persist analysis status", zap.String("meal_id", m.ID), zap.Error(err))
	}

	var observations []recipepattern.IngredientObservation
	if s.ingredientRepo != nil {
		for i, est := range result.Ingredients {
			ing := meal.NewAIIngredient(m.ID, est.Name, est.Quantity, est.Unit, result.Confidence, i)
			ing.ID = uuid.New().String()
			ing.Nutrition = est.Nutrition
			if err := s.ingredientRepo.Create(ctx, &ing); err != nil {
				s.logger.Warn("failed to persist ai ingredient", zap.String("meal_id", m.ID), zap.Error(err))
				continue
			}
			calories, _ := est.Nutrition.Get(shared.FieldCalories)
			observations = append(observations, recipepattern.IngredientObservation{
				Name: est.Name, Quantity: est.Quantity, Unit: est.Unit,
				Calories: calories, DisplayOrder: i,
			})
		}
	}

	if s.recipes != nil && len(observations) > 0 {
		if _, err := s.recipes.OnMealCompleted(ctx, m.UserID, m.Name, observations); err != nil {
			s.logger.Warn("recipe pattern update failed", zap.String("meal_id", m.ID), zap.Error(err))
		}
	}
}

// failMeal transitions a meal to FAILED with a tagged low-confidence fallback
// nutrition estimate when the AI Analysis Adapter itself could not produce a
// response (spec.md §4.1 "Analysis adapter failure", §7 Transport/Parse). The
// raw adapter payload is retained verbatim when one was captured.
func (s *MealService) failMeal(ctx context.Context, m *meal.Meal, cause error) {
	fallback := ai.FallbackResult()
	m.Nutrition = fallback.Nutrition
	m.Confidence = shared.Float64Ptr(fallback.Confidence)
	m.AnalysisStatus = shared.AnalysisStatusFailed
	status := m.AnalysisStatus

	update := &meal.MealUpdate{
		Nutrition:      &m.Nutrition,
		Confidence:     m.Confidence,
		AnalysisStatus: &status,
	}
	if raw := rawResponseOf(cause); raw != "" {
		update.RawAdapterDump = &raw
	}
	if err := s.repo.Update(ctx, m.ID, update); err != nil {
		s.logger.Warn("failed to persist failed analysis status", zap.String("meal_id", m.ID), zap.Error(err))
	}
}

// rawResponseOf unwraps an *ai.Error's captured raw response body, if any.
func rawResponseOf(err error) string {
	var adapterErr *ai.Error
	if errors.As(err, &adapterErr) {
		return adapterErr.RawResponse
	}
	return ""
}

func locationKindOf(input *meal.CreateMealInput) string {
	switch {
	case input.LocationIsRestaurant != nil && *input.LocationIsRestaurant:
		return "restaurant"
	case input.LocationIsHome != nil && *input.LocationIsHome:
		return "home"
	default:
		return input.PlaceType
	}
}

func clockBucketOf(t time.Time) string {
	switch h := t.Hour(); {
	case h < 11:
		return "breakfast"
	case h < 16:
		return "lunch"
	case h < 21:
		return "dinner"
	default:
		return "late_night"
	}
}

// ListIngredients lists the ingredient lines for a meal.
func (s *MealService) ListIngredients(ctx context.Context, mealID string) ([]*meal.MealIngredient, error) {
	if mealID == "" {
		return nil, meal.ErrInvalidID
	}
	if s.ingredientRepo == nil {
		return nil, nil
	}
	return s.ingredientRepo.ListByMealID(ctx, mealID)
}

// AddIngredient appends a user-added ingredient line to a meal.
func (s *MealService) AddIngredient(ctx context.Context, mealID string, input *meal.IngredientInput) (*meal.MealIngredient, error) {
	if s.ingredientRepo == nil {
		return nil, fmt.Errorf("ingredient storage not configured")
	}
	if mealID == "" {
		return nil, meal.ErrInvalidID
	}
	if input == nil || input.Name == "" {
		return nil, meal.ErrInvalidIngredientName
	}
	if input.Quantity <= 0 {
		return nil, meal.ErrInvalidQuantity
	}
	if input.Unit == "" {
		return nil, meal.ErrInvalidUnit
	}

	now := time.Now()
	ing := &meal.MealIngredient{
		ID:        uuid.New().String(),
		MealID:    mealID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ingredientRepo.Create(ctx, ing); err != nil {
		return nil, fmt.Errorf("failed to add ingredient: %w", err)
	}
	return ing, nil
}

// UpdateIngredient applies a user correction to an ingredient, then records
// Correction Telemetry (spec.md §4.4) so the Online Learner can train on the
// genuine first AI->user correction.
func (s *MealService) UpdateIngredient(ctx context.Context, ingredientID string, input *meal.IngredientCorrectionInput) (*meal.MealIngredient, error) {
	if s.ingredientRepo == nil {
		return nil, fmt.Errorf("ingredient storage not configured")
	}
	if ingredientID == "" {
		return nil, meal.ErrInvalidID
	}

	before, err := s.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	beforeCopy := *before

	after := *before
	if input.Name != nil {
		after.Name = *input.Name
	}
	if input.Quantity != nil {
		after.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		after.Unit = *input.Unit
	}
	applyCorrection(&after.Nutrition.Calories, input.Calories)
	applyCorrection(&after.Nutrition.ProteinG, input.ProteinG)
	applyCorrection(&after.Nutrition.FatG, input.FatG)
	applyCorrection(&after.Nutrition.SaturatedFatG, input.SaturatedFatG)
	applyCorrection(&after.Nutrition.CarbsG, input.CarbsG)
	applyCorrection(&after.Nutrition.FiberG, input.FiberG)
	applyCorrection(&after.Nutrition.SugarG, input.SugarG)
	applyCorrection(&after.Nutrition.SodiumMg, input.SodiumMg)
	after.IsUserCorrected = true
	after.UpdatedAt = time.Now()

	if err := s.ingredientRepo.Update(ctx, &after); err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}

	if s.corrections != nil {
		parentMeal, err := s.repo.GetByID(ctx, after.MealID)
		if err == nil {
			_, cErr := s.corrections.RecordEdit(ctx, correction.EditInput{
				Before:                  beforeCopy,
				After:                   after,
				OwnerID:                 parentMeal.UserID,
				ConfidenceAtAnalysis:    parentMeal.Confidence,
				LocationType:            locationTypeOf(parentMeal),
				MealDescriptionSnapshot: parentMeal.Description,
				EditKey:                 fmt.Sprintf("%s:%d", after.ID, after.UpdatedAt.UnixNano()),
			})
			if cErr != nil {
				s.logger.Warn("correction telemetry failed", zap.String("ingredient_id", after.ID), zap.Error(cErr))
			}
		}
	}

	return &after, nil
}

func locationTypeOf(m *meal.Meal) string {
	switch {
	case m.LocationIsRestaurant != nil && *m.LocationIsRestaurant:
		return "restaurant"
	case m.LocationIsHome != nil && *m.LocationIsHome:
		return "home"
	default:
		return m.PlaceType
	}
}

func applyCorrection(field **float64, newValue *float64) {
	if newValue != nil {
		*field = newValue
	}
}

// DeleteIngredient removes an ingredient line from a meal.
func (s *MealService) DeleteIngredient(ctx context.Context, ingredientID string) error {
	if s.ingredientRepo == nil {
		return fmt.Errorf("ingredient storage not configured")
	}
	if ingredientID == "" {
		return meal.ErrInvalidID
	}
	return s.ingredientRepo.Delete(ctx, ingredientID)
}

// GetByID retrieves a meal by ID
func (s *MealService) GetByID(ctx context.Context, id string) (*meal.Meal, error) {
	if id == "" {
		return nil, meal.ErrInvalidID
	}

	mealEntity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, meal.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}

	return mealEntity, nil
}

// GetByUserID retrieves meals for a specific user with pagination
func (s *MealService) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*meal.Meal, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}

	// Apply business rules for pagination
	if limit <= 0 || limit > 100 {
		limit = 20 // default
	}
	if offset < 0 {
		offset = 0
	}

	meals, err := s.repo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get user meals: %w", err)
	}

	return meals, nil
}

// Update updates an existing meal
func (s *MealService) Update(ctx context.Context, id string, input *meal.UpdateMealInput) (*meal.Meal, error) {
	if id == "" {
		return nil, meal.ErrInvalidID
	}

	// Get existing meal to verify it exists
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, meal.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meal for update: %w", err)
	}

	// Validate update input
	if err := s.validateUpdateInput(input); err != nil {
		return nil, err
	}

	// Convert input to update struct
	update := s.convertToUpdateStruct(input)

	// Save changes
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to update meal: %w", err)
	}

	// Return updated meal
	return s.repo.GetByID(ctx, id)
}

// Delete removes a meal
func (s *MealService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return meal.ErrInvalidID
	}

	// Check if meal exists
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return meal.ErrNotFound
		}
		return fmt.Errorf("failed to verify meal exists: %w", err)
	}

	// Delete meal
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	if s.ingredientRepo != nil {
		if err := s.ingredientRepo.DeleteByMealID(ctx, id); err != nil {
			s.logger.Warn("failed to cascade-delete ingredients", zap.String("meal_id", id), zap.Error(err))
		}
	}

	return nil
}

// GetByDateRange retrieves meals within a date range
func (s *MealService) GetByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*meal.Meal, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}

	// Validate date range
	if start.After(end) {
		return nil, meal.ErrInvalidDateRange
	}

	// Limit date range to reasonable bounds
	maxRange := 365 * 24 * time.Hour // 1 year
	if end.Sub(start) > maxRange {
		return nil, meal.ErrDateRangeTooLarge
	}

	meals, err := s.repo.GetByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals by date range: %w", err)
	}

	return meals, nil
}

// GetByCategory retrieves meals by category
func (s *MealService) GetByCategory(ctx context.Context, userID string, category string) ([]*meal.Meal, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}

	if category == "" {
		return nil, meal.ErrInvalidCategory
	}

	meals, err := s.repo.GetByCategory(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals by category: %w", err)
	}

	return meals, nil
}

// GetLatest retrieves the most recent meal for a user
func (s *MealService) GetLatest(ctx context.Context, userID string) (*meal.Meal, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}

	latest, err := s.repo.GetLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, meal.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest meal: %w", err)
	}

	return latest, nil
}

// GetNutritionStats generates nutrition analytics for a user's meals
func (s *MealService) GetNutritionStats(ctx context.Context, userID string, start, end time.Time) (*meal.MealNutritionStats, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}

	// Get meals in date range
	meals, err := s.GetByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	if len(meals) == 0 {
		return &meal.MealNutritionStats{
			MealCount: 0,
		}, nil
	}

	// Calculate nutrition statistics
	stats := s.calculateNutritionStats(meals, start, end)
	return stats, nil
}

// GetMealInsights generates insights for a user's meals
func (s *MealService) GetMealInsights(ctx context.Context, userID string, start, end time.Time) (*meal.MealInsights, error) {
	if userID == "" {
		return nil, meal.ErrInvalidUserID
	}

	// Get meals in date range
	meals, err := s.GetByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	if len(meals) == 0 {
		return &meal.MealInsights{
			AverageMealsPerDay: 0,
		}, nil
	}

	// Calculate insights
	insights := s.calculateInsights(meals, start, end)
	return insights, nil
}

// validateCreateInput validates create input
func (s *MealService) validateCreateInput(input *meal.CreateMealInput) error {
	if input == nil {
		return meal.ErrInvalidInput
	}

	if input.Name == "" {
		return meal.ErrInvalidName
	}

	if input.Calories < 0 || input.Calories > 10000 {
		return meal.ErrInvalidCalories
	}

	if input.SpicyLevel != nil && (*input.SpicyLevel < 1 || *input.SpicyLevel > 10) {
		return meal.ErrInvalidSpicyLevel
	}

	// Validate category if provided
	if input.Category != nil {
		cat := shared.MealCategory(*input.Category)
		if !cat.IsValid() {
			return meal.ErrInvalidCategory
		}
	}

	return nil
}

// validateUpdateInput validates update input
func (s *MealService) validateUpdateInput(input *meal.UpdateMealInput) error {
	if input == nil {
		return meal.ErrInvalidInput
	}

	if input.Name != nil && *input.Name == "" {
		return meal.ErrInvalidName
	}

	if input.Calories != nil && (*input.Calories < 0 || *input.Calories > 10000) {
		return meal.ErrInvalidCalories
	}

	if input.SpicyLevel != nil && (*input.SpicyLevel < 1 || *input.SpicyLevel > 10) {
		return meal.ErrInvalidSpicyLevel
	}

	return nil
}

// convertToUpdateStruct converts service input to repository update struct
func (s *MealService) convertToUpdateStruct(input *meal.UpdateMealInput) *meal.MealUpdate {
	update := &meal.MealUpdate{
		Name:        input.Name,
		Description: input.Description,
		MealTime:    input.MealTime,
		Cuisine:     input.Cuisine,
		Calories:    input.Calories,
		SpicyLevel:  input.SpicyLevel,
		FiberRich:   input.FiberRich,
		Dairy:       input.Dairy,
		Gluten:      input.Gluten,
		PhotoURL:    input.PhotoURL,
		Notes:       input.Notes,
	}

	// Convert string pointer to shared type pointer
	if input.Category != nil {
		cat := shared.MealCategory(*input.Category)
		update.Category = &cat
	}

	return update
}

// calculateNutritionStats calculates nutrition statistics from meals
func (s *MealService) calculateNutritionStats(meals []*meal.Meal, start, end time.Time) *meal.MealNutritionStats {
	mealCount := int64(len(meals))
	var totalCalories int64
	fiberRichCount := int64(0)
	dairyCount := int64(0)
	glutenCount := int64(0)
	var totalSpiciness int64
	spicyMealsCount := int64(0)

	categoryBreakdown := make(map[string]int)
	cuisineBreakdown := make(map[string]int)

	for _, m := range meals {
		totalCalories += int64(m.Calories)
		if m.FiberRich {
			fiberRichCount++
		}
		if m.Dairy {
			dairyCount++
		}
		if m.Gluten {
			glutenCount++
		}
		if m.SpicyLevel != nil {
			totalSpiciness += int64(*m.SpicyLevel)
			spicyMealsCount++
		}

		// Count categories
		if m.Category != nil {
			categoryBreakdown[string(*m.Category)]++
		}

		// Count cuisines
		if m.Cuisine != "" {
			cuisineBreakdown[m.Cuisine]++
		}
	}

	// Calculate averages
	var avgCalories, avgSpiciness float64
	if mealCount > 0 {
		avgCalories = float64(totalCalories) / float64(mealCount)
	}
	if spicyMealsCount > 0 {
		avgSpiciness = float64(totalSpiciness) / float64(spicyMealsCount)
	}

	return &meal.MealNutritionStats{
		TotalCalories:     int(totalCalories),
		AverageCalories:   avgCalories,
		FiberRichMeals:    fiberRichCount,
		DairyMeals:        dairyCount,
		GlutenMeals:       glutenCount,
		AverageSpiciness:  avgSpiciness,
		MealCount:         mealCount,
		CategoryBreakdown: categoryBreakdown,
		CuisineBreakdown:  cuisineBreakdown,
	}
}

// calculateInsights calculates insights from meals
func (s *MealService) calculateInsights(meals []*meal.Meal, start, end time.Time) *meal.MealInsights {
	totalMeals := int64(len(meals))
	categoryDistribution := make(map[string]int)
	cuisineDistribution := make(map[string]int)

	var mostCommonCategory, mostCommonCuisine string
	maxCategoryCount, maxCuisineCount := 0, 0

	for _, m := range meals {
		// Count categories
		if m.Category != nil {
			categoryStr := string(*m.Category)
			categoryDistribution[categoryStr]++
			if categoryDistribution[categoryStr] > maxCategoryCount {
				maxCategoryCount = categoryDistribution[categoryStr]
				mostCommonCategory = categoryStr
			}
		}

		// Count cuisines
		if m.Cuisine != "" {
			cuisineDistribution[m.Cuisine]++
			if cuisineDistribution[m.Cuisine] > maxCuisineCount {
				maxCuisineCount = cuisineDistribution[m.Cuisine]
				mostCommonCuisine = m.Cuisine
			}
		}
	}

	// Calculate frequency per day
	days := end.Sub(start).Hours() / 24
	if days <= 0 {
		days = 1
	}
	averageMealsPerDay := float64(totalMeals) / days

	// Calculate meal time patterns (hour -> frequency)
	mealTimePatterns := make(map[string]float64)
	for _, m := range meals {
		hour := m.MealTime.Hour()
		hourStr := fmt.Sprintf("%d", hour)
		mealTimePatterns[hourStr]++
	}
	// Normalize to percentages
	for hour := range mealTimePatterns {
		mealTimePatterns[hour] = mealTimePatterns[hour] / float64(totalMeals)
	}

	// Calculate simple health score based on fiber content
	healthScore := 5.0 // default middle score
	if totalMeals > 0 {
		fiberRichCount := 0
		for _, m := range meals {
			if m.FiberRich {
				fiberRichCount++
			}
		}
		// Health score 1-10 based on fiber content
		fiberRatio := float64(fiberRichCount) / float64(totalMeals)
		healthScore = 1.0 + (fiberRatio * 9.0) // 1-10 scale
	}

	return &meal.MealInsights{
		MostCommonCategory: mostCommonCategory,
		MostCommonCuisine:  mostCommonCuisine,
		AverageMealsPerDay: averageMealsPerDay,
		MealTimePatterns:   mealTimePatterns,
		HealthScore:        healthScore,
	}
}
