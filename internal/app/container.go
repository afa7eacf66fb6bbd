package app

import (
	"fmt"
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/analytics"
	"github.com/kjanat/poo-tracker/backend/internal/domain/bowelmovement"
	"github.com/kjanat/poo-tracker/backend/internal/domain/correction"
	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"github.com/kjanat/poo-tracker/backend/internal/domain/medication"
	"github.com/kjanat/poo-tracker/backend/internal/domain/prediction"
	"github.com/kjanat/poo-tracker/backend/internal/domain/recipepattern"
	"github.com/kjanat/poo-tracker/backend/internal/domain/symptom"
	"github.com/kjanat/poo-tracker/backend/internal/domain/user"
	infraconfig "github.com/kjanat/poo-tracker/backend/internal/infrastructure/config"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/ai"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/database"
	gormcorrection "github.com/kjanat/poo-tracker/backend/internal/infrastructure/repository/gorm/correction"
	gormingredientlibrary "github.com/kjanat/poo-tracker/backend/internal/infrastructure/repository/gorm/ingredientlibrary"
	gormmealingredient "github.com/kjanat/poo-tracker/backend/internal/infrastructure/repository/gorm/mealingredient"
	gormrecipepattern "github.com/kjanat/poo-tracker/backend/internal/infrastructure/repository/gorm/recipepattern"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/repository/memory"
	"github.com/kjanat/poo-tracker/backend/internal/infrastructure/service"
	"github.com/kjanat/poo-tracker/backend/internal/normalize"
	"github.com/kjanat/poo-tracker/backend/internal/validation"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config   *Config
	Database database.Database
	Redis    *redis.Client
	Logger   *zap.Logger

	// Repositories
	UserRepository              user.Repository
	BowelMovementRepository     bowelmovement.Repository
	MealRepository              meal.Repository
	MealIngredientRepository    meal.IngredientRepository
	MedicationRepository        medication.Repository
	SymptomRepository           symptom.Repository
	IngredientLibraryRepository ingredientlibrary.Repository
	CorrectionRepository        correction.Repository
	RecipePatternRepository     recipepattern.Repository

	// Services
	UserService          user.Service
	BowelMovementService bowelmovement.Service
	MealService          meal.Service
	MedicationService    medication.Service
	SymptomService       symptom.Service
	AnalyticsService     analytics.Service
	IngredientLibrary    *ingredientlibrary.Service
	Corrections          *correction.Service
	RecipePatterns       *recipepattern.Service
	Prediction           *prediction.Service
	AIAdapter            *ai.Adapter

	NormalizeTables normalize.Tables
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	// Load configuration
	config := LoadConfig()

	logger, err := newLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	// Setup database
	dbConfig := database.GetConfigFromEnv()
	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return nil, err
	}

	// Validate database connection
	if sqlDB, err := db.GetDB().DB(); err != nil {
		return nil, fmt.Errorf("failed to get underlying database connection: %w", err)
	} else if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection validation failed: %w", err)
	}

	// Run migrations
	if err := db.Migrate(); err != nil {
		return nil, err
	}

	container := &Container{
		Config:   config,
		Database: db,
		Logger:   logger,
	}

	container.Redis = newRedisClient(config, logger)

	tables, err := infraconfig.LoadTables(config.IngredientAliasesPath, config.IngredientUnitsPath, logger)
	if err != nil {
		logger.Warn("falling back to default ingredient tables", zap.Error(err))
		tables = normalize.NewTables(normalize.DefaultAliases(), normalize.DefaultUnitGrams())
	}
	container.NormalizeTables = tables

	// Initialize repositories
	container.UserRepository = memory.NewUserRepository()
	container.BowelMovementRepository = memory.NewBowelMovementRepository()
	container.MealRepository = memory.NewMealRepository()
	container.MedicationRepository = memory.NewMedicationRepository()
	container.SymptomRepository = memory.NewSymptomRepository()

	// The Nutrition Intelligence Core's new domain packages are gorm-backed
	// from the start: they're additive tables with no legacy in-memory
	// deployment to match.
	gormDB := db.GetDB()
	container.MealIngredientRepository = gormmealingredient.NewRepository(gormDB)
	container.IngredientLibraryRepository = gormingredientlibrary.NewRepository(gormDB)
	container.CorrectionRepository = gormcorrection.NewRepository(gormDB)
	container.RecipePatternRepository = gormrecipepattern.NewRepository(gormDB)

	// Initialize services
	container.UserService = service.NewUserService(container.UserRepository)
	container.BowelMovementService = service.NewBowelMovementService(container.BowelMovementRepository)
	container.MedicationService = service.NewMedicationService(container.MedicationRepository)
	container.SymptomService = service.NewSymptomService(container.SymptomRepository)

	container.IngredientLibrary = ingredientlibrary.NewService(
		container.IngredientLibraryRepository,
		tables,
		ingredientlibrary.Config{
			WelfordDecayK:            config.WelfordDecayK,
			TypicalQuantityNewWeight: config.TypicalQuantityEWMAWeight,
		},
		logger,
	)

	container.Corrections = correction.NewService(container.CorrectionRepository, container.IngredientLibrary, logger)
	container.RecipePatterns = recipepattern.NewService(container.RecipePatternRepository, tables, logger)
	container.Prediction = prediction.NewService(container.IngredientLibraryRepository, tables, config.MaxEditDistance)

	container.AIAdapter = newAIAdapter(config, container.Redis, logger)

	container.MealService = service.NewMealServiceWithIntelligence(
		container.MealRepository,
		container.MealIngredientRepository,
		container.AIAdapter,
		container.Corrections,
		container.RecipePatterns,
		validation.NutritionThresholds{
			AtwaterWarnPct:     config.AtwaterWarnPct,
			AtwaterErrorPct:    config.AtwaterErrorPct,
			CalorieSoftCeiling: config.CalorieSoftCeiling,
		},
		logger,
	)

	container.AnalyticsService = service.NewAnalyticsService(
		container.BowelMovementService,
		container.MealService,
		container.SymptomService,
		container.MedicationService,
	)

	return container, nil
}

// newLogger builds the zap logger the teacher's stack uses throughout, tuned
// by the Logging config section.
func newLogger(config *Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.LogFormat == "text" || config.IsDevelopment() {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(config.LogLevel)
	if err == nil {
		zapConfig.Level = level
	}
	return zapConfig.Build()
}

// newRedisClient connects to Redis when configured. Redis backs the AI
// adapter's circuit breaker and rate limiter only; a nil client degrades
// both to in-process, single-instance behavior (spec.md §5).
func newRedisClient(config *Config, logger *zap.Logger) *redis.Client {
	if config.RedisURL == "" {
		logger.Info("no REDIS_URL configured, ai adapter coordination will be in-process only")
		return nil
	}
	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, ignoring", zap.Error(err))
		return nil
	}
	return redis.NewClient(opts)
}

func newAIAdapter(config *Config, redisClient *redis.Client, logger *zap.Logger) *ai.Adapter {
	provider := ai.NewHTTPProvider(config.AdapterBaseURL, config.AdapterAPIKey, logger)

	breakerCfg := ai.BreakerConfig{
		WindowSize:       20,
		FailureThreshold: config.AdapterBreakerThresholdPct,
		CooldownPeriod:   config.AdapterBreakerCooldown,
	}
	breaker := ai.NewBreaker(redisClient, breakerCfg, logger)

	limiter := ai.NewRedisRateLimiter(redisClient, config.PerUserAdapterRPS, time.Minute, logger)

	retryCfg := ai.RetryConfig{
		MaxAttempts:     config.AdapterRetries,
		InitialInterval: 2 * time.Second,
		Multiplier:      2,
	}

	return ai.NewAdapter(provider, breaker, limiter, retryCfg, logger)
}

// Cleanup closes all resources
func (c *Container) Cleanup() error {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Database != nil {
		return c.Database.Close()
	}
	return nil
}
