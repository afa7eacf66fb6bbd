// Package mealingredient provides a gorm-backed meal.IngredientRepository.
package mealingredient

import (
	"context"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) meal.IngredientRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, ingredient *meal.MealIngredient) error {
	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*meal.MealIngredient, error) {
	var ing meal.MealIngredient
	err := r.db.WithContext(ctx).First(&ing, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, meal.ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

func (r *Repository) ListByMealID(ctx context.Context, mealID string) ([]*meal.MealIngredient, error) {
	var ings []*meal.MealIngredient
	err := r.db.WithContext(ctx).Where("meal_id = ?", mealID).Order("display_order asc").Find(&ings).Error
	return ings, err
}

func (r *Repository) Update(ctx context.Context, ingredient *meal.MealIngredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&meal.MealIngredient{}, "id = ?", id).Error
}

func (r *Repository) DeleteByMealID(ctx context.Context, mealID string) error {
	return r.db.WithContext(ctx).Where("meal_id = ?", mealID).Delete(&meal.MealIngredient{}).Error
}
