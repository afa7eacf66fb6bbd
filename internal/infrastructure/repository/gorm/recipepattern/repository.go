// Package recipepattern provides a gorm-backed recipepattern.Repository.
package recipepattern

import (
	"context"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/domain/recipepattern"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) recipepattern.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByNormalizedPrimary(ctx context.Context, ownerID, normalizedPrimary string) (*recipepattern.Pattern, error) {
	var p recipepattern.Pattern
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND normalized_primary = ?", ownerID, normalizedPrimary).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, recipepattern.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]*recipepattern.Pattern, error) {
	var patterns []*recipepattern.Pattern
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&patterns).Error
	return patterns, err
}

func (r *Repository) Save(ctx context.Context, pattern *recipepattern.Pattern) error {
	if pattern.ID == "" {
		pattern.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "normalized_primary"}},
		UpdateAll: true,
	}).Create(pattern).Error
}
