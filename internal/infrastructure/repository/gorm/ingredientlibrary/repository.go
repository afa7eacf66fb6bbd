// Package ingredientlibrary provides a gorm-backed
// ingredientlibrary.Repository, following the same direct-domain-struct
// persistence style as internal/infrastructure/repository/gorm/meal.
package ingredientlibrary

import (
	"context"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ingredientlibrary.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByNormalizedName(ctx context.Context, ownerID, normalizedName string) (*ingredientlibrary.Entry, error) {
	var e ingredientlibrary.Entry
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND normalized_name = ?", ownerID, normalizedName).
		First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ingredientlibrary.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetByID(ctx context.Context, ownerID, id string) (*ingredientlibrary.Entry, error) {
	var e ingredientlibrary.Entry
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ingredientlibrary.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]*ingredientlibrary.Entry, error) {
	var entries []*ingredientlibrary.Entry
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&entries).Error
	return entries, err
}

// Save writes a library entry with optimistic-concurrency protection: a
// brand-new entry (Version == 0) is plainly created; an existing one is
// updated only if its row still carries the Version it was read at. A
// mismatch means another process folded a concurrent observation into the
// same (owner_id, normalized_name) row first, and is reported as
// ingredientlibrary.ErrConflict for the caller's retry loop
// (internal/domain/ingredientlibrary.Service.Observe) to handle.
func (r *Repository) Save(ctx context.Context, entry *ingredientlibrary.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	if entry.Version == 0 {
		entry.Version = 1
		return r.db.WithContext(ctx).Create(entry).Error
	}

	expected := entry.Version
	entry.Version = expected + 1
	// Select("*") forces every column to be written, matching Save's old
	// full-row-update semantics: plain Updates(struct) silently skips any
	// field holding its zero value, which would drop legitimate zeroes
	// (e.g. a stddev that's settled back to 0).
	result := r.db.WithContext(ctx).
		Model(&ingredientlibrary.Entry{}).
		Where("id = ? AND version = ?", entry.ID, expected).
		Select("*").
		Updates(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ingredientlibrary.ErrConflict
	}
	return nil
}

func (r *Repository) Stats(ctx context.Context, ownerID string) (*ingredientlibrary.Stats, error) {
	var stats ingredientlibrary.Stats

	var total int64
	if err := r.db.WithContext(ctx).Model(&ingredientlibrary.Entry{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, err
	}
	stats.Total = int(total)

	var avgConfidence float64
	row := r.db.WithContext(ctx).Model(&ingredientlibrary.Entry{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(AVG(confidence), 0)").Row()
	if row != nil {
		_ = row.Scan(&avgConfidence)
	}
	stats.AvgConfidence = avgConfidence

	var highConfidence int64
	if err := r.db.WithContext(ctx).Model(&ingredientlibrary.Entry{}).
		Where("owner_id = ? AND confidence >= 0.8", ownerID).
		Count(&highConfidence).Error; err != nil {
		return nil, err
	}
	stats.HighConfidenceCount = int(highConfidence)

	return &stats, nil
}
