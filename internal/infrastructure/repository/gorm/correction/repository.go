// Package correction provides a gorm-backed correction.Repository. Rows are
// append-only: intentionally no Update/Delete methods, matching the domain
// interface.
package correction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kjanat/poo-tracker/backend/internal/domain/correction"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) correction.Repository {
	return &Repository{db: db}
}

// Create writes one append-only row. The ExistsByEditKey precheck in
// correction.Service.RecordEdit narrows the common redelivery case; the
// unique (edit_key, field_name) index backs it up against the race between
// that check and this write, surfacing as ErrDuplicateEdit rather than a
// raw driver error.
func (r *Repository) Create(ctx context.Context, log *correction.AiCorrectionLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return correction.ErrDuplicateEdit
		}
		return err
	}
	return nil
}

func (r *Repository) ExistsByEditKey(ctx context.Context, editKey string) (bool, error) {
	if editKey == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&correction.AiCorrectionLog{}).
		Where("edit_key = ?", editKey).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*correction.AiCorrectionLog, error) {
	var rows []*correction.AiCorrectionLog
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("corrected_at desc").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *Repository) ListByMealID(ctx context.Context, mealID string) ([]*correction.AiCorrectionLog, error) {
	var rows []*correction.AiCorrectionLog
	err := r.db.WithContext(ctx).Where("meal_id = ?", mealID).Find(&rows).Error
	return rows, err
}
