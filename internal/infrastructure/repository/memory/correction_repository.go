package memory

import (
	"context"
	"sync"

	"github.com/kjanat/poo-tracker/backend/internal/domain/correction"
)

// CorrectionRepository implements correction.Repository using in-memory,
// append-only storage.
type CorrectionRepository struct {
	mu   sync.RWMutex
	rows []*correction.AiCorrectionLog
}

// NewCorrectionRepository creates a new in-memory correction log repository.
func NewCorrectionRepository() correction.Repository {
	return &CorrectionRepository{}
}

func (r *CorrectionRepository) Create(ctx context.Context, log *correction.AiCorrectionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, log)
	return nil
}

func (r *CorrectionRepository) ExistsByEditKey(ctx context.Context, editKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.EditKey != "" && row.EditKey == editKey {
			return true, nil
		}
	}
	return false, nil
}

func (r *CorrectionRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*correction.AiCorrectionLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*correction.AiCorrectionLog
	for _, row := range r.rows {
		if row.OwnerID == ownerID {
			matched = append(matched, row)
		}
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

func (r *CorrectionRepository) ListByMealID(ctx context.Context, mealID string) ([]*correction.AiCorrectionLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*correction.AiCorrectionLog
	for _, row := range r.rows {
		if row.MealID == mealID {
			out = append(out, row)
		}
	}
	return out, nil
}
