package correction

import "context"

// Repository is append-only: there is deliberately no Update or Delete.
// Correction rows are the ground-truth history (spec.md §4.4).
type Repository interface {
	Create(ctx context.Context, log *AiCorrectionLog) error
	ExistsByEditKey(ctx context.Context, editKey string) (bool, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*AiCorrectionLog, error)
	ListByMealID(ctx context.Context, mealID string) ([]*AiCorrectionLog, error)
}
