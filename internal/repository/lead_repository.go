package repository

import (
	"context"

	"vmfit/internal/domain/entity"
)

// LeadRepository persists captured coaching leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	// List returns leads ordered by creation time descending.
	List(ctx context.Context, offset, limit int) ([]*entity.Lead, error)
	Count(ctx context.Context) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
