package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vmfit/internal/domain/entity"
	"vmfit/internal/repository"
)

type LeadRepo struct {
	db *sql.DB
}

func NewLeadRepo(db *sql.DB) repository.LeadRepository {
	return &LeadRepo{db: db}
}

// Create stores a new lead and assigns its ID.
func (repo *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	const query = `
INSERT INTO leads (name, email, source, plan_requested, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query, lead.Name, lead.Email,
		lead.Source, lead.PlanRequested, lead.CreatedAt).Scan(&lead.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// List returns leads ordered by creation time descending.
func (repo *LeadRepo) List(ctx context.Context, offset, limit int) ([]*entity.Lead, error) {
	const query = `
SELECT id, name, email, source, plan_requested, created_at
FROM leads
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	leads := make([]*entity.Lead, 0, limit)
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email,
			&lead.Source, &lead.PlanRequested, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		leads = append(leads, &lead)
	}
	return leads, rows.Err()
}

// Count returns the total number of captured leads.
func (repo *LeadRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM leads`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// ExistsByEmail reports whether a lead with the given email is already captured.
func (repo *LeadRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM leads WHERE email = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return exists, nil
}
