package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PropertyRepository gives the console read access to listings.
type PropertyRepository interface {
	CountByStatus(ctx context.Context, status string) (int, error)
	CountByLandlord(ctx context.Context, landlordID string) (int, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository returns a Postgres-backed implementation.
func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

func (r *propertyRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties WHERE status=$1`, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *propertyRepository) CountByLandlord(ctx context.Context, landlordID string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties WHERE landlord_id=$1`, landlordID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
