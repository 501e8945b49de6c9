package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// LeaseRepository gives the console read access to lease agreements.
type LeaseRepository interface {
	List(ctx context.Context, limit int) ([]domain.Lease, error)
	Count(ctx context.Context) (int, error)
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}

type leaseRepository struct {
	pool *pgxpool.Pool
}

// NewLeaseRepository returns a Postgres-backed implementation.
func NewLeaseRepository(pool *pgxpool.Pool) LeaseRepository {
	return &leaseRepository{pool: pool}
}

func (r *leaseRepository) List(ctx context.Context, limit int) ([]domain.Lease, error) {
	const query = `
        SELECT id, property_id, landlord_id, tenant_id, status, start_date, end_date, price
        FROM lease_agreements ORDER BY start_date DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lease
	for rows.Next() {
		var lease domain.Lease
		if err := rows.Scan(
			&lease.ID,
			&lease.PropertyID,
			&lease.LandlordID,
			&lease.TenantID,
			&lease.Status,
			&lease.StartDate,
			&lease.EndDate,
			&lease.Price,
		); err != nil {
			return nil, err
		}
		result = append(result, lease)
	}
	return result, rows.Err()
}

func (r *leaseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lease_agreements`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *leaseRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lease_agreements WHERE tenant_id=$1`, tenantID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
