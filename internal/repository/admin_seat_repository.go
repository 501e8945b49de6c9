package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// AdminSeatRepository manages the administrator roster.
type AdminSeatRepository interface {
	GetByIdentity(ctx context.Context, identityID string) (*domain.AdminSeat, error)
	Count(ctx context.Context) (int, error)
	// CreateIfBelowCap inserts a seat only while the roster holds fewer than
	// cap records. Implementations must serialize the count check against
	// concurrent inserts. Returns false when the cap was already reached.
	CreateIfBelowCap(ctx context.Context, seat *domain.AdminSeat, cap int) (bool, error)
	List(ctx context.Context) ([]domain.AdminSeat, error)
}

type adminSeatRepository struct {
	pool *pgxpool.Pool
}

// NewAdminSeatRepository returns a Postgres-backed implementation.
func NewAdminSeatRepository(pool *pgxpool.Pool) AdminSeatRepository {
	return &adminSeatRepository{pool: pool}
}

func (r *adminSeatRepository) GetByIdentity(ctx context.Context, identityID string) (*domain.AdminSeat, error) {
	const query = `
        SELECT identity_id, email, created_at
        FROM admin_users WHERE identity_id=$1`

	var seat domain.AdminSeat
	if err := r.pool.QueryRow(ctx, query, identityID).Scan(
		&seat.IdentityID,
		&seat.Email,
		&seat.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *adminSeatRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *adminSeatRepository) CreateIfBelowCap(ctx context.Context, seat *domain.AdminSeat, cap int) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	// Under READ COMMITTED two concurrent signups at cap-1 would each see a
	// COUNT snapshot that ignores the other's uncommitted row and both would
	// insert. The transaction-scoped advisory lock serializes the
	// check-and-insert; it releases on commit or rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('admin_users'))`); err != nil {
		return false, err
	}

	const query = `
        INSERT INTO admin_users (identity_id, email)
        SELECT $1, $2
        WHERE (SELECT COUNT(*) FROM admin_users) < $3
        ON CONFLICT (identity_id) DO NOTHING
        RETURNING created_at`

	if err := tx.QueryRow(ctx, query, seat.IdentityID, seat.Email, cap).Scan(&seat.CreatedAt); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return true, tx.Commit(ctx)
}

func (r *adminSeatRepository) List(ctx context.Context) ([]domain.AdminSeat, error) {
	const query = `
        SELECT identity_id, email, created_at
        FROM admin_users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []domain.AdminSeat
	for rows.Next() {
		var seat domain.AdminSeat
		if err := rows.Scan(&seat.IdentityID, &seat.Email, &seat.CreatedAt); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}
