package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// BroadcastRepository records announcement history.
type BroadcastRepository interface {
	Create(ctx context.Context, broadcast *domain.Broadcast) error
	List(ctx context.Context, limit int) ([]domain.Broadcast, error)
}

type broadcastRepository struct {
	pool *pgxpool.Pool
}

// NewBroadcastRepository returns a Postgres-backed implementation.
func NewBroadcastRepository(pool *pgxpool.Pool) BroadcastRepository {
	return &broadcastRepository{pool: pool}
}

func (r *broadcastRepository) Create(ctx context.Context, broadcast *domain.Broadcast) error {
	const query = `
        INSERT INTO broadcast_messages (id, title, message, target, type, sender_id, recipient_count)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		broadcast.ID,
		broadcast.Title,
		broadcast.Message,
		broadcast.Target,
		broadcast.Type,
		broadcast.SenderID,
		broadcast.RecipientCount,
	).Scan(&broadcast.CreatedAt)
}

func (r *broadcastRepository) List(ctx context.Context, limit int) ([]domain.Broadcast, error) {
	const query = `
        SELECT id, title, message, target, type, sender_id, recipient_count, created_at
        FROM broadcast_messages ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Broadcast
	for rows.Next() {
		var broadcast domain.Broadcast
		if err := rows.Scan(
			&broadcast.ID,
			&broadcast.Title,
			&broadcast.Message,
			&broadcast.Target,
			&broadcast.Type,
			&broadcast.SenderID,
			&broadcast.RecipientCount,
			&broadcast.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, broadcast)
	}
	return result, rows.Err()
}
