package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// NotificationRepository persists bell notifications. Append-only.
type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	const query = `
        INSERT INTO notifications (id, user_id, title, message, type, read, link)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		notif.ID,
		notif.UserID,
		notif.Title,
		notif.Message,
		notif.Type,
		notif.Read,
		notif.Link,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	const query = `
        SELECT id, user_id, title, message, type, read, link, created_at
        FROM notifications WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var notif domain.Notification
		if err := rows.Scan(
			&notif.ID,
			&notif.UserID,
			&notif.Title,
			&notif.Message,
			&notif.Type,
			&notif.Read,
			&notif.Link,
			&notif.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notif)
	}
	return result, rows.Err()
}
