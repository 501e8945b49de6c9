package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// MessageRepository persists direct messages. Messages are append-only.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	const query = `
        INSERT INTO messages (id, sender_id, recipient_id, text, read, participant_ids)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING timestamp`

	return r.pool.QueryRow(ctx, query,
		msg.ID,
		msg.SenderID,
		msg.RecipientID,
		msg.Text,
		msg.Read,
		msg.ParticipantIDs,
	).Scan(&msg.Timestamp)
}

func (r *messageRepository) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Message, error) {
	const query = `
        SELECT id, sender_id, recipient_id, text, timestamp, read, participant_ids
        FROM messages WHERE recipient_id=$1 ORDER BY timestamp DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, recipientID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.RecipientID,
			&msg.Text,
			&msg.Timestamp,
			&msg.Read,
			&msg.ParticipantIDs,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
