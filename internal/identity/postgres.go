package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/auth"
)

// PostgresProvider stores identities in the auth_identities table with bcrypt
// password hashes.
type PostgresProvider struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

// NewPostgresProvider returns a Postgres-backed provider.
func NewPostgresProvider(pool *pgxpool.Pool, bcryptCost int) *PostgresProvider {
	return &PostgresProvider{pool: pool, bcryptCost: bcryptCost}
}

func (p *PostgresProvider) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	const query = `SELECT id, email, password_hash FROM auth_identities WHERE email=$1`

	var (
		identity Identity
		hash     string
	)
	if err := p.pool.QueryRow(ctx, query, email).Scan(&identity.ID, &identity.Email, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := auth.ComparePassword(hash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &identity, nil
}

func (p *PostgresProvider) Register(ctx context.Context, email, password string) (*Identity, error) {
	hash, err := auth.HashPassword(password, p.bcryptCost)
	if err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO auth_identities (id, email, password_hash)
        VALUES ($1,$2,$3)
        ON CONFLICT (email) DO NOTHING
        RETURNING id`

	id := uuid.NewString()
	var inserted string
	if err := p.pool.QueryRow(ctx, query, id, email, hash).Scan(&inserted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &Identity{ID: inserted, Email: email}, nil
}

func (p *PostgresProvider) Delete(ctx context.Context, id string) error {
	// Zero rows affected means the identity was already gone, which the
	// deletion flow treats as success.
	_, err := p.pool.Exec(ctx, `DELETE FROM auth_identities WHERE id=$1`, id)
	return err
}
