package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// Exercises the real conditional insert against Postgres, where each
// statement's COUNT reads its own snapshot and only the advisory lock keeps
// concurrent signups from overshooting the cap.
func TestAdminSeatRepositoryConcurrentCreateRespectsCap(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS admin_users (
            identity_id TEXT PRIMARY KEY,
            email       TEXT NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE admin_users`)
	require.NoError(t, err)

	repo := NewAdminSeatRepository(pool)

	const (
		seatCap  = 2
		attempts = 12
	)
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			seat := &domain.AdminSeat{
				IdentityID: fmt.Sprintf("id-%d", n),
				Email:      fmt.Sprintf("admin%d@lodger.com", n),
			}
			created, err := repo.CreateIfBelowCap(ctx, seat, seatCap)
			if err != nil {
				return
			}
			if created {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, seatCap, granted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, seatCap, count)
}

func TestAdminSeatRepositoryCreateIsIdempotentPerIdentity(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `TRUNCATE admin_users`)
	require.NoError(t, err)

	repo := NewAdminSeatRepository(pool)
	seat := &domain.AdminSeat{IdentityID: "id-a", Email: "a@lodger.com"}

	created, err := repo.CreateIfBelowCap(ctx, seat, 2)
	require.NoError(t, err)
	require.True(t, created)

	// A repeat insert for the same identity neither errors nor takes a
	// second seat.
	created, err = repo.CreateIfBelowCap(ctx, &domain.AdminSeat{IdentityID: "id-a", Email: "a@lodger.com"}, 2)
	require.NoError(t, err)
	require.False(t, created)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
