package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/repository"
)

func newAccessService(limit int) (*AccessService, *repository.InMemoryAdminSeatRepository) {
	seats := repository.NewInMemoryAdminSeatRepository()
	return NewAccessService(seats, limit, nil, zap.NewNop()), seats
}

func TestResolveAdminAccessFillsSeatsThenDenies(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccessService(2)

	decision, err := svc.ResolveAdminAccess(ctx, "id-a", "a@lodger.com")
	require.NoError(t, err)
	require.Equal(t, domain.AccessRegistered, decision)

	decision, err = svc.ResolveAdminAccess(ctx, "id-b", "b@lodger.com")
	require.NoError(t, err)
	require.Equal(t, domain.AccessRegistered, decision)

	decision, err = svc.ResolveAdminAccess(ctx, "id-c", "c@lodger.com")
	require.NoError(t, err)
	require.Equal(t, domain.AccessDenied, decision)

	roster, err := svc.Roster(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)
}

func TestResolveAdminAccessExistingSeatIsAuthorized(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccessService(2)

	_, err := svc.ResolveAdminAccess(ctx, "id-a", "a@lodger.com")
	require.NoError(t, err)

	decision, err := svc.ResolveAdminAccess(ctx, "id-a", "a@lodger.com")
	require.NoError(t, err)
	require.Equal(t, domain.AccessAuthorized, decision)

	roster, err := svc.Roster(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 1)
}

func TestResolveAdminAccessSeatHolderUnaffectedByFullRoster(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccessService(2)

	for _, id := range []string{"id-a", "id-b"} {
		_, err := svc.ResolveAdminAccess(ctx, id, id+"@lodger.com")
		require.NoError(t, err)
	}
	_, err := svc.ResolveAdminAccess(ctx, "id-c", "c@lodger.com")
	require.NoError(t, err)

	// A holder logging in after the roster filled keeps access.
	decision, err := svc.ResolveAdminAccess(ctx, "id-b", "b@lodger.com")
	require.NoError(t, err)
	require.Equal(t, domain.AccessAuthorized, decision)
}

func TestResolveAdminAccessConcurrentSignupsRespectCap(t *testing.T) {
	ctx := context.Background()
	svc, seats := newAccessService(2)

	const attempts = 16
	results := make(chan domain.AccessDecision, attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			decision, _ := svc.ResolveAdminAccess(ctx,
				string(rune('a'+n)), "user@lodger.com")
			results <- decision
		}(i)
	}

	granted := 0
	for i := 0; i < attempts; i++ {
		if <-results == domain.AccessRegistered {
			granted++
		}
	}
	require.Equal(t, 2, granted)

	count, err := seats.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
