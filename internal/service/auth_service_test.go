package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/config"
	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/identity"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

func newAuthService() (*AuthService, *identity.InMemoryProvider) {
	cfg := config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5},
	}
	provider := identity.NewInMemoryProvider()
	access := NewAccessService(repository.NewInMemoryAdminSeatRepository(), 2, nil, zap.NewNop())
	return NewAuthService(cfg, provider, access), provider
}

func TestRegisterAdminGrantsSeatsUntilCap(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	first, err := svc.RegisterAdmin(ctx, "a@lodger.com", "pw-a")
	require.NoError(t, err)
	require.Equal(t, domain.AccessRegistered, first.Decision)
	require.NotEmpty(t, first.Token)

	second, err := svc.RegisterAdmin(ctx, "b@lodger.com", "pw-b")
	require.NoError(t, err)
	require.Equal(t, domain.AccessRegistered, second.Decision)

	_, err = svc.RegisterAdmin(ctx, "c@lodger.com", "pw-c")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "FORBIDDEN"))
	require.Contains(t, err.Error(), "Administrator limit reached")
}

func TestLoginAdminAfterRosterFull(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	for _, email := range []string{"a@lodger.com", "b@lodger.com"} {
		_, err := svc.RegisterAdmin(ctx, email, "pw")
		require.NoError(t, err)
	}

	session, err := svc.LoginAdmin(ctx, "a@lodger.com", "pw")
	require.NoError(t, err)
	require.Equal(t, domain.AccessAuthorized, session.Decision)

	claims, err := svc.TokenManager().ParseToken(session.Token)
	require.NoError(t, err)
	require.Equal(t, session.IdentityID, claims.IdentityID)
	require.Equal(t, "a@lodger.com", claims.Email)
}

func TestLoginAdminRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, err := svc.RegisterAdmin(ctx, "a@lodger.com", "pw")
	require.NoError(t, err)

	_, err = svc.LoginAdmin(ctx, "a@lodger.com", "wrong")
	require.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, err = svc.LoginAdmin(ctx, "unknown@lodger.com", "pw")
	require.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestRegisterAdminValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, err := svc.RegisterAdmin(ctx, "", "pw")
	require.True(t, apperrors.IsCode(err, "INVALID_ARGUMENT"))

	_, err = svc.RegisterAdmin(ctx, "a@lodger.com", "pw")
	require.NoError(t, err)
	_, err = svc.RegisterAdmin(ctx, "a@lodger.com", "other")
	require.True(t, apperrors.IsCode(err, "CONFLICT"))
}
