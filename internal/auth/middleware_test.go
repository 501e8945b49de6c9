package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// missingSeatRepo returns the sentinel wrapped, the way a pgx scan surfaces it.
type missingSeatRepo struct {
	repository.AdminSeatRepository
}

func (missingSeatRepo) GetByIdentity(context.Context, string) (*domain.AdminSeat, error) {
	return nil, fmt.Errorf("scan seat: %w", pgx.ErrNoRows)
}

func newMiddlewareApp(seats repository.AdminSeatRepository, tokens *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	mw := NewAuthMiddleware(tokens, seats)
	app.Get("/guarded", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"email": principal.Seat.Email})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	app := newMiddlewareApp(repository.NewInMemoryAdminSeatRepository(), tokens)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareLoadsSeatForValidToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	seats := repository.NewInMemoryAdminSeatRepository()
	_, err := seats.CreateIfBelowCap(context.Background(), &domain.AdminSeat{
		IdentityID: "id-1",
		Email:      "admin@lodger.com",
	}, 2)
	require.NoError(t, err)
	app := newMiddlewareApp(seats, tokens)

	token, _, err := tokens.GenerateToken("id-1", "admin@lodger.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsRevokedSeat(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	app := newMiddlewareApp(missingSeatRepo{}, tokens)

	token, _, err := tokens.GenerateToken("id-gone", "gone@lodger.com")
	require.NoError(t, err)

	// The store wraps the no-rows sentinel; a valid token without a seat is
	// still a 401, not a 500.
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
