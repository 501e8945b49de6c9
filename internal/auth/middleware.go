package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the admin seat holder bound to the current request. Session
// identity travels with the request context, never in package state.
type Principal struct {
	Seat *domain.AdminSeat
}

// AuthMiddleware validates bearer tokens and loads the seat behind them.
type AuthMiddleware struct {
	tokens *TokenManager
	seats  repository.AdminSeatRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, seats repository.AdminSeatRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, seats: seats}
}

// Handle enforces authentication for protected routes. A valid token whose
// seat has since disappeared from the roster is rejected.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	seat, err := m.seats.GetByIdentity(c.Context(), claims.IdentityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("admin seat revoked")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Seat: seat})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated admin.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
