package service

import (
	"context"
	"errors"
	"time"

	"github.com/lodger-platform/admin-service/internal/auth"
	"github.com/lodger-platform/admin-service/internal/config"
	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/identity"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// seatDeniedMessage mirrors the console's access-denied modal.
const seatDeniedMessage = "Administrator limit reached. Please contact system owner for recruitment."

// AdminSession is the result of a successful login or registration.
type AdminSession struct {
	IdentityID string
	Email      string
	Decision   domain.AccessDecision
	Token      string
	ExpiresAt  time.Time
}

// AuthService coordinates identity checks and seat resolution for admins.
type AuthService struct {
	provider identity.Provider
	access   *AccessService
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, provider identity.Provider, access *AccessService) *AuthService {
	return &AuthService{
		provider: provider,
		access:   access,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// LoginAdmin authenticates against the identity provider and resolves seat
// access. A Denied decision returns Forbidden and no session token; the
// caller holds no session afterward, the equivalent of being signed out.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*AdminSession, error) {
	ident, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) || errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.NewExternalFailure("identity provider", err)
	}
	return s.establishSession(ctx, ident)
}

// RegisterAdmin creates the identity then runs the same seat resolution, so
// signup auto-registers admins until the cap is reached.
func (s *AuthService) RegisterAdmin(ctx context.Context, email, password string) (*AdminSession, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewInvalidArgument("email and password required", nil)
	}
	ident, err := s.provider.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, apperrors.NewExternalFailure("identity provider", err)
	}
	return s.establishSession(ctx, ident)
}

func (s *AuthService) establishSession(ctx context.Context, ident *identity.Identity) (*AdminSession, error) {
	decision, err := s.access.ResolveAdminAccess(ctx, ident.ID, ident.Email)
	if err != nil {
		return nil, err
	}
	if decision == domain.AccessDenied {
		return nil, apperrors.NewForbidden(seatDeniedMessage)
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(ident.ID, ident.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AdminSession{
		IdentityID: ident.ID,
		Email:      ident.Email,
		Decision:   decision,
		Token:      token,
		ExpiresAt:  expiresAt,
	}, nil
}
