package dto

import (
	"time"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// AdminLoginRequest payload for admin sign-in.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminRegisterRequest payload for admin signup.
type AdminRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminSessionResponse returns the session token and the access decision.
type AdminSessionResponse struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expires_at"`
	Email     string                `json:"email"`
	Decision  domain.AccessDecision `json:"decision"`
}

// AdminSeatResponse describes a roster entry.
type AdminSeatResponse struct {
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}
