package domain

import "time"

// AdminSeat is a granted administrator privilege bound to one identity.
// The set of all seats is capped globally; see service.AccessService.
type AdminSeat struct {
	IdentityID string
	Email      string
	CreatedAt  time.Time
}

// AccessDecision is the outcome of resolving admin access for an identity.
type AccessDecision string

const (
	// AccessAuthorized means the identity already holds a seat.
	AccessAuthorized AccessDecision = "AUTHORIZED"
	// AccessRegistered means a new seat was granted during this resolution.
	AccessRegistered AccessDecision = "REGISTERED"
	// AccessDenied means the roster is full and no seat was granted.
	AccessDenied AccessDecision = "DENIED"
)
