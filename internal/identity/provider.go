// Package identity abstracts the external identity provider holding login
// credentials for every account on the platform, admins included.
package identity

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no identity matches the lookup.
var ErrNotFound = errors.New("identity not found")

// ErrInvalidCredentials is returned when the password check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// Identity is an authenticated principal known to the provider.
type Identity struct {
	ID    string
	Email string
}

// Provider is the contract against the external identity service.
// Every call may fail independently of any prior read; callers must not
// assume transactional behavior across Provider and the document store.
type Provider interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
	Register(ctx context.Context, email, password string) (*Identity, error)
	// Delete removes the identity. Deleting an identity that is already
	// absent succeeds, so account cleanup can proceed past it.
	Delete(ctx context.Context, id string) error
}
