package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryProvider is the test double for the external identity service.
type InMemoryProvider struct {
	mu         sync.Mutex
	byEmail    map[string]record
	deleteErrs map[string]error
}

type record struct {
	id       string
	password string
}

// NewInMemoryProvider returns an empty provider.
func NewInMemoryProvider() *InMemoryProvider {
	return &InMemoryProvider{
		byEmail:    make(map[string]record),
		deleteErrs: make(map[string]error),
	}
}

func (p *InMemoryProvider) Authenticate(_ context.Context, email, password string) (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	if rec.password != password {
		return nil, ErrInvalidCredentials
	}
	return &Identity{ID: rec.id, Email: email}, nil
}

func (p *InMemoryProvider) Register(_ context.Context, email, password string) (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.byEmail[email]; exists {
		return nil, ErrEmailTaken
	}
	rec := record{id: uuid.NewString(), password: password}
	p.byEmail[email] = rec
	return &Identity{ID: rec.id, Email: email}, nil
}

func (p *InMemoryProvider) Delete(_ context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.deleteErrs[id]; ok {
		return err
	}
	for email, rec := range p.byEmail {
		if rec.id == id {
			delete(p.byEmail, email)
			return nil
		}
	}
	// Absent identities delete cleanly.
	return nil
}

// FailDelete forces Delete(id) to return err, for failure-path tests.
func (p *InMemoryProvider) FailDelete(id string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleteErrs[id] = err
}

// Has reports whether an identity with the given id still exists.
func (p *InMemoryProvider) Has(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, rec := range p.byEmail {
		if rec.id == id {
			return true
		}
	}
	return false
}
