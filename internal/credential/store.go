package credential

import (
	"context"
	"sync"
)

// Store persists a single opaque bearer credential under a fixed key.
// Load returns "" when nothing is stored. Writers are the login and logout
// flows only; the bootstrap controller and the resource layer just read.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Memory keeps the credential for the lifetime of the process. It is the
// default when no database is configured and the test double everywhere.
type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *Memory) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Provider adapts a Store into the per-call lookup used by the resource
// layer. Read failures collapse to "no credential"; the request then goes
// out unauthenticated and the upstream rejects it.
func Provider(s Store) func(ctx context.Context) string {
	return func(ctx context.Context) string {
		tok, err := s.Load(ctx)
		if err != nil {
			return ""
		}
		return tok
	}
}
