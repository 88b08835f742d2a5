package session

import (
	"context"
	"sync"

	"jobconnect-client/internal/domain"
)

// MemoryStore is the CredentialStore used by tests and by ephemeral
// (no-data-dir) runs. Nothing survives the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	user  *domain.UserSummary
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Load(context.Context) (Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Credentials{Token: m.token, User: m.user}, nil
}

func (m *MemoryStore) Save(_ context.Context, c Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = c.Token
	m.user = c.User
	return nil
}

func (m *MemoryStore) SaveUser(_ context.Context, u *domain.UserSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}
