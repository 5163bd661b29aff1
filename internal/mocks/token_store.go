package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/taskpost-api/internal/store"
)

// MockTokenStore implements store.TokenStore in memory
type MockTokenStore struct {
	RevokeFn    func(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevokedFn func(ctx context.Context, tokenID string) (bool, error)

	Err error

	mu      sync.Mutex
	revoked map[string]time.Time
}

var _ store.TokenStore = (*MockTokenStore)(nil)

// NewMockTokenStore creates an empty token store
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{revoked: make(map[string]time.Time)}
}

// Revoke implements the store.TokenStore interface
func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, tokenID, expiresAt)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = expiresAt
	return nil
}

// IsRevoked implements the store.TokenStore interface
func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsRevokedFn != nil {
		return m.IsRevokedFn(ctx, tokenID)
	}
	if m.Err != nil {
		return false, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}
