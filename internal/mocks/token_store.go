package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing
type MockTokenStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, token *domain.AuthToken) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)
	DeleteByUserFn func(ctx context.Context, userID uuid.UUID) (int64, error)

	// Data for default implementation, keyed by token ID
	Tokens      map[uuid.UUID]*domain.AuthToken
	CreateError error
}

// NewMockTokenStore creates a new mock store with initialized defaults
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		Tokens: make(map[uuid.UUID]*domain.AuthToken),
	}
}

// Create implements the TokenStore interface
func (m *MockTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tokens[token.ID] = token
	return nil
}

// GetByID implements the TokenStore interface
func (m *MockTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	token, exists := m.Tokens[id]
	if !exists {
		return nil, store.ErrTokenNotFound
	}
	return token, nil
}

// DeleteByUser implements the TokenStore interface
func (m *MockTokenStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.DeleteByUserFn != nil {
		return m.DeleteByUserFn(ctx, userID)
	}

	var deleted int64
	for id, token := range m.Tokens {
		if token.UserID == userID {
			delete(m.Tokens, id)
			deleted++
		}
	}
	return deleted, nil
}

// Verify interface compliance
var _ store.TokenStore = (*MockTokenStore)(nil)
