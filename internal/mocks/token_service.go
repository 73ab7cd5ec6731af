package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// Function fields for customizable behavior
	IssueTokenFn   func(ctx context.Context, userID uuid.UUID) (string, error)
	AuthenticateFn func(ctx context.Context, tokenString string) (uuid.UUID, error)
	RevokeAllFn    func(ctx context.Context, userID uuid.UUID) (int64, error)

	// Data for default implementation
	Token        string
	UserID       uuid.UUID
	IssueError   error
	AuthError    error
	RevokedCount int64
}

// NewMockTokenService creates a new mock service with a fixed token value
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{
		Token: "test-token",
	}
}

// IssueToken implements the TokenService interface
func (m *MockTokenService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, userID)
	}

	if m.IssueError != nil {
		return "", m.IssueError
	}

	m.UserID = userID
	return m.Token, nil
}

// Authenticate implements the TokenService interface
func (m *MockTokenService) Authenticate(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, tokenString)
	}

	if m.AuthError != nil {
		return uuid.Nil, m.AuthError
	}

	if tokenString != m.Token {
		return uuid.Nil, auth.ErrInvalidToken
	}
	return m.UserID, nil
}

// RevokeAll implements the TokenService interface
func (m *MockTokenService) RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.RevokeAllFn != nil {
		return m.RevokeAllFn(ctx, userID)
	}
	return m.RevokedCount, nil
}

// Verify interface compliance
var _ auth.TokenService = (*MockTokenService)(nil)
