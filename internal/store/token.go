package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
)

// TokenStore defines the interface for issued-token tracking.
// A bearer token is considered live only while its record exists.
type TokenStore interface {
	// Create records a newly issued token.
	Create(ctx context.Context, token *domain.AuthToken) error

	// GetByID retrieves a token record by its ID (the token's jti claim).
	// Returns ErrTokenNotFound if the token has been revoked or never existed.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)

	// DeleteByUser revokes all tokens belonging to the given user and
	// returns how many were removed. Logout revokes every session at once.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
