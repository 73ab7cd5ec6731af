package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuthToken validation errors.
var (
	ErrEmptyTokenID   = errors.New("token ID cannot be empty")
	ErrEmptyTokenUser = errors.New("token user ID cannot be empty")
)

// AuthToken records an issued bearer token. The ID matches the jti claim
// of the signed token; a token is live only while its row exists.
// A user may hold several live tokens at once (one per login).
type AuthToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is zero when tokens are issued without an expiry.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// NewAuthToken creates a token record for the given user.
// A zero lifetime produces a token with no expiry.
func NewAuthToken(userID uuid.UUID, lifetime time.Duration) (*AuthToken, error) {
	now := time.Now().UTC()
	token := &AuthToken{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
	}
	if lifetime > 0 {
		token.ExpiresAt = now.Add(lifetime)
	}

	if err := token.Validate(); err != nil {
		return nil, err
	}

	return token, nil
}

// Validate checks if the AuthToken has valid data.
func (t *AuthToken) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTokenID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTokenUser
	}
	return nil
}

// Expired reports whether the token has an expiry that has passed.
func (t *AuthToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}
