// Package auth provides bearer-token issuance and verification.
//
// Issued tokens are HMAC-SHA256 signed JWTs whose jti claim is recorded in
// the auth_tokens table. A token authenticates a request only while its
// record exists, so deleting the records (logout) revokes every session
// immediately regardless of the token's signed expiry.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for issuing and verifying bearer tokens.
type TokenService interface {
	// IssueToken creates and records a new bearer token for the user.
	// Previously issued tokens remain valid; each login adds a session.
	// Returns the signed token string or an error if issuance fails.
	IssueToken(ctx context.Context, userID uuid.UUID) (string, error)

	// Authenticate verifies a presented token string: its signature, its
	// expiry, and that its record has not been revoked.
	// Returns the owning user's ID, or ErrInvalidToken / ErrExpiredToken /
	// ErrRevokedToken on failure.
	Authenticate(ctx context.Context, tokenString string) (uuid.UUID, error)

	// RevokeAll deletes every token record belonging to the user and
	// returns how many sessions were revoked.
	RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Claims carries the verified identity extracted from a bearer token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// TokenID is the jti claim, matching the auth_tokens record.
	TokenID uuid.UUID

	// IssuedAt and ExpiresAt mirror the registered JWT claims.
	// ExpiresAt is zero for tokens issued without an expiry.
	IssuedAt  time.Time
	ExpiresAt time.Time
}
