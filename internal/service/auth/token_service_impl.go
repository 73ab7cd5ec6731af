package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/config"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/platform/logger"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA
// signing with revocation tracked through a store.TokenStore.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration // zero means tokens never expire on their own
	tokens        store.TokenStore
	timeFunc      func() time.Time // injectable for testing
	clockSkew     time.Duration
}

// tokenCustomClaims defines the structure of JWT claims we use.
type tokenCustomClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA signing.
// The token store records issued tokens so logout can revoke them.
func NewTokenService(cfg config.AuthConfig, tokens store.TokenStore) (TokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token store is required")
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		tokens:        tokens,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute, // tolerate minor clock drift during validation
	}, nil
}

// IssueToken creates a signed bearer token and records it for revocation.
func (s *hmacTokenService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	log := logger.FromContext(ctx)

	record, err := domain.NewAuthToken(userID, s.tokenLifetime)
	if err != nil {
		return "", err
	}

	now := s.timeFunc().UTC()
	claims := tokenCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       record.ID.String(),
		},
	}
	if !record.ExpiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(record.ExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign bearer token",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	// Record the token before handing it out; an unrecorded token would be
	// unusable since Authenticate treats missing records as revoked.
	if err := s.tokens.Create(ctx, record); err != nil {
		log.Error("failed to record issued token",
			"error", err,
			"user_id", userID,
			"token_id", record.ID)
		return "", fmt.Errorf("failed to record issued token: %w", err)
	}

	return signedToken, nil
}

// Authenticate validates a bearer token string and returns the owning
// user's ID if the token is live.
func (s *hmacTokenService) Authenticate(ctx context.Context, tokenString string) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	claims, err := s.parseToken(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	// A token is live only while its record exists.
	record, err := s.tokens.GetByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			log.Debug("token authentication failed: token revoked",
				"user_id", claims.UserID,
				"token_id", claims.TokenID)
			return uuid.Nil, ErrRevokedToken
		}
		log.Error("failed to look up token record",
			"error", err,
			"token_id", claims.TokenID)
		return uuid.Nil, fmt.Errorf("failed to look up token record: %w", err)
	}

	if record.Expired(s.timeFunc().UTC()) {
		return uuid.Nil, ErrExpiredToken
	}
	if record.UserID != claims.UserID {
		// A signed uid that disagrees with the record means tampering.
		log.Warn("token user mismatch",
			"token_id", claims.TokenID)
		return uuid.Nil, ErrInvalidToken
	}

	return claims.UserID, nil
}

// RevokeAll deletes every token record the user holds.
func (s *hmacTokenService) RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.tokens.DeleteByUser(ctx, userID)
}

// parseToken verifies the token signature and time claims, and extracts
// the identity claims.
func (s *hmacTokenService) parseToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token validation failed: malformed token", "error", err)
			return nil, ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token validation failed: invalid signature", "error", err)
			return nil, ErrInvalidToken
		default:
			log.Debug("token validation failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*tokenCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil || claims.UserID == uuid.Nil {
		log.Debug("token validation failed: malformed identity claims")
		return nil, ErrInvalidToken
	}

	out := &Claims{
		UserID:  claims.UserID,
		TokenID: tokenID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
