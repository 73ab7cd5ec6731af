package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielgomes/localguide-api/internal/config"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// fakeTokenStore is an in-memory store.TokenStore. The mocks package
// imports this one, so the double lives here instead.
type fakeTokenStore struct {
	tokens    map[uuid.UUID]*domain.AuthToken
	createErr error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[uuid.UUID]*domain.AuthToken)}
}

func (s *fakeTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.tokens[token.ID] = token
	return nil
}

func (s *fakeTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	token, ok := s.tokens[id]
	if !ok {
		return nil, store.ErrTokenNotFound
	}
	return token, nil
}

func (s *fakeTokenStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var deleted int64
	for id, token := range s.tokens {
		if token.UserID == userID {
			delete(s.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}

var _ store.TokenStore = (*fakeTokenStore)(nil)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

func newTestService(t *testing.T, tokens store.TokenStore, lifetimeMinutes int) *hmacTokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: lifetimeMinutes,
	}, tokens)
	require.NoError(t, err)
	return svc.(*hmacTokenService)
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		_, err := NewTokenService(config.AuthConfig{JWTSecret: "too-short"}, newFakeTokenStore())
		assert.Error(t, err)
	})

	t.Run("rejects nil store", func(t *testing.T) {
		_, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret}, nil)
		assert.Error(t, err)
	})
}

func TestIssueAndAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens, 60)
	userID := uuid.New()

	tokenString, err := svc.IssueToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	// Issuance records exactly one live token.
	require.Len(t, tokens.tokens, 1)

	gotUserID, err := svc.Authenticate(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t, newFakeTokenStore(), 60)

	for _, tokenString := range []string{
		"",
		"not-a-jwt",
		"aaaa.bbbb.cccc",
	} {
		_, err := svc.Authenticate(ctx, tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenString)
	}
}

func TestAuthenticateRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	issuer := newTestService(t, newFakeTokenStore(), 60)
	tokenString, err := issuer.IssueToken(ctx, uuid.New())
	require.NoError(t, err)

	verifier, err := NewTokenService(config.AuthConfig{
		JWTSecret:            "a-completely-different-signing-secret!!",
		TokenLifetimeMinutes: 60,
	}, newFakeTokenStore())
	require.NoError(t, err)

	_, err = verifier.Authenticate(ctx, tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateAfterRevocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens, 60)
	userID := uuid.New()

	first, err := svc.IssueToken(ctx, userID)
	require.NoError(t, err)
	second, err := svc.IssueToken(ctx, userID)
	require.NoError(t, err)

	// Both sessions are live until logout.
	_, err = svc.Authenticate(ctx, first)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, second)
	require.NoError(t, err)

	revoked, err := svc.RevokeAll(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), revoked)

	// Logout kills every session, not just the presented token.
	_, err = svc.Authenticate(ctx, first)
	assert.ErrorIs(t, err, ErrRevokedToken)
	_, err = svc.Authenticate(ctx, second)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens, 60)

	tokenString, err := svc.IssueToken(ctx, uuid.New())
	require.NoError(t, err)

	// Jump the service clock past the lifetime plus the allowed skew.
	svc.timeFunc = func() time.Time {
		return time.Now().Add(61*time.Minute + svc.clockSkew)
	}

	_, err = svc.Authenticate(ctx, tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokensWithoutLifetimeNeverExpire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens, 0)
	userID := uuid.New()

	tokenString, err := svc.IssueToken(ctx, userID)
	require.NoError(t, err)

	// A year later the token is still good; only revocation ends it.
	svc.timeFunc = func() time.Time {
		return time.Now().Add(365 * 24 * time.Hour)
	}

	gotUserID, err := svc.Authenticate(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

func TestIssueTokenRecordFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := newFakeTokenStore()
	tokens.createErr = errors.New("pq: connection refused")
	svc := newTestService(t, tokens, 60)

	_, err := svc.IssueToken(ctx, uuid.New())
	assert.Error(t, err)
}
