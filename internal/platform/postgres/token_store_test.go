package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

func TestTokenStoreCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("inserts row with expiry", func(t *testing.T) {
		db, mock := newMockDB(t)
		token, err := domain.NewAuthToken(uuid.New(), time.Hour)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO auth_tokens`).
			WithArgs(token.ID, token.UserID, token.CreatedAt,
				sql.NullTime{Time: token.ExpiresAt, Valid: true}).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = NewPostgresTokenStore(db, nil).Create(ctx, token)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores NULL expiry for tokens without lifetime", func(t *testing.T) {
		db, mock := newMockDB(t)
		token, err := domain.NewAuthToken(uuid.New(), 0)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO auth_tokens`).
			WithArgs(token.ID, token.UserID, token.CreatedAt, sql.NullTime{}).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = NewPostgresTokenStore(db, nil).Create(ctx, token)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user maps to ErrInvalidEntity", func(t *testing.T) {
		db, mock := newMockDB(t)
		token, err := domain.NewAuthToken(uuid.New(), time.Hour)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO auth_tokens`).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err = NewPostgresTokenStore(db, nil).Create(ctx, token)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestTokenStoreGetByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("found with NULL expiry", func(t *testing.T) {
		db, mock := newMockDB(t)
		tokenID := uuid.New()
		userID := uuid.New()
		created := time.Now().UTC()

		mock.ExpectQuery(`FROM auth_tokens\s+WHERE id`).
			WithArgs(tokenID).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "user_id", "created_at", "expires_at"}).
				AddRow(tokenID.String(), userID.String(), created, nil))

		got, err := NewPostgresTokenStore(db, nil).GetByID(ctx, tokenID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.True(t, got.ExpiresAt.IsZero())
		assert.False(t, got.Expired(time.Now().Add(100*365*24*time.Hour)))
	})

	t.Run("revoked token is not found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`FROM auth_tokens\s+WHERE id`).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "user_id", "created_at", "expires_at"}))

		_, err := NewPostgresTokenStore(db, nil).GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})
}

func TestTokenStoreDeleteByUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reports revoked count", func(t *testing.T) {
		db, mock := newMockDB(t)
		userID := uuid.New()

		mock.ExpectExec(`DELETE FROM auth_tokens WHERE user_id`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 3))

		revoked, err := NewPostgresTokenStore(db, nil).DeleteByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), revoked)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no sessions is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`DELETE FROM auth_tokens WHERE user_id`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		revoked, err := NewPostgresTokenStore(db, nil).DeleteByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, revoked)
	})
}
