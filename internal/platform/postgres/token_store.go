package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/platform/logger"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the
// TokenStore interface.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Create implements store.TokenStore.Create
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := token.Validate(); err != nil {
		log.Warn("token validation failed during create",
			slog.String("error", err.Error()),
			slog.String("token_id", token.ID.String()))
		return err
	}

	query := `
		INSERT INTO auth_tokens (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	// Store NULL rather than a zero time when the token never expires.
	var expiresAt sql.NullTime
	if !token.ExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: token.ExpiresAt, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query, token.ID, token.UserID, token.CreatedAt, expiresAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during token creation",
				slog.String("user_id", token.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, token.UserID)
		}

		log.Error("failed to create auth token",
			slog.String("error", err.Error()),
			slog.String("token_id", token.ID.String()),
			slog.String("user_id", token.UserID.String()))
		return fmt.Errorf("failed to create auth token: %w", err)
	}

	log.Debug("auth token created",
		slog.String("token_id", token.ID.String()),
		slog.String("user_id", token.UserID.String()))
	return nil
}

// GetByID implements store.TokenStore.GetByID
// Returns store.ErrTokenNotFound if the token does not exist (revoked or
// never issued).
func (s *PostgresTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, created_at, expires_at
		FROM auth_tokens
		WHERE id = $1
	`

	var token domain.AuthToken
	var expiresAt sql.NullTime
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.CreatedAt,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTokenNotFound
		}
		log.Error("failed to get auth token",
			slog.String("error", err.Error()),
			slog.String("token_id", id.String()))
		return nil, fmt.Errorf("failed to get auth token: %w", err)
	}
	if expiresAt.Valid {
		token.ExpiresAt = expiresAt.Time.UTC()
	}

	return &token, nil
}

// DeleteByUser implements store.TokenStore.DeleteByUser
// It removes every token the user holds, revoking all sessions at once.
func (s *PostgresTokenStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM auth_tokens WHERE user_id = $1`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to delete auth tokens",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, fmt.Errorf("failed to delete auth tokens: %w", err)
	}

	revoked, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Info("auth tokens revoked",
		slog.String("user_id", userID.String()),
		slog.Int64("count", revoked))
	return revoked, nil
}
