package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/platform/logger"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// linkColumns is the column list shared by all link queries.
var linkColumns = []string{
	"id", "url", "descricao", "categoria_id", "cidade_id", "bairro_id",
	"created_at", "updated_at",
}

// PostgresLinkStore implements the store.LinkStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLinkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLinkStore creates a new PostgreSQL implementation of the
// LinkStore interface.
func NewPostgresLinkStore(db store.DBTX, logger *slog.Logger) *PostgresLinkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLinkStore{
		db:     db,
		logger: logger.With(slog.String("component", "link_store")),
	}
}

// Ensure PostgresLinkStore implements store.LinkStore interface
var _ store.LinkStore = (*PostgresLinkStore)(nil)

// Create implements store.LinkStore.Create
// Returns store.ErrInvalidEntity if any referenced row does not exist;
// referential integrity is enforced by the schema's foreign keys.
func (s *PostgresLinkStore) Create(ctx context.Context, link *domain.Link) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := link.Validate(); err != nil {
		log.Warn("link validation failed during create",
			slog.String("error", err.Error()),
			slog.String("link_id", link.ID.String()))
		return err
	}

	query := `
		INSERT INTO links (id, url, descricao, categoria_id, cidade_id, bairro_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		link.ID,
		link.URL,
		link.Descricao,
		link.CategoriaID,
		link.CidadeID,
		link.BairroID,
		link.CreatedAt,
		link.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during link creation",
				slog.String("link_id", link.ID.String()))
			return fmt.Errorf("%w: referenced row not found", store.ErrInvalidEntity)
		}

		log.Error("failed to create link",
			slog.String("error", err.Error()),
			slog.String("link_id", link.ID.String()))
		return fmt.Errorf("failed to create link: %w", err)
	}

	log.Info("link created successfully",
		slog.String("link_id", link.ID.String()))
	return nil
}

// List implements store.LinkStore.List
// Filters are exact-match and AND-combined; the query is assembled with
// squirrel so only the supplied filters appear in the WHERE clause.
func (s *PostgresLinkStore) List(ctx context.Context, filter domain.LinkFilter) ([]*domain.Link, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := squirrel.Select(linkColumns...).
		From("links").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.CategoriaID != nil {
		builder = builder.Where(squirrel.Eq{"categoria_id": *filter.CategoriaID})
	}
	if filter.CidadeID != nil {
		builder = builder.Where(squirrel.Eq{"cidade_id": *filter.CidadeID})
	}
	if filter.BairroID != nil {
		builder = builder.Where(squirrel.Eq{"bairro_id": *filter.BairroID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build link query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list links",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer func() { _ = rows.Close() }()

	links := []*domain.Link{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			log.Error("failed to scan link row",
				slog.String("error", err.Error()))
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate link rows: %w", err)
	}

	return links, nil
}

// GetByID implements store.LinkStore.GetByID
// Returns store.ErrLinkNotFound if the link does not exist.
func (s *PostgresLinkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, url, descricao, categoria_id, cidade_id, bairro_id, created_at, updated_at
		FROM links
		WHERE id = $1
	`

	var link domain.Link
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&link.ID,
		&link.URL,
		&link.Descricao,
		&link.CategoriaID,
		&link.CidadeID,
		&link.BairroID,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLinkNotFound
		}
		log.Error("failed to get link",
			slog.String("error", err.Error()),
			slog.String("link_id", id.String()))
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return &link, nil
}

// Update implements store.LinkStore.Update
// Full replace of all mutable fields.
// Returns store.ErrLinkNotFound if the link does not exist.
func (s *PostgresLinkStore) Update(ctx context.Context, link *domain.Link) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := link.Validate(); err != nil {
		log.Warn("link validation failed during update",
			slog.String("error", err.Error()),
			slog.String("link_id", link.ID.String()))
		return err
	}

	query := `
		UPDATE links
		SET url = $1, descricao = $2, categoria_id = $3, cidade_id = $4, bairro_id = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		link.URL,
		link.Descricao,
		link.CategoriaID,
		link.CidadeID,
		link.BairroID,
		link.UpdatedAt,
		link.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during link update",
				slog.String("link_id", link.ID.String()))
			return fmt.Errorf("%w: referenced row not found", store.ErrInvalidEntity)
		}

		log.Error("failed to update link",
			slog.String("error", err.Error()),
			slog.String("link_id", link.ID.String()))
		return fmt.Errorf("failed to update link: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrLinkNotFound
	}

	log.Info("link updated successfully",
		slog.String("link_id", link.ID.String()))
	return nil
}

// Delete implements store.LinkStore.Delete
// Returns store.ErrLinkNotFound if the link does not exist.
func (s *PostgresLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM links WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete link",
			slog.String("error", err.Error()),
			slog.String("link_id", id.String()))
		return fmt.Errorf("failed to delete link: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrLinkNotFound
	}

	log.Info("link deleted successfully",
		slog.String("link_id", id.String()))
	return nil
}

// scanLink scans the shared link column set from a row iterator.
func scanLink(rows *sql.Rows) (*domain.Link, error) {
	var link domain.Link
	err := rows.Scan(
		&link.ID,
		&link.URL,
		&link.Descricao,
		&link.CategoriaID,
		&link.CidadeID,
		&link.BairroID,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan link row: %w", err)
	}
	return &link, nil
}
