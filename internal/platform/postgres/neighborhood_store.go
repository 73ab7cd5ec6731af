package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/platform/logger"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// PostgresNeighborhoodStore implements the store.NeighborhoodStore interface
// using a PostgreSQL database as the storage backend.
type PostgresNeighborhoodStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresNeighborhoodStore creates a new PostgreSQL implementation of
// the NeighborhoodStore interface.
func NewPostgresNeighborhoodStore(db store.DBTX, logger *slog.Logger) *PostgresNeighborhoodStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresNeighborhoodStore{
		db:     db,
		logger: logger.With(slog.String("component", "neighborhood_store")),
	}
}

// Ensure PostgresNeighborhoodStore implements store.NeighborhoodStore interface
var _ store.NeighborhoodStore = (*PostgresNeighborhoodStore)(nil)

// Create implements store.NeighborhoodStore.Create
// Returns store.ErrInvalidEntity if the referenced city does not exist.
func (s *PostgresNeighborhoodStore) Create(ctx context.Context, neighborhood *domain.Neighborhood) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := neighborhood.Validate(); err != nil {
		log.Warn("neighborhood validation failed during create",
			slog.String("error", err.Error()),
			slog.String("neighborhood_id", neighborhood.ID.String()))
		return err
	}

	query := `
		INSERT INTO bairros (id, nome, cidade_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		neighborhood.ID,
		neighborhood.Nome,
		neighborhood.CidadeID,
		neighborhood.CreatedAt,
		neighborhood.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during neighborhood creation",
				slog.String("neighborhood_id", neighborhood.ID.String()),
				slog.String("cidade_id", neighborhood.CidadeID.String()))
			return fmt.Errorf("%w: city with ID %s not found",
				store.ErrInvalidEntity, neighborhood.CidadeID)
		}

		log.Error("failed to create neighborhood",
			slog.String("error", err.Error()),
			slog.String("neighborhood_id", neighborhood.ID.String()))
		return fmt.Errorf("failed to create neighborhood: %w", err)
	}

	log.Info("neighborhood created successfully",
		slog.String("neighborhood_id", neighborhood.ID.String()),
		slog.String("cidade_id", neighborhood.CidadeID.String()))
	return nil
}

// List implements store.NeighborhoodStore.List
// Each neighborhood is returned with its parent city embedded, matching
// the public listing contract.
func (s *PostgresNeighborhoodStore) List(ctx context.Context) ([]*domain.Neighborhood, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT b.id, b.nome, b.cidade_id, b.created_at, b.updated_at,
		       c.id, c.nome, c.created_at, c.updated_at
		FROM bairros b
		JOIN cidades c ON c.id = b.cidade_id
		ORDER BY b.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list neighborhoods",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list neighborhoods: %w", err)
	}
	defer func() { _ = rows.Close() }()

	neighborhoods := []*domain.Neighborhood{}
	for rows.Next() {
		var n domain.Neighborhood
		var city domain.City
		err := rows.Scan(
			&n.ID, &n.Nome, &n.CidadeID, &n.CreatedAt, &n.UpdatedAt,
			&city.ID, &city.Nome, &city.CreatedAt, &city.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan neighborhood row",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan neighborhood row: %w", err)
		}
		n.Cidade = &city
		neighborhoods = append(neighborhoods, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate neighborhood rows: %w", err)
	}

	return neighborhoods, nil
}
