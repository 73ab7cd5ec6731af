package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/platform/logger"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// PostgresCityStore implements the store.CityStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCityStore creates a new PostgreSQL implementation of the
// CityStore interface.
func NewPostgresCityStore(db store.DBTX, logger *slog.Logger) *PostgresCityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCityStore{
		db:     db,
		logger: logger.With(slog.String("component", "city_store")),
	}
}

// Ensure PostgresCityStore implements store.CityStore interface
var _ store.CityStore = (*PostgresCityStore)(nil)

// Create implements store.CityStore.Create
func (s *PostgresCityStore) Create(ctx context.Context, city *domain.City) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := city.Validate(); err != nil {
		log.Warn("city validation failed during create",
			slog.String("error", err.Error()),
			slog.String("city_id", city.ID.String()))
		return err
	}

	query := `
		INSERT INTO cidades (id, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, city.ID, city.Nome, city.CreatedAt, city.UpdatedAt)
	if err != nil {
		log.Error("failed to create city",
			slog.String("error", err.Error()),
			slog.String("city_id", city.ID.String()))
		return fmt.Errorf("failed to create city: %w", err)
	}

	log.Info("city created successfully",
		slog.String("city_id", city.ID.String()))
	return nil
}

// List implements store.CityStore.List
func (s *PostgresCityStore) List(ctx context.Context) ([]*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, nome, created_at, updated_at
		FROM cidades
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list cities",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cities := []*domain.City{}
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Nome, &city.CreatedAt, &city.UpdatedAt); err != nil {
			log.Error("failed to scan city row",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, &city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate city rows: %w", err)
	}

	return cities, nil
}

// Exists implements store.CityStore.Exists
func (s *PostgresCityStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM cidades WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		log.Error("failed to check city existence",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return false, fmt.Errorf("failed to check city existence: %w", err)
	}

	return exists, nil
}
