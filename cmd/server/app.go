package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gabrielgomes/localguide-api/internal/config"
	"github.com/gabrielgomes/localguide-api/internal/platform/postgres"
	"github.com/gabrielgomes/localguide-api/internal/service/auth"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// application holds the assembled dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore         store.UserStore
	tokenStore        store.TokenStore
	cityStore         store.CityStore
	neighborhoodStore store.NeighborhoodStore
	categoryStore     store.CategoryStore
	linkStore         store.LinkStore

	tokenService auth.TokenService
	passwords    *auth.BcryptHasher
}

// newApplication connects to the database and wires all stores, services
// and handlers together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,

		userStore:         postgres.NewPostgresUserStore(db, logger),
		tokenStore:        postgres.NewPostgresTokenStore(db, logger),
		cityStore:         postgres.NewPostgresCityStore(db, logger),
		neighborhoodStore: postgres.NewPostgresNeighborhoodStore(db, logger),
		categoryStore:     postgres.NewPostgresCategoryStore(db, logger),
		linkStore:         postgres.NewPostgresLinkStore(db, logger),

		passwords: auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}

	app.tokenService, err = auth.NewTokenService(cfg.Auth, app.tokenStore)
	if err != nil {
		return nil, fmt.Errorf("failed to set up token service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
