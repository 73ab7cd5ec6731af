package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gabrielgomes/localguide-api/internal/api"
	apiMiddleware "github.com/gabrielgomes/localguide-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Listing endpoints are public; every write and the
// profile/logout endpoints require a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.tokenService, app.passwords)
	cityHandler := api.NewCityHandler(app.cityStore)
	neighborhoodHandler := api.NewNeighborhoodHandler(app.neighborhoodStore, app.cityStore)
	categoryHandler := api.NewCategoryHandler(app.categoryStore)
	linkHandler := api.NewLinkHandler(app.linkStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Public listings
		r.Get("/cidades", cityHandler.List)
		r.Get("/bairros", neighborhoodHandler.List)
		r.Get("/categorias", categoryHandler.List)
		r.Get("/links", linkHandler.List)
		r.Get("/links/{id}", linkHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/profile", authHandler.Profile)
			r.Post("/logout", authHandler.Logout)

			r.Post("/cidades", cityHandler.Create)
			r.Post("/bairros", neighborhoodHandler.Create)
			r.Post("/categorias", categoryHandler.Create)
			r.Put("/categorias/{id}", categoryHandler.Update)

			r.Post("/links", linkHandler.Create)
			r.Put("/links/{id}", linkHandler.Update)
			r.Delete("/links/{id}", linkHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
