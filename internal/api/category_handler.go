package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/api/shared"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// CategoryHandler handles category (categoria) API requests.
type CategoryHandler struct {
	categoryStore store.CategoryStore
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(categoryStore store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{categoryStore: categoryStore}
}

// List handles GET /api/categorias. Public, plain array response.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// Create handles POST /api/categorias.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			map[string][]string{"body": {"invalid request body"}})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			shared.ValidationMessages(err))
		return
	}

	category, err := domain.NewCategory(req.Nome)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			map[string][]string{"nome": {err.Error()}})
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// Update handles PUT /api/categorias/{id}.
// Unknown IDs answer 404 with the bare message shape this endpoint has
// always used.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithJSON(w, r, http.StatusNotFound,
			map[string]string{"message": "Categoria não encontrada"})
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			map[string][]string{"body": {"invalid request body"}})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			shared.ValidationMessages(err))
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithJSON(w, r, http.StatusNotFound,
				map[string]string{"message": "Categoria não encontrada"})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	category.Nome = req.Nome
	category.UpdatedAt = time.Now().UTC()

	if err := h.categoryStore.Update(r.Context(), category); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithJSON(w, r, http.StatusNotFound,
				map[string]string{"message": "Categoria não encontrada"})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}
