package api

import (
	"net/http"

	"github.com/gabrielgomes/localguide-api/internal/api/shared"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// CityHandler handles city (cidade) API requests.
type CityHandler struct {
	cityStore store.CityStore
}

// NewCityHandler creates a new CityHandler with the given dependencies.
func NewCityHandler(cityStore store.CityStore) *CityHandler {
	return &CityHandler{cityStore: cityStore}
}

// List handles GET /api/cidades. Public, no filters, plain array response.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cityStore.List(r.Context())
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cities)
}

// Create handles POST /api/cidades.
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCityRequest
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

	city, err := domain.NewCity(req.Nome)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			map[string][]string{"nome": {err.Error()}})
		return
	}

	if err := h.cityStore.Create(r.Context(), city); err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, city)
}
