package api

import (
	"errors"
	"net/http"

	"github.com/gabrielgomes/localguide-api/internal/api/shared"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// NeighborhoodHandler handles neighborhood (bairro) API requests.
type NeighborhoodHandler struct {
	neighborhoodStore store.NeighborhoodStore
	cityStore         store.CityStore
}

// NewNeighborhoodHandler creates a new NeighborhoodHandler with the given
// dependencies. The city store backs the cidade_id existence check.
func NewNeighborhoodHandler(
	neighborhoodStore store.NeighborhoodStore,
	cityStore store.CityStore,
) *NeighborhoodHandler {
	return &NeighborhoodHandler{
		neighborhoodStore: neighborhoodStore,
		cityStore:         cityStore,
	}
}

// List handles GET /api/bairros. Public; each neighborhood embeds its city.
func (h *NeighborhoodHandler) List(w http.ResponseWriter, r *http.Request) {
	neighborhoods, err := h.neighborhoodStore.List(r.Context())
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, neighborhoods)
}

// Create handles POST /api/bairros.
// The referenced city must exist; the check runs at the validation layer
// and the schema's foreign key backstops any race with a city deletion.
func (h *NeighborhoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNeighborhoodRequest
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

	exists, err := h.cityStore.Exists(r.Context(), req.CidadeID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if !exists {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			map[string][]string{"cidade_id": {"The selected cidade_id is invalid"}})
		return
	}

	neighborhood, err := domain.NewNeighborhood(req.Nome, req.CidadeID)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
			map[string][]string{"nome": {err.Error()}})
		return
	}

	if err := h.neighborhoodStore.Create(r.Context(), neighborhood); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithValidationErrors(w, r, http.StatusUnprocessableEntity, "Validation Errors",
				map[string][]string{"cidade_id": {"The selected cidade_id is invalid"}})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, neighborhood)
}
