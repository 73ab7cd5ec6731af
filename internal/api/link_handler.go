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

// linkValidationMessage is the message the link endpoints have always used
// for validation failures.
const linkValidationMessage = "Erro de Validação"

// LinkHandler handles link API requests.
type LinkHandler struct {
	linkStore store.LinkStore
}

// NewLinkHandler creates a new LinkHandler with the given dependencies.
func NewLinkHandler(linkStore store.LinkStore) *LinkHandler {
	return &LinkHandler{linkStore: linkStore}
}

// List handles GET /api/links. Public. Accepts optional exact-match query
// filters categoria_id, cidade_id and bairro_id, AND-combined.
func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, erros := parseLinkFilter(r)
	if len(erros) > 0 {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage, erros)
		return
	}

	links, err := h.linkStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, links)
}

// Get handles GET /api/links/{id}.
func (h *LinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
		return
	}

	link, err := h.linkStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{
		Status: "success",
		Data:   link,
	})
}

// Create handles POST /api/links.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req LinkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage,
			map[string][]string{"body": {"invalid request body"}})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage,
			shared.ValidationMessages(err))
		return
	}

	link, err := domain.NewLink(req.URL, req.Descricao, req.CategoriaID, req.CidadeID, req.BairroID)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage,
			map[string][]string{"url": {err.Error()}})
		return
	}

	if err := h.linkStore.Create(r.Context(), link); err != nil {
		// Existence of the referenced rows is enforced by the schema's
		// foreign keys rather than a pre-check.
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"categoria_id, cidade_id and bairro_id must reference existing records")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.StatusResponse{
		Status: "success",
		Data:   link,
	})
}

// Update handles PUT /api/links/{id}. Full replace: every field is
// re-validated exactly as on create, and a failed update leaves the stored
// row unchanged.
func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
		return
	}

	link, err := h.linkStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	var req LinkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage,
			map[string][]string{"body": {"invalid request body"}})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage,
			shared.ValidationMessages(err))
		return
	}

	link.URL = req.URL
	link.Descricao = req.Descricao
	link.CategoriaID = req.CategoriaID
	link.CidadeID = req.CidadeID
	link.BairroID = req.BairroID
	link.UpdatedAt = time.Now().UTC()

	// Domain validation is stricter than the request tags (an opaque URL
	// without a host passes `url` but fails here); same 400 shape as create.
	if err := link.Validate(); err != nil {
		shared.RespondWithValidationErrors(w, r, http.StatusBadRequest, linkValidationMessage,
			map[string][]string{"url": {err.Error()}})
		return
	}

	if err := h.linkStore.Update(r.Context(), link); err != nil {
		switch {
		case errors.Is(err, store.ErrLinkNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
		case errors.Is(err, store.ErrInvalidEntity):
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"categoria_id, cidade_id and bairro_id must reference existing records")
		default:
			shared.RespondWithInternalError(w, r, err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{
		Status: "success",
		Data:   link,
	})
}

// Delete handles DELETE /api/links/{id}.
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
		return
	}

	if err := h.linkStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Link not found")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseLinkFilter reads the optional link list filters from the query
// string. Malformed IDs are reported per field.
func parseLinkFilter(r *http.Request) (domain.LinkFilter, map[string][]string) {
	var filter domain.LinkFilter
	erros := map[string][]string{}

	for name, target := range map[string]**uuid.UUID{
		"categoria_id": &filter.CategoriaID,
		"cidade_id":    &filter.CidadeID,
		"bairro_id":    &filter.BairroID,
	} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			erros[name] = append(erros[name], "The "+name+" field must be a valid ID")
			continue
		}
		*target = &id
	}

	return filter, erros
}
