package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielgomes/localguide-api/internal/api/shared"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/mocks"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

func linkRouter(handler *LinkHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/links", handler.List)
	r.Get("/api/links/{id}", handler.Get)
	r.Post("/api/links", handler.Create)
	r.Put("/api/links/{id}", handler.Update)
	r.Delete("/api/links/{id}", handler.Delete)
	return r
}

func newTestLink(t *testing.T) *domain.Link {
	t.Helper()
	link, err := domain.NewLink(
		"https://chat.example.com/invite/abc123",
		"Grupo de corrida do bairro",
		uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	return link
}

func linkPayload(link *domain.Link) string {
	return fmt.Sprintf(
		`{"url":%q,"descricao":%q,"categoria_id":%q,"cidade_id":%q,"bairro_id":%q}`,
		link.URL, link.Descricao, link.CategoriaID, link.CidadeID, link.BairroID)
}

func TestLinkListFilters(t *testing.T) {
	t.Parallel()

	link := newTestLink(t)
	other := newTestLink(t)

	linkStore := mocks.NewMockLinkStore()
	linkStore.Links = append(linkStore.Links, link, other)
	router := linkRouter(NewLinkHandler(linkStore))

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{
			name:      "no filter returns all",
			query:     "",
			wantCount: 2,
		},
		{
			name:      "filter by categoria",
			query:     "?categoria_id=" + link.CategoriaID.String(),
			wantCount: 1,
		},
		{
			name:      "combined filters are ANDed",
			query:     "?categoria_id=" + link.CategoriaID.String() + "&cidade_id=" + other.CidadeID.String(),
			wantCount: 0,
		},
		{
			name:      "filter matching nothing",
			query:     "?bairro_id=" + uuid.NewString(),
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/links"+tt.query, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)

			var listed []*domain.Link
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&listed))
			assert.Len(t, listed, tt.wantCount)
		})
	}
}

func TestLinkListMalformedFilter(t *testing.T) {
	t.Parallel()

	router := linkRouter(NewLinkHandler(mocks.NewMockLinkStore()))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/links?categoria_id=banana", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp shared.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Erro de Validação", resp.Message)
	assert.Contains(t, resp.Erros, "categoria_id")
}

func TestLinkGet(t *testing.T) {
	t.Parallel()

	link := newTestLink(t)
	linkStore := mocks.NewMockLinkStore()
	linkStore.Links = append(linkStore.Links, link)
	router := linkRouter(NewLinkHandler(linkStore))

	t.Run("found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/links/"+link.ID.String(), nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp shared.StatusResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "success", resp.Status)
		require.NotNil(t, resp.Data)
	})

	t.Run("not found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/links/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp shared.StatusResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Link not found", resp.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/links/42", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestLinkCreate(t *testing.T) {
	t.Parallel()

	valid := newTestLink(t)

	tests := []struct {
		name       string
		body       string
		storeErr   error
		wantStatus int
	}{
		{
			name:       "valid link",
			body:       linkPayload(valid),
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing url",
			body: fmt.Sprintf(`{"descricao":"x","categoria_id":%q,"cidade_id":%q,"bairro_id":%q}`,
				valid.CategoriaID, valid.CidadeID, valid.BairroID),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "url without scheme",
			body: fmt.Sprintf(`{"url":"chat.example.com/abc","descricao":"x","categoria_id":%q,"cidade_id":%q,"bairro_id":%q}`,
				valid.CategoriaID, valid.CidadeID, valid.BairroID),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing descricao",
			body: fmt.Sprintf(`{"url":"https://chat.example.com/abc","categoria_id":%q,"cidade_id":%q,"bairro_id":%q}`,
				valid.CategoriaID, valid.CidadeID, valid.BairroID),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing references",
			body:       `{"url":"https://chat.example.com/abc","descricao":"x"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "broken foreign key",
			body:       linkPayload(valid),
			storeErr:   fmt.Errorf("%w: referenced row missing", store.ErrInvalidEntity),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linkStore := mocks.NewMockLinkStore()
			linkStore.CreateError = tt.storeErr
			router := linkRouter(NewLinkHandler(linkStore))

			req := httptest.NewRequest("POST", "/api/links", bytes.NewBufferString(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp shared.StatusResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "success", resp.Status)
				require.Len(t, linkStore.Links, 1)
			} else if tt.storeErr == nil {
				var resp shared.ValidationErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "Erro de Validação", resp.Message)
			}
		})
	}
}

func TestLinkUpdate(t *testing.T) {
	t.Parallel()

	t.Run("full replace", func(t *testing.T) {
		link := newTestLink(t)
		linkStore := mocks.NewMockLinkStore()
		linkStore.Links = append(linkStore.Links, link)
		router := linkRouter(NewLinkHandler(linkStore))

		replacement := newTestLink(t)
		req := httptest.NewRequest("PUT", "/api/links/"+link.ID.String(),
			bytes.NewBufferString(linkPayload(replacement)))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		updated, err := linkStore.GetByID(req.Context(), link.ID)
		require.NoError(t, err)
		assert.Equal(t, replacement.URL, updated.URL)
		assert.Equal(t, replacement.CategoriaID, updated.CategoriaID)
		assert.Equal(t, link.ID, updated.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		router := linkRouter(NewLinkHandler(mocks.NewMockLinkStore()))

		req := httptest.NewRequest("PUT", "/api/links/"+uuid.NewString(),
			bytes.NewBufferString(linkPayload(newTestLink(t))))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("opaque url without host answers 400", func(t *testing.T) {
		link := newTestLink(t)
		originalURL := link.URL
		linkStore := mocks.NewMockLinkStore()
		var updateCalled bool
		linkStore.UpdateFn = func(ctx context.Context, l *domain.Link) error {
			updateCalled = true
			return nil
		}
		linkStore.Links = append(linkStore.Links, link)
		router := linkRouter(NewLinkHandler(linkStore))

		// "http:opaque-data" slips past the request validator's url tag
		// but carries no host, so it must still be rejected as on create.
		body := fmt.Sprintf(
			`{"url":"http:opaque-data","descricao":"x","categoria_id":%q,"cidade_id":%q,"bairro_id":%q}`,
			link.CategoriaID, link.CidadeID, link.BairroID)
		req := httptest.NewRequest("PUT", "/api/links/"+link.ID.String(),
			bytes.NewBufferString(body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp shared.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Erro de Validação", resp.Message)
		assert.Contains(t, resp.Erros, "url")

		assert.False(t, updateCalled, "store update should not run for an invalid link")
		assert.Equal(t, originalURL, link.URL)
	})

	t.Run("invalid payload leaves row unchanged", func(t *testing.T) {
		link := newTestLink(t)
		originalURL := link.URL
		linkStore := mocks.NewMockLinkStore()
		linkStore.Links = append(linkStore.Links, link)
		router := linkRouter(NewLinkHandler(linkStore))

		req := httptest.NewRequest("PUT", "/api/links/"+link.ID.String(),
			bytes.NewBufferString(`{"url":"","descricao":""}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		stored, err := linkStore.GetByID(req.Context(), link.ID)
		require.NoError(t, err)
		assert.Equal(t, originalURL, stored.URL)
	})
}

func TestLinkDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes and answers 204", func(t *testing.T) {
		link := newTestLink(t)
		linkStore := mocks.NewMockLinkStore()
		linkStore.Links = append(linkStore.Links, link)
		router := linkRouter(NewLinkHandler(linkStore))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/links/"+link.ID.String(), nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
		assert.Empty(t, linkStore.Links)
	})

	t.Run("unknown id", func(t *testing.T) {
		router := linkRouter(NewLinkHandler(mocks.NewMockLinkStore()))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/links/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
