package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	t.Parallel()

	categoriaID := uuid.New()
	cidadeID := uuid.New()
	bairroID := uuid.New()

	tests := []struct {
		name      string
		url       string
		descricao string
		categoria uuid.UUID
		cidade    uuid.UUID
		bairro    uuid.UUID
		wantErr   error
	}{
		{
			name:      "valid link",
			url:       "https://chat.example.com/invite/abc123",
			descricao: "Grupo de corrida",
			categoria: categoriaID,
			cidade:    cidadeID,
			bairro:    bairroID,
		},
		{
			name:      "empty url",
			url:       "",
			descricao: "Grupo de corrida",
			categoria: categoriaID,
			cidade:    cidadeID,
			bairro:    bairroID,
			wantErr:   ErrEmptyLinkURL,
		},
		{
			name:      "url without scheme",
			url:       "chat.example.com/invite",
			descricao: "Grupo de corrida",
			categoria: categoriaID,
			cidade:    cidadeID,
			bairro:    bairroID,
			wantErr:   ErrInvalidURL,
		},
		{
			name:      "url without host",
			url:       "https://",
			descricao: "Grupo de corrida",
			categoria: categoriaID,
			cidade:    cidadeID,
			bairro:    bairroID,
			wantErr:   ErrInvalidURL,
		},
		{
			name:      "empty descricao",
			url:       "https://chat.example.com/invite",
			descricao: "",
			categoria: categoriaID,
			cidade:    cidadeID,
			bairro:    bairroID,
			wantErr:   ErrEmptyLinkDescription,
		},
		{
			name:      "missing categoria",
			url:       "https://chat.example.com/invite",
			descricao: "Grupo de corrida",
			cidade:    cidadeID,
			bairro:    bairroID,
			wantErr:   ErrEmptyLinkCategory,
		},
		{
			name:      "missing cidade",
			url:       "https://chat.example.com/invite",
			descricao: "Grupo de corrida",
			categoria: categoriaID,
			bairro:    bairroID,
			wantErr:   ErrEmptyLinkCity,
		},
		{
			name:      "missing bairro",
			url:       "https://chat.example.com/invite",
			descricao: "Grupo de corrida",
			categoria: categoriaID,
			cidade:    cidadeID,
			wantErr:   ErrEmptyLinkNeighborhood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := NewLink(tt.url, tt.descricao, tt.categoria, tt.cidade, tt.bairro)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, link)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, link.ID)
			assert.Equal(t, tt.url, link.URL)
		})
	}
}
