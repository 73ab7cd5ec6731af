package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Link validation errors.
var (
	ErrEmptyLinkID           = errors.New("link ID cannot be empty")
	ErrEmptyLinkURL          = errors.New("link URL cannot be empty")
	ErrEmptyLinkDescription  = errors.New("link description cannot be empty")
	ErrEmptyLinkCategory     = errors.New("link category ID cannot be empty")
	ErrEmptyLinkCity         = errors.New("link city ID cannot be empty")
	ErrEmptyLinkNeighborhood = errors.New("link neighborhood ID cannot be empty")
)

// Link represents a shared group link tied to a category, city and
// neighborhood. All three references are mandatory.
type Link struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Descricao   string    `json:"descricao"`
	CategoriaID uuid.UUID `json:"categoria_id"`
	CidadeID    uuid.UUID `json:"cidade_id"`
	BairroID    uuid.UUID `json:"bairro_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewLink creates a new Link with the given fields.
func NewLink(rawURL, descricao string, categoriaID, cidadeID, bairroID uuid.UUID) (*Link, error) {
	now := time.Now().UTC()
	link := &Link{
		ID:          uuid.New(),
		URL:         rawURL,
		Descricao:   descricao,
		CategoriaID: categoriaID,
		CidadeID:    cidadeID,
		BairroID:    bairroID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := link.Validate(); err != nil {
		return nil, err
	}

	return link, nil
}

// Validate checks if the Link has valid data.
func (l *Link) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyLinkID
	}
	if l.URL == "" {
		return ErrEmptyLinkURL
	}
	if u, err := url.Parse(l.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}
	if l.Descricao == "" {
		return ErrEmptyLinkDescription
	}
	if l.CategoriaID == uuid.Nil {
		return ErrEmptyLinkCategory
	}
	if l.CidadeID == uuid.Nil {
		return ErrEmptyLinkCity
	}
	if l.BairroID == uuid.Nil {
		return ErrEmptyLinkNeighborhood
	}
	return nil
}

// LinkFilter narrows a link listing to exact foreign-key matches.
// Nil fields are ignored; set fields are AND-combined.
type LinkFilter struct {
	CategoriaID *uuid.UUID
	CidadeID    *uuid.UUID
	BairroID    *uuid.UUID
}
