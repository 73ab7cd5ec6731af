package api

import "github.com/google/uuid"

// Request payloads are explicit allow-lists: only the fields declared here
// ever reach the persistence layer, whatever else the client submits.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateCityRequest defines the payload for creating a city.
type CreateCityRequest struct {
	Nome string `json:"nome" validate:"required,max=255"`
}

// CreateNeighborhoodRequest defines the payload for creating a neighborhood.
type CreateNeighborhoodRequest struct {
	Nome     string    `json:"nome"      validate:"required,max=255"`
	CidadeID uuid.UUID `json:"cidade_id" validate:"required"`
}

// CategoryRequest defines the payload for creating or updating a category.
type CategoryRequest struct {
	Nome string `json:"nome" validate:"required,max=255"`
}

// LinkRequest defines the payload for creating or fully replacing a link.
// Updates are full replaces: every field is required every time.
type LinkRequest struct {
	URL         string    `json:"url"          validate:"required,url"`
	Descricao   string    `json:"descricao"    validate:"required"`
	CategoriaID uuid.UUID `json:"categoria_id" validate:"required"`
	CidadeID    uuid.UUID `json:"cidade_id"    validate:"required"`
	BairroID    uuid.UUID `json:"bairro_id"    validate:"required"`
}
