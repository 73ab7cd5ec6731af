package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Neighborhood validation errors.
var (
	ErrEmptyNeighborhoodID     = errors.New("neighborhood ID cannot be empty")
	ErrEmptyNeighborhoodName   = errors.New("neighborhood name cannot be empty")
	ErrNeighborhoodNameTooLong = errors.New("neighborhood name cannot exceed 255 characters")
	ErrEmptyNeighborhoodCity   = errors.New("neighborhood city ID cannot be empty")
)

// Neighborhood represents a neighborhood (bairro) belonging to a city.
// When listed, the parent city is embedded under "cidade".
type Neighborhood struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	CidadeID  uuid.UUID `json:"cidade_id"`
	Cidade    *City     `json:"cidade,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNeighborhood creates a new Neighborhood in the given city.
func NewNeighborhood(nome string, cidadeID uuid.UUID) (*Neighborhood, error) {
	now := time.Now().UTC()
	n := &Neighborhood{
		ID:        uuid.New(),
		Nome:      nome,
		CidadeID:  cidadeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate checks if the Neighborhood has valid data.
func (n *Neighborhood) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyNeighborhoodID
	}
	if n.Nome == "" {
		return ErrEmptyNeighborhoodName
	}
	if len(n.Nome) > 255 {
		return ErrNeighborhoodNameTooLong
	}
	if n.CidadeID == uuid.Nil {
		return ErrEmptyNeighborhoodCity
	}
	return nil
}
