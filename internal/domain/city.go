package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// City validation errors.
var (
	ErrEmptyCityID     = errors.New("city ID cannot be empty")
	ErrEmptyCityName   = errors.New("city name cannot be empty")
	ErrCityNameTooLong = errors.New("city name cannot exceed 255 characters")
)

// City represents a city (cidade) in the link directory.
// JSON field names follow the public API contract.
type City struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCity creates a new City with the given name.
func NewCity(nome string) (*City, error) {
	now := time.Now().UTC()
	city := &City{
		ID:        uuid.New(),
		Nome:      nome,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := city.Validate(); err != nil {
		return nil, err
	}

	return city, nil
}

// Validate checks if the City has valid data.
func (c *City) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCityID
	}
	if c.Nome == "" {
		return ErrEmptyCityName
	}
	if len(c.Nome) > 255 {
		return ErrCityNameTooLong
	}
	return nil
}
