package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category validation errors.
var (
	ErrEmptyCategoryID     = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName   = errors.New("category name cannot be empty")
	ErrCategoryNameTooLong = errors.New("category name cannot exceed 255 characters")
)

// Category represents a link category (categoria).
type Category struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a new Category with the given name.
func NewCategory(nome string) (*Category, error) {
	now := time.Now().UTC()
	cat := &Category{
		ID:        uuid.New(),
		Nome:      nome,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	if c.Nome == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Nome) > 255 {
		return ErrCategoryNameTooLong
	}
	return nil
}
