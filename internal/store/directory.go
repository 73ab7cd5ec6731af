package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
)

// CityStore defines the interface for city persistence.
type CityStore interface {
	// Create saves a new city.
	Create(ctx context.Context, city *domain.City) error

	// List returns all cities ordered by creation time.
	List(ctx context.Context) ([]*domain.City, error)

	// Exists reports whether a city with the given ID is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// NeighborhoodStore defines the interface for neighborhood persistence.
type NeighborhoodStore interface {
	// Create saves a new neighborhood.
	// Returns ErrInvalidEntity if the referenced city does not exist.
	Create(ctx context.Context, neighborhood *domain.Neighborhood) error

	// List returns all neighborhoods with their parent city embedded.
	List(ctx context.Context) ([]*domain.Neighborhood, error)
}

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category.
	Create(ctx context.Context, category *domain.Category) error

	// List returns all categories ordered by creation time.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update replaces the name of an existing category.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

// LinkStore defines the interface for link persistence.
type LinkStore interface {
	// Create saves a new link.
	// Returns ErrInvalidEntity if any referenced row does not exist.
	Create(ctx context.Context, link *domain.Link) error

	// List returns links matching the filter. An empty filter returns all
	// links; set fields are AND-combined exact matches.
	List(ctx context.Context, filter domain.LinkFilter) ([]*domain.Link, error)

	// GetByID retrieves a link by its ID.
	// Returns ErrLinkNotFound if the link does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Link, error)

	// Update replaces all mutable fields of an existing link.
	// Returns ErrLinkNotFound if the link does not exist and
	// ErrInvalidEntity if any referenced row does not exist.
	Update(ctx context.Context, link *domain.Link) error

	// Delete removes a link by its ID.
	// Returns ErrLinkNotFound if the link does not exist.
	//
	// Parent rows (cities, neighborhoods, categories) cascade to links at
	// the schema level through ON DELETE CASCADE constraints; this method
	// only covers explicit link deletion.
	Delete(ctx context.Context, id uuid.UUID) error
}
