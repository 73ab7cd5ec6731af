package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// MockCityStore implements store.CityStore for testing
type MockCityStore struct {
	CreateFn func(ctx context.Context, city *domain.City) error
	ListFn   func(ctx context.Context) ([]*domain.City, error)
	ExistsFn func(ctx context.Context, id uuid.UUID) (bool, error)

	Cities      []*domain.City
	CreateError error
	ListError   error
}

// NewMockCityStore creates a new mock store with initialized defaults
func NewMockCityStore() *MockCityStore {
	return &MockCityStore{}
}

// Create implements the CityStore interface
func (m *MockCityStore) Create(ctx context.Context, city *domain.City) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, city)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Cities = append(m.Cities, city)
	return nil
}

// List implements the CityStore interface
func (m *MockCityStore) List(ctx context.Context) ([]*domain.City, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Cities, nil
}

// Exists implements the CityStore interface
func (m *MockCityStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	for _, city := range m.Cities {
		if city.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// MockNeighborhoodStore implements store.NeighborhoodStore for testing
type MockNeighborhoodStore struct {
	CreateFn func(ctx context.Context, neighborhood *domain.Neighborhood) error
	ListFn   func(ctx context.Context) ([]*domain.Neighborhood, error)

	Neighborhoods []*domain.Neighborhood
	CreateError   error
	ListError     error
}

// NewMockNeighborhoodStore creates a new mock store with initialized defaults
func NewMockNeighborhoodStore() *MockNeighborhoodStore {
	return &MockNeighborhoodStore{}
}

// Create implements the NeighborhoodStore interface
func (m *MockNeighborhoodStore) Create(ctx context.Context, neighborhood *domain.Neighborhood) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, neighborhood)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Neighborhoods = append(m.Neighborhoods, neighborhood)
	return nil
}

// List implements the NeighborhoodStore interface
func (m *MockNeighborhoodStore) List(ctx context.Context) ([]*domain.Neighborhood, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Neighborhoods, nil
}

// MockCategoryStore implements store.CategoryStore for testing
type MockCategoryStore struct {
	CreateFn  func(ctx context.Context, category *domain.Category) error
	ListFn    func(ctx context.Context) ([]*domain.Category, error)
	UpdateFn  func(ctx context.Context, category *domain.Category) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	Categories  []*domain.Category
	CreateError error
	ListError   error
}

// NewMockCategoryStore creates a new mock store with initialized defaults
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{}
}

// Create implements the CategoryStore interface
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Categories = append(m.Categories, category)
	return nil
}

// List implements the CategoryStore interface
func (m *MockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Categories, nil
}

// Update implements the CategoryStore interface
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, category)
	}
	for i, existing := range m.Categories {
		if existing.ID == category.ID {
			m.Categories[i] = category
			return nil
		}
	}
	return store.ErrCategoryNotFound
}

// GetByID implements the CategoryStore interface
func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, category := range m.Categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, store.ErrCategoryNotFound
}

// MockLinkStore implements store.LinkStore for testing
type MockLinkStore struct {
	CreateFn  func(ctx context.Context, link *domain.Link) error
	ListFn    func(ctx context.Context, filter domain.LinkFilter) ([]*domain.Link, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Link, error)
	UpdateFn  func(ctx context.Context, link *domain.Link) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	Links       []*domain.Link
	LastFilter  domain.LinkFilter
	CreateError error
	ListError   error
}

// NewMockLinkStore creates a new mock store with initialized defaults
func NewMockLinkStore() *MockLinkStore {
	return &MockLinkStore{}
}

// Create implements the LinkStore interface
func (m *MockLinkStore) Create(ctx context.Context, link *domain.Link) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, link)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Links = append(m.Links, link)
	return nil
}

// List implements the LinkStore interface. The default implementation
// records the filter and applies it in memory.
func (m *MockLinkStore) List(ctx context.Context, filter domain.LinkFilter) ([]*domain.Link, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}

	m.LastFilter = filter
	matched := make([]*domain.Link, 0, len(m.Links))
	for _, link := range m.Links {
		if filter.CategoriaID != nil && link.CategoriaID != *filter.CategoriaID {
			continue
		}
		if filter.CidadeID != nil && link.CidadeID != *filter.CidadeID {
			continue
		}
		if filter.BairroID != nil && link.BairroID != *filter.BairroID {
			continue
		}
		matched = append(matched, link)
	}
	return matched, nil
}

// GetByID implements the LinkStore interface. Like a real row read, it
// returns a copy so callers mutating the result don't touch stored state.
func (m *MockLinkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, link := range m.Links {
		if link.ID == id {
			found := *link
			return &found, nil
		}
	}
	return nil, store.ErrLinkNotFound
}

// Update implements the LinkStore interface
func (m *MockLinkStore) Update(ctx context.Context, link *domain.Link) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, link)
	}
	for i, existing := range m.Links {
		if existing.ID == link.ID {
			m.Links[i] = link
			return nil
		}
	}
	return store.ErrLinkNotFound
}

// Delete implements the LinkStore interface
func (m *MockLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	for i, link := range m.Links {
		if link.ID == id {
			m.Links = append(m.Links[:i], m.Links[i+1:]...)
			return nil
		}
	}
	return store.ErrLinkNotFound
}

// Verify interface compliance
var (
	_ store.CityStore         = (*MockCityStore)(nil)
	_ store.NeighborhoodStore = (*MockNeighborhoodStore)(nil)
	_ store.CategoryStore     = (*MockCategoryStore)(nil)
	_ store.LinkStore         = (*MockLinkStore)(nil)
)
