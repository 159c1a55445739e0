package products

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns catalog products matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	items, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	if items == nil {
		items = []Product{}
	}
	return items, nil
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Seed replaces the whole catalog with the built-in demo set and returns
// the inserted products.
func (s *Service) Seed(ctx context.Context) ([]Product, error) {
	items := newSeedProducts()
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return nil, fmt.Errorf("error seeding products: %w", err)
	}
	return items, nil
}
