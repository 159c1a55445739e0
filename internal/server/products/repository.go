// Package products implements the catalog: filtered listings, id lookups
// and the destructive seed operation.
package products

import "context"

// Sort orders accepted by Find.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Filter narrows and orders a product listing. Zero values mean
// "no constraint".
type Filter struct {
	Category string
	MaxPrice *float64
	SortBy   string
}

type Repository interface {
	// Find returns products matching the filter, in the filter's sort order
	// (insertion order when no sort is requested).
	Find(ctx context.Context, f Filter) ([]Product, error)

	// GetByID returns the product with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*Product, error)

	// ReplaceAll atomically deletes every product and inserts the given set.
	ReplaceAll(ctx context.Context, items []Product) error
}
