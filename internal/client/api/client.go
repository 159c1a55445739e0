// Package api provides the HTTP client the cart synchronizer and the CLI
// use to talk to the storefront backend.
package api

import (
	"context"

	"github.com/sagarm/storefront/internal/client/models"
)

// ProductFilter narrows and orders a product listing. Zero values mean
// "no constraint".
type ProductFilter struct {
	Category string
	MaxPrice float64 // 0 means unbounded
	SortBy   string  // "price-asc" or "price-desc"
}

// Client is the remote surface the client depends on. Cart calls carry the
// caller's bearer credential; product calls are public.
type Client interface {
	// FetchCart returns the authenticated caller's remote cart.
	FetchCart(ctx context.Context, token string) ([]models.LineItem, error)

	// PushAdd applies add-or-increment semantics to the remote cart.
	PushAdd(ctx context.Context, token, productID string, quantity int) error

	// PushRemove deletes the line item from the remote cart.
	PushRemove(ctx context.Context, token, productID string) error

	// PushUpdate sets the remote quantity absolutely; a value <= 0 removes
	// the item.
	PushUpdate(ctx context.Context, token, productID string, quantity int) error

	// Products lists catalog products matching the filter.
	Products(ctx context.Context, f ProductFilter) ([]models.Product, error)
}
