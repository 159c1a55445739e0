// Package services composes the local cart store with the background
// synchronizer into the operations the CLI invokes. Every mutation applies
// locally first and returns the new state immediately; the matching remote
// push is issued in the background and never awaited.
package services

import (
	"context"

	"github.com/sagarm/storefront/internal/client/cart"
	"github.com/sagarm/storefront/internal/client/models"
	"github.com/sagarm/storefront/internal/client/syncer"
)

type CartService struct {
	store *cart.Store
	sync  *syncer.Syncer
}

func NewCartService(store *cart.Store, sync *syncer.Syncer) *CartService {
	return &CartService{store: store, sync: sync}
}

// Add puts one unit of the product in the cart (or increments it) and
// pushes the same add to the remote copy.
func (s *CartService) Add(ctx context.Context, p models.Product) []models.LineItem {
	items := s.store.AddItem(ctx, p)
	s.sync.PushAdd(p.ID, 1)
	return items
}

// Remove deletes the line item and pushes the removal to the remote copy.
func (s *CartService) Remove(ctx context.Context, productID string) []models.LineItem {
	items := s.store.RemoveItem(ctx, productID)
	s.sync.PushRemove(productID)
	return items
}

// SetQuantity sets an absolute quantity (clamped to a floor of 0, which
// removes the item) and pushes the clamped value to the remote copy.
func (s *CartService) SetQuantity(ctx context.Context, productID string, quantity int) []models.LineItem {
	if quantity < 0 {
		quantity = 0
	}
	items := s.store.SetQuantity(ctx, productID, quantity)
	s.sync.PushSetQuantity(productID, quantity)
	return items
}

// Clear empties the local cart only; the remote copy is untouched.
func (s *CartService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
}

// Items returns the current local cart.
func (s *CartService) Items() []models.LineItem {
	return s.store.Snapshot()
}

// Count returns the total quantity across all line items.
func (s *CartService) Count() int {
	return s.store.Count()
}

// Subtotal returns the current cart subtotal.
func (s *CartService) Subtotal() float64 {
	return s.store.Subtotal()
}

// Sync overwrites the local cart from the remote copy. Used once per
// authentication event.
func (s *CartService) Sync(ctx context.Context) error {
	return s.sync.PullAndOverwrite(ctx)
}
