// Package cart implements the local cart store: the single in-process
// authority for the cart the client renders. Mutations apply synchronously
// and the full state is persisted after every change, so the cart survives
// restarts. Remote synchronization is layered on top and never gates a
// local mutation.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sagarm/storefront/internal/client/models"
	"github.com/sagarm/storefront/internal/client/repositories/cartstate"
	"github.com/sagarm/storefront/internal/logging"
)

// StateKey is the key the serialized line-item array is stored under.
const StateKey = "cart"

// Store holds the cart line items in insertion order, at most one entry per
// product id.
type Store struct {
	mu    sync.Mutex
	items []models.LineItem
	repo  cartstate.Repository
	log   logging.Logger
}

// NewStore builds a Store restored from persisted state. If no prior state
// exists the store starts empty.
func NewStore(ctx context.Context, repo cartstate.Repository, log logging.Logger) (*Store, error) {
	s := &Store{repo: repo, log: log.With("module", "cart_store")}

	blob, err := repo.Get(ctx, StateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to restore cart: %w", err)
	}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &s.items); err != nil {
			return nil, fmt.Errorf("failed to decode persisted cart: %w", err)
		}
	}

	return s, nil
}

// AddItem inserts a new line item with quantity 1, or increments the
// quantity of the existing item with the same product id. The product
// snapshot is preserved as passed in. Returns the updated cart.
func (s *Store) AddItem(ctx context.Context, p models.Product) []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(p.ID); item != nil {
		item.Quantity++
	} else {
		s.items = append(s.items, models.LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Image:    p.Image,
			Price:    p.Price,
			Quantity: 1,
		})
	}

	s.persist(ctx)
	return s.snapshot()
}

// RemoveItem deletes the line item with the given product id. Removing an
// absent item is a no-op. Returns the updated cart.
func (s *Store) RemoveItem(ctx context.Context, productID string) []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delete(productID)
	s.persist(ctx)
	return s.snapshot()
}

// SetQuantity sets the quantity of the line item with the given product id
// to quantity, clamped to a floor of 0. A clamped value of 0 removes the
// item. Setting the quantity of an absent item is a no-op. Returns the
// updated cart.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 0 {
		quantity = 0
	}

	if item := s.find(productID); item != nil {
		if quantity == 0 {
			s.delete(productID)
		} else {
			item.Quantity = quantity
		}
	}

	s.persist(ctx)
	return s.snapshot()
}

// Clear empties the cart locally. The remote copy is not contacted.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Replace installs items as the full new cart state, discarding whatever
// was there before. Used by pull-and-overwrite sync.
func (s *Store) Replace(ctx context.Context, items []models.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]models.LineItem, len(items))
	copy(s.items, items)
	s.persist(ctx)
}

// Snapshot returns a copy of the current line items in insertion order.
func (s *Store) Snapshot() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Count returns the total quantity across all line items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

// Subtotal returns the sum of price times quantity across all line items.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

func (s *Store) find(productID string) *models.LineItem {
	for i := range s.items {
		if s.items[i].ID == productID {
			return &s.items[i]
		}
	}
	return nil
}

func (s *Store) delete(productID string) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) snapshot() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// persist writes the full serialized state. A persistence failure is fatal
// to that write only: it is logged and the in-memory state stands.
func (s *Store) persist(ctx context.Context) {
	blob, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error(ctx, "failed to encode cart state", "error", err)
		return
	}
	if err := s.repo.Set(ctx, StateKey, blob); err != nil {
		s.log.Error(ctx, "failed to persist cart state", "error", err)
	}
}
