package users

import (
	"context"
	"fmt"

	"github.com/sagarm/storefront/internal/common"
	"github.com/sagarm/storefront/internal/server/products"
)

// Service implements the server-side cart. Write conflicts are resolved
// last write wins; each mutation loads the cart, applies the change and
// stores the whole cart back.
type Service struct {
	repo     Repository
	products products.Repository
}

func NewService(repo Repository, products products.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Cart returns the subject's cart, creating an empty one on first access.
func (s *Service) Cart(ctx context.Context, subject string) ([]LineItem, error) {
	u, err := s.repo.GetOrCreate(ctx, subject)
	if err != nil {
		return nil, err
	}
	if u.Cart == nil {
		return []LineItem{}, nil
	}
	return u.Cart, nil
}

// AddItem increments the product's quantity in the cart, adding a new line
// with a snapshot of the product's current name, image and price when it is
// not there yet. Quantities below one count as one. Returns
// common.ErrNotFound if the product does not exist.
func (s *Service) AddItem(ctx context.Context, subject, productID string, quantity int) ([]LineItem, error) {
	if productID == "" {
		return nil, common.ErrEmptyProductID
	}
	if quantity < 1 {
		quantity = 1
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	u, err := s.repo.GetOrCreate(ctx, subject)
	if err != nil {
		return nil, err
	}

	cart := u.Cart
	found := false
	for i := range cart {
		if cart[i].ID == productID {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Image:    p.Image,
			Price:    p.Price,
			Quantity: quantity,
		})
	}

	if err := s.repo.SaveCart(ctx, subject, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the product's line from the cart. Removing a product
// that is not in the cart is not an error.
func (s *Service) RemoveItem(ctx context.Context, subject, productID string) ([]LineItem, error) {
	if productID == "" {
		return nil, common.ErrEmptyProductID
	}

	u, err := s.repo.GetOrCreate(ctx, subject)
	if err != nil {
		return nil, err
	}

	cart := make([]LineItem, 0, len(u.Cart))
	for _, it := range u.Cart {
		if it.ID != productID {
			cart = append(cart, it)
		}
	}

	if err := s.repo.SaveCart(ctx, subject, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the line's quantity to the given value, removing the
// line when the value is zero or negative. Updating a product that is not
// in the cart leaves the cart unchanged.
func (s *Service) UpdateQuantity(ctx context.Context, subject, productID string, quantity int) ([]LineItem, error) {
	if productID == "" {
		return nil, common.ErrEmptyProductID
	}

	u, err := s.repo.GetOrCreate(ctx, subject)
	if err != nil {
		return nil, err
	}

	cart := u.Cart
	for i := range cart {
		if cart[i].ID != productID {
			continue
		}
		if quantity > 0 {
			cart[i].Quantity = quantity
		} else {
			cart = append(cart[:i], cart[i+1:]...)
		}
		break
	}

	if err := s.repo.SaveCart(ctx, subject, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
