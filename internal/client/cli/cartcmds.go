package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sagarm/storefront/internal/client/api"
	"github.com/sagarm/storefront/internal/client/models"
)

// lookupProduct resolves a product id against the catalog cache, fetching
// the full listing once if the id has not been seen yet.
func (a *App) lookupProduct(ctx context.Context, id string) (models.Product, bool) {
	if p, ok := a.catalog[id]; ok {
		return p, true
	}

	products, err := a.api.Products(ctx, api.ProductFilter{})
	if err != nil {
		return models.Product{}, false
	}
	for _, p := range products {
		a.catalog[p.ID] = p
	}

	p, ok := a.catalog[id]
	return p, ok
}

// Add puts one unit of a product in the cart. The local cart updates and
// renders immediately; the remote copy catches up in the background.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: add <productId>")
		return nil
	}

	p, ok := a.lookupProduct(ctx, args[0])
	if !ok {
		printlnFn("Unknown product:", args[0])
		return nil
	}

	a.printCart(a.cartSvc.Add(ctx, p))
	return nil
}

// Remove deletes a line item from the cart.
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: remove <productId>")
		return nil
	}

	a.printCart(a.cartSvc.Remove(ctx, args[0]))
	return nil
}

// Qty sets an absolute quantity for a line item; 0 or less removes it.
func (a *App) Qty(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: qty <productId> <quantity>")
		return nil
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Invalid quantity:", args[1])
		return nil
	}

	a.printCart(a.cartSvc.SetQuantity(ctx, args[0], quantity))
	return nil
}

// ShowCart prints the current local cart.
func (a *App) ShowCart(ctx context.Context) error {
	a.printCart(a.cartSvc.Items())
	return nil
}

// ClearCart empties the local cart. The remote copy is untouched.
func (a *App) ClearCart(ctx context.Context) error {
	a.cartSvc.Clear(ctx)
	printlnFn("Cart cleared")
	return nil
}

func (a *App) printCart(items []models.LineItem) {
	if len(items) == 0 {
		printlnFn("Cart is empty")
		return
	}
	for _, item := range items {
		printlnFn(fmt.Sprintf("%s  %-30s %3d x %8.2f = %8.2f",
			item.ID, item.Name, item.Quantity, item.Price, item.Subtotal()))
	}
	printlnFn(fmt.Sprintf("%d items, subtotal %.2f", a.cartSvc.Count(), a.cartSvc.Subtotal()))
}
