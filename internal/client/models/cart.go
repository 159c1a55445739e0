// Package models defines the client-side data shapes: the product catalog
// entry and the cart line item. JSON tags match both the wire format of the
// remote API and the locally persisted cart blob.
package models

// Product is a catalog entry as returned by the products endpoint.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}

// LineItem is one product entry in the cart plus its quantity. The product
// fields are a snapshot taken when the item entered the cart.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (i LineItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
