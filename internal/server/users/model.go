package users

import "time"

// LineItem is a cart entry stored on the user record. Name, image and
// price are copied from the product at the time it is added, so the cart
// keeps showing what the customer agreed to even if the catalog changes.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type User struct {
	ID        string
	Subject   string
	Cart      []LineItem
	CreatedAt time.Time
}
