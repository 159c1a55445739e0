package users

import "context"

// Repository persists user records keyed by the identity provider subject.
type Repository interface {
	// GetOrCreate returns the user for the subject, creating an empty
	// record on first sight.
	GetOrCreate(ctx context.Context, subject string) (*User, error)
	// SaveCart replaces the stored cart for the subject.
	SaveCart(ctx context.Context, subject string, items []LineItem) error
}
