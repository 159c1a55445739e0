// Package cartstate persists the serialized local cart as a single keyed
// blob, the client-side equivalent of browser local storage.
package cartstate

import "context"

// Repository describes keyed-blob storage for client state.
type Repository interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
