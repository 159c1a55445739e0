// Package syncer mirrors local cart mutations to the remote per-identity
// cart. Pushes are fire-and-forget: they run on their own goroutines, their
// failures are logged and never surfaced, and they never roll back or gate a
// local mutation. The only call that writes local state is PullAndOverwrite.
package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/sagarm/storefront/internal/client/api"
	"github.com/sagarm/storefront/internal/client/cart"
	"github.com/sagarm/storefront/internal/logging"
)

// pushTimeout bounds a single background push. There are no retries; an
// abandoned call is closed out by the next pull-and-overwrite.
const pushTimeout = 10 * time.Second

// TokenSource returns the caller's current bearer credential, or "" when
// not authenticated.
type TokenSource func() string

// Syncer bridges the local cart store to the remote cart endpoint.
type Syncer struct {
	store *cart.Store
	api   api.Client
	token TokenSource
	log   logging.Logger
	wg    sync.WaitGroup
}

// New returns a Syncer that reads the caller's credential from token on
// every operation.
func New(store *cart.Store, apiClient api.Client, token TokenSource, log logging.Logger) *Syncer {
	return &Syncer{
		store: store,
		api:   apiClient,
		token: token,
		log:   log.With("module", "cart_syncer"),
	}
}

// PushAdd propagates an add-or-increment to the remote cart.
func (s *Syncer) PushAdd(productID string, quantity int) {
	s.dispatch("add", func(ctx context.Context, token string) error {
		return s.api.PushAdd(ctx, token, productID, quantity)
	})
}

// PushRemove propagates a line-item removal to the remote cart.
func (s *Syncer) PushRemove(productID string) {
	s.dispatch("remove", func(ctx context.Context, token string) error {
		return s.api.PushRemove(ctx, token, productID)
	})
}

// PushSetQuantity propagates an absolute quantity update to the remote
// cart; the value is expected to be already clamped by the store.
func (s *Syncer) PushSetQuantity(productID string, quantity int) {
	s.dispatch("update", func(ctx context.Context, token string) error {
		return s.api.PushUpdate(ctx, token, productID, quantity)
	})
}

// PullAndOverwrite fetches the remote cart and replaces the local cart with
// it item-for-item, discarding local-only state. Without a credential it is
// a silent no-op. On failure the local cart keeps its prior state and the
// error is returned for the caller's log line only.
func (s *Syncer) PullAndOverwrite(ctx context.Context) error {
	token := s.token()
	if token == "" {
		return nil
	}

	items, err := s.api.FetchCart(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "cart pull failed, keeping local state", "error", err)
		return err
	}

	s.store.Replace(ctx, items)
	return nil
}

// Flush waits for in-flight pushes to finish. Used on shutdown and in tests;
// user-visible paths never wait on it.
func (s *Syncer) Flush() {
	s.wg.Wait()
}

// dispatch runs fn on its own goroutine when a credential is present. The
// issuance order of concurrent pushes is not preserved on the wire.
func (s *Syncer) dispatch(op string, fn func(ctx context.Context, token string) error) {
	token := s.token()
	if token == "" {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		if err := fn(ctx, token); err != nil {
			s.log.Warn(ctx, "cart sync failed", "op", op, "error", err)
		}
	}()
}
