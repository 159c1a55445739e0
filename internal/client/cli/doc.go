// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the locally persisted cart, the backend API client
// and an interactive REPL. The cart is local-first: every mutation applies
// and renders immediately, while a background synchronizer mirrors it to the
// signed-in user's remote cart on a best-effort basis.
//
// Key commands:
//   - products — browse the catalog with optional filters
//   - add / remove / qty — mutate the cart
//   - cart / clear — inspect or empty the local cart
//   - login / logout / sync — manage the credential and remote copy
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
