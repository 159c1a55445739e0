package cli

import (
	"context"
	"os"
)

// getToken is an indirection used to facilitate testing.
var getToken = GetToken

// Login stores the access token issued by the identity provider and
// immediately overwrites the local cart from the signed-in user's remote
// copy. A failed pull keeps the local cart; the session still counts as
// signed in.
func (a *App) Login(ctx context.Context) error {
	token, err := getToken(os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		printlnFn("Empty token, staying signed out")
		return nil
	}

	a.token = token

	if err := a.cartSvc.Sync(ctx); err != nil {
		printlnFn("Signed in, but cart sync failed; using local cart")
		return nil
	}

	printlnFn("Signed in, cart synced")
	return nil
}

// Logout drops the credential and empties the local cart. The remote copy
// is left as-is for the next sign-in.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.cartSvc.Clear(ctx)
	printlnFn("Signed out")
	return nil
}

// Sync overwrites the local cart from the remote copy on demand.
func (a *App) Sync(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in")
		return nil
	}
	if err := a.cartSvc.Sync(ctx); err != nil {
		printlnFn("Sync failed:", err.Error())
		return err
	}
	printlnFn("Cart synced")
	return nil
}
