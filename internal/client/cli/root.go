package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return fmt.Sprintf("(signed in, %d items)", a.cartSvc.Count())
	}
	return fmt.Sprintf("(guest, %d items)", a.cartSvc.Count())
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
