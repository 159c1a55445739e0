package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/sagarm/storefront/internal/client/api"
	"github.com/sagarm/storefront/internal/client/cart"
	"github.com/sagarm/storefront/internal/client/config"
	"github.com/sagarm/storefront/internal/client/models"
	"github.com/sagarm/storefront/internal/client/repositories/cartstate"
	"github.com/sagarm/storefront/internal/client/services"
	"github.com/sagarm/storefront/internal/client/storage"
	"github.com/sagarm/storefront/internal/client/syncer"
	"github.com/sagarm/storefront/internal/logging"
)

// App holds the CLI state: the composed cart service, the API client, the
// current credential and the catalog cache from the last product listing.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	cartSvc *services.CartService
	sync    *syncer.Syncer

	// token is the bearer credential of the signed-in user, "" when logged
	// out. It is only read and written on the REPL goroutine.
	token string

	// catalog caches products by id from the last listing so `add` can
	// attach the product snapshot without another fetch.
	catalog map[string]models.Product

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	store, err := cart.NewStore(ctx, cartstate.NewSQLiteRepository(db), logger)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	app := &App{
		config:  c,
		log:     logger,
		api:     apiClient,
		catalog: make(map[string]models.Product),
		reader:  bufio.NewReader(os.Stdin),
	}

	app.sync = syncer.New(store, apiClient, app.currentToken, logger)
	app.cartSvc = services.NewCartService(store, app.sync)

	return app, nil
}

func (a *App) currentToken() string {
	return a.token
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// Run starts the REPL and blocks until the user exits. In-flight background
// pushes are given a chance to finish before returning.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
	a.sync.Flush()
}
