// Package server initializes and runs the storefront backend. It wires
// the storage backend, the cart and catalog services and the HTTP API,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sagarm/storefront/internal/logging"
	"github.com/sagarm/storefront/internal/server/auth"
	"github.com/sagarm/storefront/internal/server/config"
	"github.com/sagarm/storefront/internal/server/httpapi"
	"github.com/sagarm/storefront/internal/server/products"
	"github.com/sagarm/storefront/internal/server/storage"
	"github.com/sagarm/storefront/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager storage.RepositoryManager
	server  *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := storage.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userService := users.NewService(m.Users(), m.Products())
	productService := products.NewService(m.Products())

	verifier := auth.NewJWTVerifier([]byte(c.SecretKey))
	handlers := httpapi.NewHandlers(userService, productService, logger)
	server := httpapi.NewServer(c.Addr, verifier, handlers, logger)

	return &App{config: c, logger: logger, manager: m, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
