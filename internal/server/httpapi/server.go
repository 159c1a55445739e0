// Package httpapi implements the public HTTP API of the storefront
// server: the product catalog routes and the authenticated cart routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/sagarm/storefront/internal/logging"
	"github.com/sagarm/storefront/internal/server/auth"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr    string
	handler http.Handler
	log     logging.Logger
}

// NewServer builds the gin router, wires the middleware and wraps the
// whole thing in a permissive CORS layer for browser clients.
func NewServer(addr string, verifier auth.Verifier, h *Handlers, log logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", h.healthz)

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.POST("/products/seed", h.seedProducts)

		cart := api.Group("/cart", Auth(verifier))
		{
			cart.GET("", h.getCart)
			cart.POST("/add", h.addToCart)
			cart.POST("/remove", h.removeFromCart)
			cart.POST("/update", h.updateQuantity)
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	return &Server{addr: addr, handler: c.Handler(router), log: log}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "http server starting", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(ctx, "http server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
