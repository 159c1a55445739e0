package storage

import (
	"context"
	"database/sql"

	"github.com/sagarm/storefront/internal/server/products"
	"github.com/sagarm/storefront/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Products() products.Repository
	Close() error
}
