package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sagarm/storefront/internal/common"
	"github.com/sagarm/storefront/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Find(ctx context.Context, f Filter) ([]Product, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT id, name, image, price, category, description, created_at FROM products`)

	var conds []string
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, "price <= $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	switch f.SortBy {
	case SortPriceAsc:
		sb.WriteString(" ORDER BY price ASC")
	case SortPriceDesc:
		sb.WriteString(" ORDER BY price DESC")
	default:
		sb.WriteString(" ORDER BY created_at ASC")
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Category, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `SELECT id, name, image, price, category, description, created_at FROM products WHERE id = $1`

	p := &Product{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Category, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select product: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) ReplaceAll(ctx context.Context, items []Product) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}

		query := `INSERT INTO products (id, name, image, price, category, description)
			VALUES ($1, $2, $3, $4, $5, $6)`
		for _, p := range items {
			if _, err := tx.ExecContext(ctx, query,
				p.ID, p.Name, p.Image, p.Price, p.Category, p.Description); err != nil {
				return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
			}
		}
		return nil
	})
}
