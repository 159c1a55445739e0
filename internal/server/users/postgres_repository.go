package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) GetOrCreate(ctx context.Context, subject string) (*User, error) {
	// The no-op DO UPDATE lets RETURNING work for existing rows too.
	query := `INSERT INTO users (id, subject) VALUES ($1, $2)
		ON CONFLICT (subject) DO UPDATE SET subject = excluded.subject
		RETURNING id, subject, cart, created_at`

	u := &User{}
	var cart []byte
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), subject).
		Scan(&u.ID, &u.Subject, &cart, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	if err := json.Unmarshal(cart, &u.Cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart for user %s: %w", u.ID, err)
	}
	return u, nil
}

func (r *PostgresRepository) SaveCart(ctx context.Context, subject string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	cart, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE users SET cart = $2 WHERE subject = $1`, subject, cart)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
