package cartstate

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE cart_state (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "cart")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_InsertAndOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "cart", []byte(`[{"id":"p1"}]`)))

	v, err := r.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"p1"}]`), v)

	// overwrite under the same key
	require.NoError(t, r.Set(ctx, "cart", []byte(`[]`)))

	v, err = r.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cart_state`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "cart", []byte(`[]`)))
	require.NoError(t, r.Delete(ctx, "cart"))
	require.NoError(t, r.Delete(ctx, "cart"))

	v, err := r.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Nil(t, v)
}
