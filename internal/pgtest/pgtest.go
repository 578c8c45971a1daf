// Package pgtest prepares a migrated Postgres database for integration tests.
// Tests are skipped unless TEST_POSTGRES_DSN is set.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/SergeyBogomolovv/shoppy/internal/migrate"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const dsnEnv = "TEST_POSTGRES_DSN"

func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s is not set", dsnEnv)
	}

	require.NoError(t, migrate.Up(context.Background(), dsn))

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// Fixtures inserts rows that tests reference by id.
type Fixtures struct {
	db *sqlx.DB
	t  *testing.T
}

func NewFixtures(t *testing.T, db *sqlx.DB) *Fixtures {
	return &Fixtures{db: db, t: t}
}

func (f *Fixtures) User() int64 {
	f.t.Helper()
	name := "user-" + uuid.NewString()

	var id int64
	err := f.db.Get(&id, `INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id`, name, name+"@test.local")
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) Product(price string, currency string) int64 {
	f.t.Helper()
	suffix := uuid.NewString()

	var brandID, categoryID, id int64
	require.NoError(f.t, f.db.Get(&brandID, `INSERT INTO brands (name) VALUES ($1) RETURNING id`, "brand-"+suffix))
	require.NoError(f.t, f.db.Get(&categoryID, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, "category-"+suffix))
	err := f.db.Get(&id, `
		INSERT INTO products (title, description, price, price_currency, brand_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		"product-"+suffix, "test product", decimal.RequireFromString(price), currency, brandID, categoryID,
	)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) SetPrice(productID int64, price string) {
	f.t.Helper()
	_, err := f.db.Exec(`UPDATE products SET price = $1 WHERE id = $2`, decimal.RequireFromString(price), productID)
	require.NoError(f.t, err)
}

func (f *Fixtures) Count(query string, args ...any) int {
	f.t.Helper()
	var n int
	require.NoError(f.t, f.db.Get(&n, query, args...), fmt.Sprintf("count: %s", query))
	return n
}
