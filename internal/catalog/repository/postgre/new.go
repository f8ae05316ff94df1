package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"sweet-shop/internal/catalog/repository"
	"sweet-shop/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed catalog Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}

const schema = `
CREATE TABLE IF NOT EXISTS catalog_items (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	price       NUMERIC(12, 2) NOT NULL CHECK (price > 0),
	quantity    INTEGER NOT NULL CHECK (quantity >= 0),
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate creates the catalog table when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("catalog/repository/postgre.Migrate: %w", err)
	}
	return nil
}
