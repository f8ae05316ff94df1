package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
)

const itemColumns = `id, name, category, price, quantity, description, created_at, updated_at`

const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (catalog.Item, error) {
	var (
		item     catalog.Item
		category string
	)
	err := s.Scan(&item.ID, &item.Name, &category, &item.Price, &item.Quantity,
		&item.Description, &item.CreatedAt, &item.UpdatedAt)
	item.Category = catalog.Category(category)
	return item, err
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	const query = `
		INSERT INTO catalog_items (id, name, category, price, quantity, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Name, opt.Category, opt.Price, opt.Quantity, opt.Description))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return catalog.Item{}, repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return catalog.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem returns a zero-value Item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (catalog.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM catalog_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return catalog.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns every item in insertion order.
func (r *implRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM catalog_items ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []catalog.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (catalog.Item, error) {
	const query = `
		UPDATE catalog_items
		SET name = $1, category = $2, price = $3, quantity = COALESCE($4, quantity),
			description = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + itemColumns

	var qty sql.NullInt64
	if opt.Quantity != nil {
		qty = sql.NullInt64{Int64: int64(*opt.Quantity), Valid: true}
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Category, opt.Price, qty, opt.Description, time.Now(), opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return catalog.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM catalog_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountItems"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
