package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
)

func (r *implRepository) AdjustStock(ctx context.Context, opt repo.AdjustStockOptions) (catalog.Item, error) {
	items, err := r.AdjustStockBatch(ctx, []repo.AdjustStockOptions{opt})
	if err != nil {
		return catalog.Item{}, err
	}
	return items[0], nil
}

// AdjustStockBatch applies all deltas in one transaction. Each UPDATE is
// conditional on the resulting quantity staying non-negative; the first
// miss rolls everything back.
func (r *implRepository) AdjustStockBatch(ctx context.Context, opts []repo.AdjustStockOptions) ([]catalog.Item, error) {
	const query = `
		UPDATE catalog_items
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND quantity + $1 >= 0
		RETURNING ` + itemColumns

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("AdjustStockBatch"), err)
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	out := make([]catalog.Item, 0, len(opts))
	for _, opt := range opts {
		item, err := scanItem(tx.QueryRowContext(ctx, query, opt.Delta, opt.ID))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrStockConflict
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("AdjustStockBatch"), err)
			return nil, repo.ErrFailedToUpdate
		}
		out = append(out, item)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("AdjustStockBatch"), err)
		return nil, repo.ErrFailedToUpdate
	}
	return out, nil
}
