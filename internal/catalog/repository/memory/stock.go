package memory

import (
	"context"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
)

// AdjustStock applies a single delta under the write lock.
func (r *implRepository) AdjustStock(ctx context.Context, opt repo.AdjustStockOptions) (catalog.Item, error) {
	items, err := r.AdjustStockBatch(ctx, []repo.AdjustStockOptions{opt})
	if err != nil {
		return catalog.Item{}, err
	}
	return items[0], nil
}

// AdjustStockBatch checks every delta against current stock and applies all of
// them, or none. Deltas for the same id accumulate.
func (r *implRepository) AdjustStockBatch(ctx context.Context, opts []repo.AdjustStockOptions) ([]catalog.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]int, len(opts))
	for _, opt := range opts {
		item, ok := r.items[opt.ID]
		if !ok {
			return nil, repo.ErrStockConflict
		}
		q, seen := next[opt.ID]
		if !seen {
			q = item.Quantity
		}
		q += opt.Delta
		if q < 0 || q > catalog.MaxQuantity {
			r.l.Debugf(ctx, "%s: %s would drop to %d", r.dsn("AdjustStockBatch"), opt.ID, q)
			return nil, repo.ErrStockConflict
		}
		next[opt.ID] = q
	}

	now := r.now()
	out := make([]catalog.Item, 0, len(opts))
	for _, opt := range opts {
		item := r.items[opt.ID]
		item.Quantity = next[opt.ID]
		item.UpdatedAt = now
		r.items[opt.ID] = item
		out = append(out, item)
	}
	return out, nil
}
