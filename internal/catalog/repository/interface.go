package repository

import (
	"context"

	"sweet-shop/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
	StockRepository
}

// ItemRepository defines data access for the Item entity.
// Lookups return a zero-value Item (ID == "") when nothing matches.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (catalog.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (catalog.Item, error)
	ListItems(ctx context.Context) ([]catalog.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (catalog.Item, error)
	DeleteItem(ctx context.Context, id string) error
	CountItems(ctx context.Context) (int, error)
}

// StockRepository applies quantity deltas. A delta that would take any
// quantity below zero fails with ErrStockConflict and changes nothing.
// AdjustStockBatch applies opts in the order given; callers pass them sorted
// by ID so that concurrent batches take row locks in one order.
type StockRepository interface {
	AdjustStock(ctx context.Context, opt AdjustStockOptions) (catalog.Item, error)
	AdjustStockBatch(ctx context.Context, opts []AdjustStockOptions) ([]catalog.Item, error)
}
