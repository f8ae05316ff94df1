package repository

import "github.com/shopspring/decimal"

// CreateItemOptions holds parameters for inserting a new Item.
// ID is assigned by the caller.
type CreateItemOptions struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Description string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// UpdateItemOptions holds the replacement values for an existing Item.
// A nil Quantity keeps the stored stock, so concurrent purchases are not undone.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    *int
	Description string
}

// AdjustStockOptions moves an Item's quantity by Delta (negative to debit).
type AdjustStockOptions struct {
	ID    string
	Delta int
}
