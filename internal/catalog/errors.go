package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidSort       = errors.New("invalid sort field or order")
	ErrEmptyPurchase     = errors.New("purchase has no lines")
)

// StockError reports which item could not cover the requested quantity.
// It matches ErrInsufficientStock through errors.Is.
type StockError struct {
	ItemID    string
	Name      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Only %d %s available in stock", e.Available, e.Name)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }
