package cart

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientStock = errors.New("not enough stock for cart quantity")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrItemNotFound      = errors.New("item not found")
)

// LimitError rejects a cart quantity above the item's stock.
// It matches ErrInsufficientStock through errors.Is.
type LimitError struct {
	Name      string
	Available int
}

func (e *LimitError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("Only %d available", e.Available)
	}
	return fmt.Sprintf("Only %d %s available", e.Available, e.Name)
}

func (e *LimitError) Unwrap() error { return ErrInsufficientStock }
