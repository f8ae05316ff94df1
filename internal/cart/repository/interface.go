package repository

import (
	"context"

	"sweet-shop/internal/cart"
)

// Repository stores one cart per session.
type Repository interface {
	// GetCart returns an empty cart for the session when none is stored.
	GetCart(ctx context.Context, sessionID string) (cart.Cart, error)
	// UpdateCart runs fn on the session's cart and stores the result unless fn fails.
	// Calls for the same session are serialized.
	UpdateCart(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) (cart.Cart, error)
	DeleteCart(ctx context.Context, sessionID string) error
}
