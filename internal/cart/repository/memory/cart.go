package memory

import (
	"context"

	"sweet-shop/internal/cart"
)

func (r *implRepository) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	c, ok := r.carts.Get(sessionID)
	if !ok {
		return cart.Cart{SessionID: sessionID}, nil
	}
	return c.Clone(), nil
}

func (r *implRepository) UpdateCart(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) (cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts.Get(sessionID)
	if !ok {
		c = cart.Cart{SessionID: sessionID}
	}
	c = c.Clone()

	if err := fn(&c); err != nil {
		return cart.Cart{}, err
	}

	if evicted := r.carts.Add(sessionID, c); evicted {
		r.l.Debugf(ctx, "%s: evicted oldest cart to make room", r.dsn("UpdateCart"))
	}
	return c.Clone(), nil
}

func (r *implRepository) DeleteCart(ctx context.Context, sessionID string) error {
	r.carts.Remove(sessionID)
	return nil
}
