package usecase

import (
	"context"
	"errors"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (cart.CartOutput, error) {
	c, err := uc.repo.GetCart(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "cart/usecase.Get GetCart: %v", err)
		return cart.CartOutput{}, err
	}
	return output(c, model.Notice{}), nil
}

// AddItem adds a line for the item, checked against its current stock.
func (uc *implUseCase) AddItem(ctx context.Context, sc model.Scope, input cart.AddItemInput) (cart.CartOutput, error) {
	qty := input.Quantity
	if qty < 1 {
		return cart.CartOutput{}, cart.ErrInvalidQuantity
	}

	item, err := uc.liveItem(ctx, input.ItemID)
	if err != nil {
		return cart.CartOutput{}, err
	}

	return uc.mutate(ctx, sc, "AddItem", func(c *cart.Cart) (model.Notice, error) {
		return c.AddLine(item, qty)
	})
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
func (uc *implUseCase) UpdateQuantity(ctx context.Context, sc model.Scope, input cart.UpdateQuantityInput) (cart.CartOutput, error) {
	if input.Quantity <= 0 {
		return uc.RemoveItem(ctx, sc, input.ItemID)
	}

	available := 0
	item, err := uc.liveItem(ctx, input.ItemID)
	switch {
	case err == nil:
		available = item.Quantity
	case errors.Is(err, cart.ErrItemNotFound):
		// gone from the catalog, nothing can be kept in the cart
	default:
		return cart.CartOutput{}, err
	}

	return uc.mutate(ctx, sc, "UpdateQuantity", func(c *cart.Cart) (model.Notice, error) {
		return c.SetLineQuantity(input.ItemID, input.Quantity, available)
	})
}

func (uc *implUseCase) RemoveItem(ctx context.Context, sc model.Scope, itemID string) (cart.CartOutput, error) {
	return uc.mutate(ctx, sc, "RemoveItem", func(c *cart.Cart) (model.Notice, error) {
		notice, _ := c.RemoveLine(itemID)
		return notice, nil
	})
}

func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) (cart.CartOutput, error) {
	return uc.mutate(ctx, sc, "Clear", func(c *cart.Cart) (model.Notice, error) {
		return c.Clear(), nil
	})
}

func (uc *implUseCase) Deduct(ctx context.Context, sc model.Scope, bought []cart.Line) (cart.CartOutput, error) {
	return uc.mutate(ctx, sc, "Deduct", func(c *cart.Cart) (model.Notice, error) {
		c.Deduct(bought)
		return model.Notice{}, nil
	})
}

func (uc *implUseCase) Open(ctx context.Context, sc model.Scope) (cart.CartOutput, error) {
	return uc.mutate(ctx, sc, "Open", func(c *cart.Cart) (model.Notice, error) {
		c.Open()
		return model.Notice{}, nil
	})
}

func (uc *implUseCase) Close(ctx context.Context, sc model.Scope) (cart.CartOutput, error) {
	return uc.mutate(ctx, sc, "Close", func(c *cart.Cart) (model.Notice, error) {
		c.Close()
		return model.Notice{}, nil
	})
}

// mutate applies fn atomically to the session cart. A rejected change
// returns the unchanged cart alongside the warning notice and the error.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, method string, fn func(c *cart.Cart) (model.Notice, error)) (cart.CartOutput, error) {
	var notice model.Notice
	c, err := uc.repo.UpdateCart(ctx, sc.SessionID, func(c *cart.Cart) error {
		var ferr error
		notice, ferr = fn(c)
		if ferr == nil {
			c.UpdatedAt = uc.now()
		}
		return ferr
	})
	if err != nil {
		if errors.Is(err, cart.ErrInsufficientStock) || errors.Is(err, cart.ErrInvalidQuantity) {
			current, gerr := uc.repo.GetCart(ctx, sc.SessionID)
			if gerr != nil {
				return cart.CartOutput{}, gerr
			}
			return output(current, notice), err
		}
		uc.l.Errorf(ctx, "cart/usecase.%s UpdateCart: %v", method, err)
		return cart.CartOutput{}, err
	}
	return output(c, notice), nil
}

func (uc *implUseCase) liveItem(ctx context.Context, id string) (catalog.Item, error) {
	out, err := uc.catalog.Detail(ctx, id)
	if errors.Is(err, catalog.ErrItemNotFound) {
		return catalog.Item{}, cart.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "cart/usecase.liveItem Detail: %v", err)
		return catalog.Item{}, err
	}
	return out.Item, nil
}

func output(c cart.Cart, notice model.Notice) cart.CartOutput {
	return cart.CartOutput{Cart: c, Totals: c.Totals(), Notice: notice}
}
