package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
)

func (c *Cart) lineIndex(itemID string) int {
	for i, l := range c.Lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// AddLine adds qty of item, capped by item.Quantity (the live stock).
// On rejection the cart is left untouched. A successful add opens the cart.
func (c *Cart) AddLine(item catalog.Item, qty int) (model.Notice, error) {
	if qty < 1 {
		return model.Notice{}, ErrInvalidQuantity
	}

	if i := c.lineIndex(item.ID); i >= 0 {
		if qty > item.Quantity-c.Lines[i].Quantity {
			return c.reject(&LimitError{Name: item.Name, Available: item.Quantity})
		}
		c.Lines[i].Quantity += qty
		c.IsOpen = true
		return model.Info(fmt.Sprintf("Updated %s quantity in cart", item.Name)), nil
	}

	if qty > item.Quantity {
		return c.reject(&LimitError{Name: item.Name, Available: item.Quantity})
	}
	c.Lines = append(c.Lines, Line{Item: item, Quantity: qty})
	c.IsOpen = true
	return model.Info(fmt.Sprintf("Added %s to cart", item.Name)), nil
}

func (c *Cart) reject(err *LimitError) (model.Notice, error) {
	return model.Warning(err.Error()), err
}

// RemoveLine deletes the line for itemID. removed is false when there was none.
func (c *Cart) RemoveLine(itemID string) (notice model.Notice, removed bool) {
	i := c.lineIndex(itemID)
	if i < 0 {
		return model.Notice{}, false
	}
	name := c.Lines[i].Item.Name
	c.Lines = append(c.Lines[:i:i], c.Lines[i+1:]...)
	return model.Info(fmt.Sprintf("Removed %s from cart", name)), true
}

// SetLineQuantity sets an existing line to qty, checked against available.
// qty <= 0 removes the line; an unknown line is a no-op.
func (c *Cart) SetLineQuantity(itemID string, qty, available int) (model.Notice, error) {
	if qty <= 0 {
		notice, _ := c.RemoveLine(itemID)
		return notice, nil
	}

	i := c.lineIndex(itemID)
	if i < 0 {
		return model.Notice{}, nil
	}
	if qty > available {
		return c.reject(&LimitError{Available: available})
	}
	c.Lines[i].Quantity = qty
	return model.Notice{}, nil
}

// Deduct takes bought quantities off the matching lines and drops lines that
// reach zero. Lines not in bought are kept.
func (c *Cart) Deduct(bought []Line) {
	for _, b := range bought {
		i := c.lineIndex(b.Item.ID)
		if i < 0 {
			continue
		}
		if c.Lines[i].Quantity <= b.Quantity {
			c.Lines = append(c.Lines[:i:i], c.Lines[i+1:]...)
			continue
		}
		c.Lines[i].Quantity -= b.Quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() model.Notice {
	c.Lines = nil
	return model.Info("Cart cleared")
}

func (c *Cart) Open()  { c.IsOpen = true }
func (c *Cart) Close() { c.IsOpen = false }

// Totals sums quantities and line subtotals at the snapshot price.
func (c Cart) Totals() Totals {
	t := Totals{TotalPrice: decimal.Zero}
	for _, l := range c.Lines {
		t.TotalItems += l.Quantity
		t.TotalPrice = t.TotalPrice.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return t
}

// Clone returns a copy whose Lines can be mutated independently.
func (c Cart) Clone() Cart {
	if c.Lines != nil {
		c.Lines = append([]Line(nil), c.Lines...)
	}
	return c
}
