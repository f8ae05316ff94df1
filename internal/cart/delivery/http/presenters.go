package http

import (
	"sweet-shop/internal/cart"
	"sweet-shop/internal/model"
	"sweet-shop/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity *int   `json:"quantity"`
}

func (r addReq) toInput() cart.AddItemInput {
	qty := 1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	return cart.AddItemInput{ItemID: r.ItemID, Quantity: qty}
}

type updateReq struct {
	ItemID   string `json:"-"`
	Quantity int    `json:"quantity"`
}

func (r updateReq) toInput() cart.UpdateQuantityInput {
	return cart.UpdateQuantityInput{ItemID: r.ItemID, Quantity: r.Quantity}
}

// --- Response DTOs ---

type lineResp struct {
	ItemID    string         `json:"item_id"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	UnitPrice response.Money `json:"unit_price" swaggertype:"number"`
	Quantity  int            `json:"quantity"`
	Subtotal  response.Money `json:"subtotal" swaggertype:"number"`
}

type cartResp struct {
	SessionID  string         `json:"session_id"`
	Lines      []lineResp     `json:"lines"`
	IsOpen     bool           `json:"is_open"`
	TotalItems int            `json:"total_items"`
	TotalPrice response.Money `json:"total_price" swaggertype:"number"`
	Notice     *model.Notice  `json:"notice,omitempty"`
}

func (h *handler) newCartResp(out cart.CartOutput) cartResp {
	lines := make([]lineResp, len(out.Cart.Lines))
	for i, l := range out.Cart.Lines {
		lines[i] = lineResp{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			Category:  string(l.Item.Category),
			UnitPrice: response.Money(l.Item.Price),
			Quantity:  l.Quantity,
			Subtotal:  response.Money(l.Item.Price.Mul(decimalFromInt(l.Quantity))),
		}
	}
	resp := cartResp{
		SessionID:  out.Cart.SessionID,
		Lines:      lines,
		IsOpen:     out.Cart.IsOpen,
		TotalItems: out.Totals.TotalItems,
		TotalPrice: response.Money(out.Totals.TotalPrice),
	}
	if out.Notice.Message != "" {
		n := out.Notice
		resp.Notice = &n
	}
	return resp
}
