package http

import (
	"sweet-shop/internal/checkout"
	"sweet-shop/internal/model"
	"sweet-shop/pkg/response"
)

// --- Request DTOs ---

type addressReq struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

func (r addressReq) toInput() checkout.SubmitAddressInput {
	return checkout.SubmitAddressInput{Address: checkout.Address{
		FullName: r.FullName,
		Phone:    r.Phone,
		Address:  r.Address,
		Landmark: r.Landmark,
		City:     r.City,
		State:    r.State,
		Pincode:  r.Pincode,
	}}
}

type paymentReq struct {
	Method string `json:"method" binding:"required"`
}

func (r paymentReq) toInput() checkout.SelectPaymentInput {
	return checkout.SelectPaymentInput{Method: checkout.PaymentMethod(r.Method)}
}

// --- Response DTOs ---

type addressResp struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Landmark string `json:"landmark,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type orderLineResp struct {
	ItemID    string         `json:"item_id"`
	Name      string         `json:"name"`
	UnitPrice response.Money `json:"unit_price" swaggertype:"number"`
	Quantity  int            `json:"quantity"`
}

type orderResp struct {
	ID            string            `json:"id"`
	Lines         []orderLineResp   `json:"lines"`
	TotalItems    int               `json:"total_items"`
	TotalPrice    response.Money    `json:"total_price" swaggertype:"number"`
	Address       addressResp       `json:"address"`
	PaymentMethod string            `json:"payment_method"`
	PlacedAt      response.DateTime `json:"placed_at" swaggertype:"string"`
}

type stateResp struct {
	SessionID     string      `json:"session_id"`
	Step          string      `json:"step"`
	Address       addressResp `json:"address"`
	PaymentMethod string      `json:"payment_method"`
	Processing    bool        `json:"processing"`
	LastOrder     *orderResp  `json:"last_order,omitempty"`
}

type placeOrderResp struct {
	Order   orderResp      `json:"order"`
	State   stateResp      `json:"state"`
	Notices []model.Notice `json:"notices"`
}

func newAddressResp(a checkout.Address) addressResp {
	return addressResp{
		FullName: a.FullName,
		Phone:    a.Phone,
		Address:  a.Address,
		Landmark: a.Landmark,
		City:     a.City,
		State:    a.State,
		Pincode:  a.Pincode,
	}
}

func newOrderResp(o checkout.Order) orderResp {
	lines := make([]orderLineResp, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = orderLineResp{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			UnitPrice: response.Money(l.Item.Price),
			Quantity:  l.Quantity,
		}
	}
	return orderResp{
		ID:            o.ID,
		Lines:         lines,
		TotalItems:    o.TotalItems,
		TotalPrice:    response.Money(o.TotalPrice),
		Address:       newAddressResp(o.Address),
		PaymentMethod: string(o.PaymentMethod),
		PlacedAt:      response.DateTime(o.PlacedAt),
	}
}

func (h *handler) newStateResp(s checkout.Session) stateResp {
	resp := stateResp{
		SessionID:     s.SessionID,
		Step:          string(s.Step),
		Address:       newAddressResp(s.Address),
		PaymentMethod: string(s.PaymentMethod),
		Processing:    s.Processing,
	}
	if s.LastOrder != nil {
		o := newOrderResp(*s.LastOrder)
		resp.LastOrder = &o
	}
	return resp
}

func (h *handler) newPlaceOrderResp(out checkout.PlaceOrderOutput) placeOrderResp {
	return placeOrderResp{
		Order:   newOrderResp(out.Order),
		State:   h.newStateResp(out.Session),
		Notices: out.Notices,
	}
}
