package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sweet-shop/internal/cart"
	cartRepo "sweet-shop/internal/cart/repository"
	cartMemory "sweet-shop/internal/cart/repository/memory"
	cartUC "sweet-shop/internal/cart/usecase"
	"sweet-shop/internal/catalog"
	catalogMemory "sweet-shop/internal/catalog/repository/memory"
	catalogUC "sweet-shop/internal/catalog/usecase"
	"sweet-shop/internal/checkout/repository"
	"sweet-shop/internal/checkout/repository/memory"
	"sweet-shop/internal/checkout/usecase"
	"sweet-shop/internal/middleware"
	"sweet-shop/internal/model"
	"sweet-shop/pkg/log"
)

const (
	sessionA = "0b8e7a3c-2f5d-4c61-8a9e-5d4b3c2a1f00"

	validAddress = `{"full_name":"Asha Rao","phone":"9876543210","address":"12 MG Road, Indiranagar",` +
		`"city":"Bengaluru","state":"Karnataka","pincode":"560038"}`
)

type env struct {
	catalog catalog.UseCase
	router  *gin.Engine
}

func setup(t *testing.T) env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	cat := catalogUC.New(catalogMemory.New(l), l)
	if _, err := cat.Seed(context.Background(), catalog.DefaultSeed()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	carts := cartUC.New(cartMemory.New(l, cartRepo.SessionOptions{}), cat, l)
	uc := usecase.New(memory.New(l, repository.SessionOptions{}), carts, cat, l, nil, usecase.Config{})
	mw := middleware.New(l, middleware.Config{}, nil)

	r := gin.New()
	api := r.Group("/api/v1", mw.Session())
	RegisterRoutes(api.Group("/checkout"), New(l, uc))

	// seed the cart through the use case, the cart routes live in another package
	api.POST("/test/cart/:item_id/:qty", func(c *gin.Context) {
		qty, _ := strconv.Atoi(c.Param("qty"))
		_, err := carts.AddItem(c.Request.Context(), middleware.GetScope(c), cartAddInput(c.Param("item_id"), qty))
		if err != nil {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusNoContent)
	})
	return env{catalog: cat, router: r}
}

type envelope struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors"`
	Data      json.RawMessage   `json:"data"`
}

type stateData struct {
	Step          string `json:"step"`
	PaymentMethod string `json:"payment_method"`
	Processing    bool   `json:"processing"`
	Address       struct {
		City string `json:"city"`
	} `json:"address"`
}

func (e env) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, sessionA)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var out envelope
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil && w.Code != http.StatusNoContent {
		t.Fatalf("%s %s: bad body %q", method, path, w.Body.String())
	}
	return w.Code, out
}

func decodeState(t *testing.T, raw json.RawMessage) stateData {
	t.Helper()
	var s stateData
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return s
}

func TestCheckoutFlow(t *testing.T) {
	e := setup(t)

	code, body := e.do(t, http.MethodPost, "/api/v1/checkout/begin", "")
	if code != http.StatusConflict || body.Message != "Your cart is empty" {
		t.Fatalf("begin on empty cart: %d %q", code, body.Message)
	}

	e.do(t, http.MethodPost, "/api/v1/test/cart/2/2", "")
	e.do(t, http.MethodPost, "/api/v1/test/cart/1/1", "")

	code, body = e.do(t, http.MethodPost, "/api/v1/checkout/begin", "")
	if code != http.StatusOK || decodeState(t, body.Data).Step != "address" {
		t.Fatalf("begin: %d %s", code, body.Data)
	}

	code, body = e.do(t, http.MethodPost, "/api/v1/checkout/address", `{"full_name":"A","phone":"123","pincode":"1"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("bad address: %d", code)
	}
	for _, field := range []string{"full_name", "phone", "address", "city", "state", "pincode"} {
		if body.Errors[field] == "" {
			t.Errorf("missing error for %s: %v", field, body.Errors)
		}
	}
	if _, ok := body.Errors["landmark"]; ok {
		t.Error("landmark is optional")
	}

	code, body = e.do(t, http.MethodPost, "/api/v1/checkout/address", validAddress)
	if s := decodeState(t, body.Data); code != http.StatusOK || s.Step != "payment" || s.PaymentMethod != "cod" {
		t.Fatalf("address: %d %+v", code, s)
	}

	code, _ = e.do(t, http.MethodPost, "/api/v1/checkout/payment", `{"method":"cheque"}`)
	if code != http.StatusBadRequest {
		t.Errorf("unknown method: %d", code)
	}
	code, body = e.do(t, http.MethodPost, "/api/v1/checkout/payment", `{"method":"card"}`)
	if s := decodeState(t, body.Data); code != http.StatusOK || s.PaymentMethod != "card" {
		t.Errorf("payment: %d %+v", code, s)
	}

	code, body = e.do(t, http.MethodPost, "/api/v1/checkout/place", "")
	if code != http.StatusOK || body.Message != orderPlacedMessage {
		t.Fatalf("place order: %d %q", code, body.Message)
	}
	var placed struct {
		Order struct {
			TotalItems    int     `json:"total_items"`
			TotalPrice    float64 `json:"total_price"`
			PaymentMethod string  `json:"payment_method"`
		} `json:"order"`
		State stateData `json:"state"`
	}
	json.Unmarshal(body.Data, &placed)
	if placed.Order.TotalItems != 3 || placed.Order.TotalPrice != 697 || placed.Order.PaymentMethod != "card" {
		t.Errorf("order: %+v", placed.Order)
	}
	if placed.State.Step != "completed" {
		t.Errorf("state: %+v", placed.State)
	}

	code, _ = e.do(t, http.MethodPost, "/api/v1/checkout/cancel", "")
	if code != http.StatusConflict {
		t.Errorf("cancel completed: %d", code)
	}
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	e := setup(t)
	e.do(t, http.MethodPost, "/api/v1/test/cart/8/10", "")
	e.do(t, http.MethodPost, "/api/v1/checkout/begin", "")
	e.do(t, http.MethodPost, "/api/v1/checkout/address", validAddress)

	if _, err := e.catalog.Purchase(context.Background(), catalog.PurchaseInput{ID: "8", Quantity: 6}); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	code, body := e.do(t, http.MethodPost, "/api/v1/checkout/place", "")
	if code != http.StatusConflict || body.Message != "Some items are out of stock" {
		t.Fatalf("place order: %d %q", code, body.Message)
	}
	if s := decodeState(t, body.Data); s.Step != "payment" || s.Processing {
		t.Errorf("state: %+v", s)
	}
	if out, _ := e.catalog.Detail(context.Background(), "8"); out.Item.Quantity != 9 {
		t.Errorf("stock = %d, want 9", out.Item.Quantity)
	}
}

func TestBackAndCancel(t *testing.T) {
	e := setup(t)
	e.do(t, http.MethodPost, "/api/v1/test/cart/4/1", "")
	e.do(t, http.MethodPost, "/api/v1/checkout/begin", "")

	code, _ := e.do(t, http.MethodPost, "/api/v1/checkout/back", "")
	if code != http.StatusConflict {
		t.Errorf("back from address: %d", code)
	}

	e.do(t, http.MethodPost, "/api/v1/checkout/address", validAddress)
	code, body := e.do(t, http.MethodPost, "/api/v1/checkout/back", "")
	if s := decodeState(t, body.Data); code != http.StatusOK || s.Step != "address" || s.Address.City != "Bengaluru" {
		t.Errorf("back: %d %+v", code, s)
	}

	code, body = e.do(t, http.MethodPost, "/api/v1/checkout/cancel", "")
	if s := decodeState(t, body.Data); code != http.StatusOK || s.Step != "closed" {
		t.Errorf("cancel: %d %+v", code, s)
	}

	code, body = e.do(t, http.MethodGet, "/api/v1/checkout", "")
	if s := decodeState(t, body.Data); code != http.StatusOK || s.Step != "closed" {
		t.Errorf("state: %d %+v", code, s)
	}
}

func TestMapError(t *testing.T) {
	h := New(log.NewNop(), nil)
	verr := &model.ValidationError{Fields: map[string]string{"city": "City is required"}}
	if got := h.mapError(verr).Error(); got != "Please fix the highlighted fields" {
		t.Errorf("validation message = %q", got)
	}
	if got := h.mapError(context.Canceled).Error(); got != "payment was interrupted" {
		t.Errorf("cancelled message = %q", got)
	}
}

func cartAddInput(itemID string, qty int) cart.AddItemInput {
	return cart.AddItemInput{ItemID: itemID, Quantity: qty}
}
