package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sweet-shop/internal/cart/repository"
	"sweet-shop/internal/cart/repository/memory"
	"sweet-shop/internal/cart/usecase"
	"sweet-shop/internal/catalog"
	catalogMemory "sweet-shop/internal/catalog/repository/memory"
	catalogUC "sweet-shop/internal/catalog/usecase"
	"sweet-shop/internal/middleware"
	"sweet-shop/pkg/log"
)

const sessionA = "6f1c1a52-7d0f-4a5e-9f0b-3b8f0c7f2a11"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	cat := catalogUC.New(catalogMemory.New(l), l)
	if _, err := cat.Seed(context.Background(), catalog.DefaultSeed()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := usecase.New(memory.New(l, repository.SessionOptions{TTL: time.Hour}), cat, l)
	mw := middleware.New(l, middleware.Config{}, nil)

	r := gin.New()
	api := r.Group("/api/v1", mw.Session())
	RegisterRoutes(api.Group("/cart"), New(l, uc))
	return r
}

type cartEnvelope struct {
	Message string   `json:"message"`
	Data    cartData `json:"data"`
}

type cartData struct {
	SessionID  string  `json:"session_id"`
	IsOpen     bool    `json:"is_open"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
	Lines      []struct {
		ItemID   string  `json:"item_id"`
		Quantity int     `json:"quantity"`
		Subtotal float64 `json:"subtotal"`
	} `json:"lines"`
}

func do(t *testing.T, r *gin.Engine, method, path, body, session string) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env cartEnvelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCartFlow(t *testing.T) {
	r := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/cart/lines", `{"item_id":"2","quantity":2}`, sessionA)
	if w.Code != http.StatusOK || env.Message != "Added Strawberry Macaron to cart" {
		t.Fatalf("add: %d %q", w.Code, env.Message)
	}
	w, env = do(t, r, http.MethodPost, "/api/v1/cart/lines", `{"item_id":"1"}`, sessionA)
	if w.Code != http.StatusOK {
		t.Fatalf("add default qty: %d", w.Code)
	}
	if env.Data.TotalItems != 3 || env.Data.TotalPrice != 697 || !env.Data.IsOpen {
		t.Errorf("totals: %+v", env.Data)
	}

	w, _ = do(t, r, http.MethodPut, "/api/v1/cart/lines/1", `{"quantity":51}`, sessionA)
	if w.Code != http.StatusConflict {
		t.Errorf("over stock set: %d, want 409", w.Code)
	}

	_, env = do(t, r, http.MethodPut, "/api/v1/cart/lines/1", `{"quantity":0}`, sessionA)
	if len(env.Data.Lines) != 1 || env.Message != "Removed Chocolate Truffle from cart" {
		t.Errorf("remove via zero: %+v %q", env.Data.Lines, env.Message)
	}

	_, env = do(t, r, http.MethodDelete, "/api/v1/cart", "", sessionA)
	if env.Message != "Cart cleared" || env.Data.TotalItems != 0 {
		t.Errorf("clear: %q %+v", env.Message, env.Data)
	}
}

func TestSessionIssuedWhenMissing(t *testing.T) {
	r := setupRouter(t)
	w, env := do(t, r, http.MethodGet, "/api/v1/cart", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	sid := w.Header().Get(middleware.SessionHeader)
	if sid == "" || env.Data.SessionID != sid {
		t.Errorf("header %q body %q", sid, env.Data.SessionID)
	}
}

func TestAddErrors(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing item id", `{}`, http.StatusBadRequest},
		{"unknown item", `{"item_id":"404"}`, http.StatusNotFound},
		{"zero quantity", `{"item_id":"1","quantity":0}`, http.StatusBadRequest},
		{"over stock", `{"item_id":"8","quantity":16}`, http.StatusConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := do(t, r, http.MethodPost, "/api/v1/cart/lines", tc.body, sessionA)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
