package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/catalog/repository/memory"
	"sweet-shop/internal/catalog/usecase"
	"sweet-shop/internal/middleware"
	"sweet-shop/pkg/log"
)

const testAdminKey = "secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(memory.New(l), l)
	if _, err := uc.Seed(context.Background(), catalog.DefaultSeed()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := New(l, uc)
	mw := middleware.New(l, middleware.Config{AdminKey: testAdminKey}, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterRoutes(api.Group("/catalog"), h)
	RegisterAdminRoutes(api.Group("/admin"), h, mw)
	return r
}

type envelope struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Errors    map[string]string `json:"errors"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string, admin bool) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(middleware.AdminKeyHeader, testAdminKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
	}
	return w.Code, env
}

func TestList(t *testing.T) {
	r := setupRouter(t)

	t.Run("price desc", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/api/v1/catalog/items?sort=price&order=desc", "", false)
		if code != http.StatusOK {
			t.Fatalf("status = %d", code)
		}
		var data struct {
			Items []struct {
				ID    string  `json:"id"`
				Price float64 `json:"price"`
			} `json:"items"`
			Total int `json:"total"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Total != 8 || data.Items[0].ID != "5" || data.Items[0].Price != 449 {
			t.Errorf("unexpected first item %+v (total %d)", data.Items[0], data.Total)
		}
	})

	t.Run("bad sort", func(t *testing.T) {
		code, _ := do(t, r, http.MethodGet, "/api/v1/catalog/items?sort=weight", "", false)
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/api/v1/catalog/items?category=Pastries", "", false)
		if code != http.StatusBadRequest || env.Errors["category"] == "" {
			t.Errorf("status = %d errors = %v", code, env.Errors)
		}
	})
}

func TestDetail_NotFound(t *testing.T) {
	r := setupRouter(t)
	code, _ := do(t, r, http.MethodGet, "/api/v1/catalog/items/999", "", false)
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestAdmin(t *testing.T) {
	r := setupRouter(t)

	t.Run("missing key", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/admin/items", `{}`, false)
		if code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", code)
		}
	})

	t.Run("create validation", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/admin/items", `{"name":"A","category":"Fudge","price":0,"quantity":1}`, true)
		if code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", code)
		}
		if env.Errors["name"] == "" || env.Errors["price"] == "" {
			t.Errorf("missing field errors: %v", env.Errors)
		}
	})

	t.Run("create", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/admin/items", `{"name":"Toffee","category":"Candies","price":"2.50","quantity":10}`, true)
		if code != http.StatusOK {
			t.Fatalf("status = %d (%s)", code, env.Message)
		}
		if env.Message != "Toffee added successfully!" {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("purchase over stock", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/admin/items/8/purchase", `{"quantity":16}`, true)
		if code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", code)
		}
		if env.Message != "Only 15 Red Velvet Cupcake available in stock" {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("purchase zero", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/admin/items/8/purchase", `{"quantity":0}`, true)
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})

	t.Run("restock then update then delete", func(t *testing.T) {
		if code, env := do(t, r, http.MethodPost, "/api/v1/admin/items/8/restock", `{"quantity":5}`, true); code != http.StatusOK || env.Message != "Restocked 5 Red Velvet Cupcake" {
			t.Fatalf("restock: %d %q", code, env.Message)
		}
		if code, env := do(t, r, http.MethodPut, "/api/v1/admin/items/8", `{"description":"Now with extra frosting"}`, true); code != http.StatusOK || env.Message != "Sweet updated successfully!" {
			t.Fatalf("update: %d %q", code, env.Message)
		}
		if code, env := do(t, r, http.MethodDelete, "/api/v1/admin/items/8", "", true); code != http.StatusOK || env.Message != "Red Velvet Cupcake removed from inventory" {
			t.Fatalf("delete: %d %q", code, env.Message)
		}
		if code, _ := do(t, r, http.MethodDelete, "/api/v1/admin/items/8", "", true); code != http.StatusNotFound {
			t.Errorf("second delete: %d, want 404", code)
		}
	})
}

func TestCategories(t *testing.T) {
	r := setupRouter(t)
	code, env := do(t, r, http.MethodGet, "/api/v1/catalog/categories", "", false)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var data categoriesResp
	json.Unmarshal(env.Data, &data)
	if len(data.Categories) != 6 || data.Categories[0] != catalog.CategoryAll {
		t.Errorf("unexpected categories %v", data.Categories)
	}
}
