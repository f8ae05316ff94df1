package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"sweet-shop/internal/cart"
	cartHTTP "sweet-shop/internal/cart/delivery/http"
	cartRepo "sweet-shop/internal/cart/repository"
	cartMemory "sweet-shop/internal/cart/repository/memory"
	cartUC "sweet-shop/internal/cart/usecase"
	"sweet-shop/internal/catalog"
	catalogHTTP "sweet-shop/internal/catalog/delivery/http"
	catalogRepo "sweet-shop/internal/catalog/repository"
	catalogMemory "sweet-shop/internal/catalog/repository/memory"
	catalogPostgre "sweet-shop/internal/catalog/repository/postgre"
	catalogUC "sweet-shop/internal/catalog/usecase"
	checkoutHTTP "sweet-shop/internal/checkout/delivery/http"
	checkoutRepo "sweet-shop/internal/checkout/repository"
	checkoutMemory "sweet-shop/internal/checkout/repository/memory"
	checkoutUC "sweet-shop/internal/checkout/usecase"
	"sweet-shop/internal/middleware"
)

// setupCatalogDomain builds the catalog on the configured storage and
// registers /api/v1/catalog and /api/v1/admin.
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (catalog.UseCase, error) {
	// 1. Repository
	var repo catalogRepo.Repository
	switch srv.storage {
	case StoragePostgres:
		if err := catalogPostgre.Migrate(ctx, srv.postgresDB); err != nil {
			return nil, fmt.Errorf("httpserver.setupCatalogDomain: %w", err)
		}
		repo = catalogPostgre.New(srv.postgresDB, srv.l)
	default:
		repo = catalogMemory.New(srv.l)
	}

	// 2. UseCase
	uc := catalogUC.New(repo, srv.l)
	if srv.shop.SeedCatalog {
		n, err := uc.Seed(ctx, catalog.DefaultSeed())
		if err != nil {
			return nil, fmt.Errorf("httpserver.setupCatalogDomain seed: %w", err)
		}
		if n > 0 {
			srv.l.Infof(ctx, "Catalog seeded with %d items", n)
		}
	}

	// 3. HTTP Handler
	h := catalogHTTP.New(srv.l, uc)

	// 4. Routes
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h)
	catalogHTTP.RegisterAdminRoutes(api.Group("/admin"), h, mw)

	srv.l.Infof(ctx, "Catalog domain registered (storage: %s)", srv.storage)
	return uc, nil
}

// setupCartDomain registers /api/v1/cart.
func (srv HTTPServer) setupCartDomain(ctx context.Context, api *gin.RouterGroup, items cart.Catalog) cart.UseCase {
	repo := cartMemory.New(srv.l, cartRepo.SessionOptions{
		MaxSessions: srv.shop.MaxSessions,
		TTL:         srv.shop.CartSessionTTL,
	})
	uc := cartUC.New(repo, items, srv.l)
	cartHTTP.RegisterRoutes(api.Group("/cart"), cartHTTP.New(srv.l, uc))

	srv.l.Infof(ctx, "Cart domain registered")
	return uc
}

// setupCheckoutDomain registers /api/v1/checkout.
func (srv HTTPServer) setupCheckoutDomain(ctx context.Context, api *gin.RouterGroup, carts cart.UseCase, items catalog.UseCase) {
	repo := checkoutMemory.New(srv.l, checkoutRepo.SessionOptions{
		MaxSessions: srv.shop.MaxSessions,
		TTL:         srv.shop.CartSessionTTL,
	})
	uc := checkoutUC.New(repo, carts, items, srv.l, srv.metrics, checkoutUC.Config{
		PaymentDelay:    srv.shop.PaymentDelay,
		ResetDelay:      srv.shop.ResetDelay,
		RateLimitPerMin: srv.shop.RateLimitPerMin,
	})
	checkoutHTTP.RegisterRoutes(api.Group("/checkout"), checkoutHTTP.New(srv.l, uc))

	srv.l.Infof(ctx, "Checkout domain registered")
}
