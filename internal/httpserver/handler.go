package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sweet-shop/internal/middleware"
	"sweet-shop/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{
		AdminKey:     srv.shop.AdminKey,
		CookieSecure: srv.environment == string(model.EnvironmentProduction),
		CookieMaxAge: int(srv.shop.CartSessionTTL.Seconds()),
	}, srv.metrics)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	if srv.metrics != nil {
		srv.gin.Use(mw.Metrics())
	}

	ctx := context.Background()
	if srv.shop.AdminKey == "" {
		srv.l.Warnf(ctx, "Admin key not set, inventory routes are open (environment: %s)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
// Every domain route resolves the browsing session first.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", mw.Session())

	catalogUC, err := srv.setupCatalogDomain(ctx, api, mw)
	if err != nil {
		return err
	}
	cartUC := srv.setupCartDomain(ctx, api, catalogUC)
	srv.setupCheckoutDomain(ctx, api, cartUC, catalogUC)

	return nil
}
