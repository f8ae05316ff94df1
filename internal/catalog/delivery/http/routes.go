package http

import (
	"github.com/gin-gonic/gin"

	"sweet-shop/internal/middleware"
)

// RegisterRoutes maps the public browsing routes under rg (mounted at /catalog).
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/items", h.List)
	rg.GET("/items/:id", h.Detail)
	rg.GET("/categories", h.Categories)
}

// RegisterAdminRoutes maps the inventory routes under rg (mounted at /admin).
// Every route requires the admin key.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.AdminAuth())
	{
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/purchase", h.Purchase)
		items.POST("/:id/restock", h.Restock)
	}
}
