package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the cart routes under rg (mounted at /cart).
// rg must run behind middleware.Session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Get)
	rg.DELETE("", h.Clear)
	rg.POST("/open", h.Open)
	rg.POST("/close", h.Close)

	lines := rg.Group("/lines")
	{
		lines.POST("", h.AddLine)
		lines.PUT("/:item_id", h.UpdateLine)
		lines.DELETE("/:item_id", h.RemoveLine)
	}
}
