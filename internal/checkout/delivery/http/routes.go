package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the checkout routes under rg (mounted at /checkout).
// rg must run behind middleware.Session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.State)
	rg.POST("/begin", h.Begin)
	rg.POST("/address", h.SubmitAddress)
	rg.POST("/payment", h.SelectPayment)
	rg.POST("/back", h.Back)
	rg.POST("/place", h.PlaceOrder)
	rg.POST("/cancel", h.Cancel)
}
