package http

import (
	"github.com/gin-gonic/gin"

	"sweet-shop/internal/middleware"
	"sweet-shop/pkg/response"
)

// Get godoc
// @Summary     Show the session cart
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string false "Session id (issued when absent)"
// @Success     200 {object} cartResp
// @Router      /api/v1/cart [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newCartResp(output))
}

// AddLine godoc
// @Summary     Add an item to the cart
// @Description Quantity defaults to 1. Rejected with 409 when the cart would hold more than the stock.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Param       body         body   addReq true  "Line"
// @Success     200 {object} cartResp
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     409 {object} response.Resp "Not enough stock"
// @Router      /api/v1/cart/lines [POST]
func (h *handler) AddLine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddItem(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OKWithMessage(c, output.Notice.Message, h.newCartResp(output))
}

// UpdateLine godoc
// @Summary     Set a line quantity
// @Description Zero or less removes the line.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string    false "Session id"
// @Param       item_id      path   string    true  "Item ID"
// @Param       body         body   updateReq true  "Quantity"
// @Success     200 {object} cartResp
// @Failure     409 {object} response.Resp "Not enough stock"
// @Router      /api/v1/cart/lines/{item_id} [PUT]
func (h *handler) UpdateLine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateQuantity(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OKWithMessage(c, output.Notice.Message, h.newCartResp(output))
}

// RemoveLine godoc
// @Summary     Remove a line
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Param       item_id      path   string true  "Item ID"
// @Success     200 {object} cartResp
// @Router      /api/v1/cart/lines/{item_id} [DELETE]
func (h *handler) RemoveLine(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RemoveItem(ctx, middleware.GetScope(c), c.Param("item_id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OKWithMessage(c, output.Notice.Message, h.newCartResp(output))
}

// Clear godoc
// @Summary     Empty the cart
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} cartResp
// @Router      /api/v1/cart [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Clear(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OKWithMessage(c, output.Notice.Message, h.newCartResp(output))
}

// Open godoc
// @Summary     Show the cart drawer
// @Tags        Cart
// @Produce     json
// @Success     200 {object} cartResp
// @Router      /api/v1/cart/open [POST]
func (h *handler) Open(c *gin.Context) {
	output, err := h.uc.Open(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newCartResp(output))
}

// Close godoc
// @Summary     Hide the cart drawer
// @Tags        Cart
// @Produce     json
// @Success     200 {object} cartResp
// @Router      /api/v1/cart/close [POST]
func (h *handler) Close(c *gin.Context) {
	output, err := h.uc.Close(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newCartResp(output))
}
