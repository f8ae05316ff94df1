package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sweet-shop/internal/checkout"
	"sweet-shop/internal/middleware"
	"sweet-shop/pkg/response"
)

const orderPlacedMessage = "Order Placed! Your delicious sweets are on the way!"

// State godoc
// @Summary     Show the checkout state
// @Description A completed checkout reads as the address step once the reset delay has passed.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} stateResp
// @Router      /api/v1/checkout [GET]
func (h *handler) State(c *gin.Context) {
	output, err := h.uc.State(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(output.Session))
}

// Begin godoc
// @Summary     Open checkout
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} stateResp
// @Failure     409 {object} response.Resp "Empty cart or wrong step"
// @Router      /api/v1/checkout/begin [POST]
func (h *handler) Begin(c *gin.Context) {
	output, err := h.uc.Begin(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(output.Session))
}

// SubmitAddress godoc
// @Summary     Submit the delivery address
// @Description Moves to the payment step. Field errors come back keyed by field name.
// @Tags        Checkout
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string     false "Session id"
// @Param       body         body   addressReq true  "Address"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Invalid address"
// @Failure     409 {object} response.Resp "Wrong step"
// @Router      /api/v1/checkout/address [POST]
func (h *handler) SubmitAddress(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddressReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SubmitAddress(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(output.Session))
}

// SelectPayment godoc
// @Summary     Choose a payment method
// @Tags        Checkout
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string     false "Session id"
// @Param       body         body   paymentReq true  "cod, upi or card"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Unknown method"
// @Router      /api/v1/checkout/payment [POST]
func (h *handler) SelectPayment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPaymentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SelectPayment(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(output.Session))
}

// Back godoc
// @Summary     Return to the address step
// @Tags        Checkout
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/checkout/back [POST]
func (h *handler) Back(c *gin.Context) {
	output, err := h.uc.Back(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(output.Session))
}

// PlaceOrder godoc
// @Summary     Pay and place the order
// @Description Blocks for the simulated payment, then buys every cart line in one step.
// @Description On a stock shortfall nothing is bought and the state stays at payment.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} placeOrderResp
// @Failure     409 {object} response.Resp "Out of stock, empty cart or already processing"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/checkout/place [POST]
func (h *handler) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PlaceOrder(ctx, middleware.GetScope(c))
	if errors.Is(err, checkout.ErrOutOfStock) {
		c.JSON(http.StatusConflict, response.Resp{
			ErrorCode: http.StatusConflict,
			Message:   output.Notices[0].Message,
			Data:      h.newStateResp(output.Session),
		})
		return
	}
	if errors.Is(err, checkout.ErrRateLimited) {
		response.TooManyRequests(c)
		return
	}
	if err != nil {
		h.l.Warnf(ctx, "checkout/delivery/http.PlaceOrder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, orderPlacedMessage, h.newPlaceOrderResp(output))
}

// Cancel godoc
// @Summary     Close checkout
// @Description The address form is kept for the next attempt.
// @Tags        Checkout
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     409 {object} response.Resp "Completed or processing"
// @Router      /api/v1/checkout/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	output, err := h.uc.Cancel(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(output.Session))
}
