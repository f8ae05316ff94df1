package http

import "github.com/gin-gonic/gin"

func (h *handler) processAddressReq(c *gin.Context) (addressReq, error) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processPaymentReq(c *gin.Context) (paymentReq, error) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
