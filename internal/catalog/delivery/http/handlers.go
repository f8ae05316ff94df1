package http

import (
	"github.com/gin-gonic/gin"

	"sweet-shop/internal/catalog"
	"sweet-shop/pkg/response"
)

// List godoc
// @Summary     List sweets
// @Description Returns the catalog filtered by search term and category, sorted by name, price or quantity.
// @Tags        Catalog
// @Produce     json
// @Param       search   query string false "Case-insensitive match on name or category"
// @Param       category query string false "Category name or All"
// @Param       sort     query string false "name | price | quantity (default name)"
// @Param       order    query string false "asc | desc (default asc)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "catalog.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a sweet
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalog/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Item: newItemResp(output.Item)})
}

// Categories godoc
// @Summary     List categories
// @Description Category filter options in display order, starting with All.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/catalog/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, categoriesResp{Categories: h.uc.Categories()})
}

// Create godoc
// @Summary     Add a sweet
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string    false "Admin key"
// @Param       body        body   createReq true  "Sweet"
// @Success     200 {object} itemNoticeResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, output.Notice.Message, itemNoticeResp{Item: newItemResp(output.Item), Notice: output.Notice})
}

// Update godoc
// @Summary     Update a sweet
// @Description Partial update: omitted fields keep their value.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string    false "Admin key"
// @Param       id          path   string    true  "Item ID"
// @Param       body        body   updateReq true  "Fields to change"
// @Success     200 {object} itemNoticeResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, output.Notice.Message, itemNoticeResp{Item: newItemResp(output.Item), Notice: output.Notice})
}

// Delete godoc
// @Summary     Remove a sweet
// @Tags        Admin
// @Produce     json
// @Param       X-Admin-Key header string false "Admin key"
// @Param       id          path   string true  "Item ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, output.Notice.Message, deleteResp{Notice: output.Notice})
}

// Purchase godoc
// @Summary     Purchase units of a sweet
// @Description Fails with 409 and leaves stock unchanged when quantity exceeds stock.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string   false "Admin key"
// @Param       id          path   string   true  "Item ID"
// @Param       body        body   stockReq true  "Quantity"
// @Success     200 {object} itemNoticeResp
// @Failure     400 {object} response.Resp "Invalid quantity"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Insufficient stock"
// @Router      /api/v1/admin/items/{id}/purchase [POST]
func (h *handler) Purchase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Purchase(ctx, catalog.PurchaseInput{ID: req.ID, Quantity: req.Quantity})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, output.Notice.Message, itemNoticeResp{Item: newItemResp(output.Item), Notice: output.Notice})
}

// Restock godoc
// @Summary     Restock a sweet
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string   false "Admin key"
// @Param       id          path   string   true  "Item ID"
// @Param       body        body   stockReq true  "Quantity"
// @Success     200 {object} itemNoticeResp
// @Failure     400 {object} response.Resp "Invalid quantity"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/items/{id}/restock [POST]
func (h *handler) Restock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Restock(ctx, catalog.RestockInput{ID: req.ID, Quantity: req.Quantity})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, output.Notice.Message, itemNoticeResp{Item: newItemResp(output.Item), Notice: output.Notice})
}
