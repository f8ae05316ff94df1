package http

import (
	"errors"
	"net/http"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
	pkgErrors "sweet-shop/pkg/errors"
)

// mapError translates catalog errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return pkgErrors.NewValidationError("Validation failed", verr.Fields)
	}
	var serr *catalog.StockError
	if errors.As(err, &serr) {
		return pkgErrors.NewHTTPError(http.StatusConflict, serr.Error())
	}

	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, catalog.ErrInsufficientStock):
		return pkgErrors.NewHTTPError(http.StatusConflict, "insufficient stock")
	case errors.Is(err, catalog.ErrInvalidQuantity):
		return pkgErrors.NewValidationError("Validation failed", map[string]string{"quantity": "Quantity must be at least 1"})
	case errors.Is(err, catalog.ErrInvalidSort):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "sort must be name, price or quantity and order asc or desc")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
