package http

import (
	"errors"
	"net/http"

	"sweet-shop/internal/cart"
	pkgErrors "sweet-shop/pkg/errors"
)

func (h *handler) mapError(err error) error {
	var lerr *cart.LimitError
	if errors.As(err, &lerr) {
		return pkgErrors.NewHTTPError(http.StatusConflict, lerr.Error())
	}

	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, cart.ErrInvalidQuantity):
		return pkgErrors.NewValidationError("Validation failed", map[string]string{"quantity": "Quantity must be at least 1"})
	case errors.Is(err, cart.ErrInsufficientStock):
		return pkgErrors.NewHTTPError(http.StatusConflict, "insufficient stock")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
