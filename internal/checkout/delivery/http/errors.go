package http

import (
	"context"
	"errors"
	"net/http"

	"sweet-shop/internal/checkout"
	"sweet-shop/internal/model"
	pkgErrors "sweet-shop/pkg/errors"
)

const statusClientClosedRequest = 499

func (h *handler) mapError(err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return pkgErrors.NewValidationError("Please fix the highlighted fields", verr.Fields)
	}

	switch {
	case errors.Is(err, checkout.ErrOutOfStock):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Some items are out of stock")
	case errors.Is(err, checkout.ErrEmptyCart):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Your cart is empty")
	case errors.Is(err, checkout.ErrInvalidStep):
		return pkgErrors.NewHTTPError(http.StatusConflict, "action not allowed at this checkout step")
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Your order is already being processed")
	case errors.Is(err, checkout.ErrCannotCancel):
		return pkgErrors.NewHTTPError(http.StatusConflict, "A completed order cannot be cancelled")
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		return pkgErrors.NewValidationError("Validation failed", map[string]string{"method": "Choose cod, upi or card"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(statusClientClosedRequest, "payment was interrupted")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
