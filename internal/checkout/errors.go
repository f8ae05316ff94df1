package checkout

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidStep          = errors.New("action not allowed at this checkout step")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrCheckoutInProgress   = errors.New("order is already being processed")
	ErrOutOfStock           = errors.New("some items are out of stock")
	ErrCannotCancel         = errors.New("a completed checkout cannot be cancelled")
	ErrRateLimited          = errors.New("too many order attempts")
)
