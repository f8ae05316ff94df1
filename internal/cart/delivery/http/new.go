package http

import (
	"sweet-shop/internal/cart"
	"sweet-shop/pkg/log"
)

type handler struct {
	l  log.Logger
	uc cart.UseCase
}

// New creates the HTTP handler for the session cart.
func New(l log.Logger, uc cart.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
