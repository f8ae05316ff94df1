package http

import (
	"sweet-shop/internal/checkout"
	"sweet-shop/pkg/log"
)

type handler struct {
	l  log.Logger
	uc checkout.UseCase
}

// New creates the HTTP handler for the checkout sequence.
func New(l log.Logger, uc checkout.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
