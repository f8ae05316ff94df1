package http

import (
	"sweet-shop/internal/catalog"
	"sweet-shop/pkg/log"
)

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates the HTTP handler for browsing and administering the catalog.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
