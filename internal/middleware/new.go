package middleware

import (
	"sweet-shop/pkg/log"
	"sweet-shop/pkg/metrics"
)

// Config carries the settings the middlewares read at request time.
type Config struct {
	// AdminKey guards the inventory routes. Empty disables the check.
	AdminKey     string
	CookieSecure bool
	CookieMaxAge int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	metrics *metrics.Metrics
}

func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		metrics: m,
	}
}
