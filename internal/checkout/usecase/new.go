package usecase

import (
	"time"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/checkout"
	"sweet-shop/internal/checkout/repository"
	"sweet-shop/pkg/log"
	"sweet-shop/pkg/metrics"
)

const (
	defaultPaymentDelay = 2 * time.Second
	defaultResetDelay   = 4 * time.Second
)

// Config tunes the checkout timing and throttling.
type Config struct {
	PaymentDelay    time.Duration
	ResetDelay      time.Duration
	RateLimitPerMin int
	// Clock overrides time.Now. Used by tests.
	Clock func() time.Time
}

// implUseCase is the private implementation of checkout.UseCase.
type implUseCase struct {
	repo      repository.Repository
	cart      cart.UseCase
	purchaser checkout.Purchaser
	limiter   *rateLimiter
	metrics   *metrics.Metrics
	l         log.Logger

	paymentDelay time.Duration
	resetDelay   time.Duration
	now          func() time.Time
}

// New creates a checkout UseCase reading carts from cartUC and committing
// orders through purchaser. m may be nil.
func New(repo repository.Repository, cartUC cart.UseCase, purchaser checkout.Purchaser, l log.Logger, m *metrics.Metrics, cfg Config) *implUseCase {
	if cfg.PaymentDelay < 0 {
		cfg.PaymentDelay = defaultPaymentDelay
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = defaultResetDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &implUseCase{
		repo:         repo,
		cart:         cartUC,
		purchaser:    purchaser,
		limiter:      newRateLimiter(cfg.RateLimitPerMin),
		metrics:      m,
		l:            l,
		paymentDelay: cfg.PaymentDelay,
		resetDelay:   cfg.ResetDelay,
		now:          cfg.Clock,
	}
}
