package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/catalog"
	"sweet-shop/internal/checkout"
	"sweet-shop/internal/model"
	"sweet-shop/pkg/metrics"
)

const outOfStockMessage = "Some items are out of stock"

// PlaceOrder simulates payment, then buys every cart line in one atomic
// batch. On a stock failure nothing is debited and the session stays at
// the payment step. On success the bought lines leave the cart and the
// session completes; lines added during payment stay for a later order.
func (uc *implUseCase) PlaceOrder(ctx context.Context, sc model.Scope) (checkout.PlaceOrderOutput, error) {
	if !uc.limiter.Allow(sc.SessionID) {
		uc.metrics.ObserveCheckout(metrics.OutcomeRateLimited, 0)
		return checkout.PlaceOrderOutput{}, checkout.ErrRateLimited
	}

	claimed, err := uc.transition(ctx, sc, "PlaceOrder", func(s *checkout.Session) error {
		return s.StartProcessing()
	})
	if err != nil {
		return checkout.PlaceOrderOutput{Session: claimed.Session}, err
	}

	completed := false
	defer func() {
		if !completed {
			uc.release(ctx, sc)
		}
	}()

	snapshot, err := uc.cart.Get(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "checkout/usecase.PlaceOrder cart.Get: %v", err)
		return checkout.PlaceOrderOutput{}, err
	}
	if len(snapshot.Cart.Lines) == 0 {
		return checkout.PlaceOrderOutput{}, checkout.ErrEmptyCart
	}

	if err := uc.wait(ctx, uc.paymentDelay); err != nil {
		uc.l.Warnf(ctx, "checkout/usecase.PlaceOrder: abandoned during payment: %v", err)
		return checkout.PlaceOrderOutput{}, err
	}

	lines := make([]catalog.PurchaseLine, 0, len(snapshot.Cart.Lines))
	for _, l := range snapshot.Cart.Lines {
		lines = append(lines, catalog.PurchaseLine{ItemID: l.Item.ID, Quantity: l.Quantity})
	}
	bought, err := uc.purchaser.PurchaseBatch(ctx, catalog.PurchaseBatchInput{Lines: lines})
	if err != nil {
		if errors.Is(err, catalog.ErrInsufficientStock) || errors.Is(err, catalog.ErrItemNotFound) {
			uc.l.Infof(ctx, "checkout/usecase.PlaceOrder: %v", err)
			uc.metrics.ObserveCheckout(metrics.OutcomeOutOfStock, 0)
			sess := claimed.Session
			sess.Processing = false
			return checkout.PlaceOrderOutput{
				Session: sess,
				Notices: []model.Notice{model.Warning(outOfStockMessage)},
			}, checkout.ErrOutOfStock
		}
		uc.l.Errorf(ctx, "checkout/usecase.PlaceOrder PurchaseBatch: %v", err)
		uc.metrics.ObserveCheckout(metrics.OutcomeFailed, 0)
		return checkout.PlaceOrderOutput{}, err
	}

	if _, err := uc.cart.Deduct(ctx, sc, snapshot.Cart.Lines); err != nil {
		// stock is already debited, the order stands
		uc.l.Errorf(ctx, "checkout/usecase.PlaceOrder cart.Deduct: %v", err)
	}

	now := uc.now()
	order := newOrder(sc.SessionID, snapshot, now)
	s, err := uc.repo.UpdateSession(ctx, sc.SessionID, func(s *checkout.Session) error {
		order.Address = s.Address
		order.PaymentMethod = s.PaymentMethod
		s.Complete(order, now)
		s.UpdatedAt = now
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "checkout/usecase.PlaceOrder UpdateSession: %v", err)
		return checkout.PlaceOrderOutput{}, err
	}
	completed = true

	uc.metrics.ObserveCheckout(metrics.OutcomePlaced, order.TotalItems)
	uc.l.Infof(ctx, "checkout/usecase.PlaceOrder: order %s placed, %d items, total %s",
		order.ID, order.TotalItems, order.TotalPrice.StringFixed(2))

	return checkout.PlaceOrderOutput{
		Order:   *s.LastOrder,
		Session: s,
		Notices: bought.Notices,
	}, nil
}

// release drops the processing claim after a failed attempt.
func (uc *implUseCase) release(ctx context.Context, sc model.Scope) {
	_, err := uc.repo.UpdateSession(context.WithoutCancel(ctx), sc.SessionID, func(s *checkout.Session) error {
		s.Processing = false
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "checkout/usecase.release UpdateSession: %v", err)
	}
}

// wait blocks for d or until ctx is done.
func (uc *implUseCase) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newOrder(sessionID string, snapshot cart.CartOutput, now time.Time) checkout.Order {
	return checkout.Order{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Lines:      snapshot.Cart.Clone().Lines,
		TotalItems: snapshot.Totals.TotalItems,
		TotalPrice: snapshot.Totals.TotalPrice,
		PlacedAt:   now,
	}
}
