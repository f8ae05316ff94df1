package usecase

import (
	"context"

	"sweet-shop/internal/checkout"
	"sweet-shop/internal/model"
	"sweet-shop/pkg/metrics"
)

func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (checkout.StateOutput, error) {
	return uc.transition(ctx, sc, "State", nil)
}

// Begin opens checkout for a session holding at least one cart line.
func (uc *implUseCase) Begin(ctx context.Context, sc model.Scope) (checkout.StateOutput, error) {
	c, err := uc.cart.Get(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "checkout/usecase.Begin cart.Get: %v", err)
		return checkout.StateOutput{}, err
	}
	if len(c.Cart.Lines) == 0 {
		return checkout.StateOutput{}, checkout.ErrEmptyCart
	}
	return uc.transition(ctx, sc, "Begin", func(s *checkout.Session) error { return s.Begin() })
}

func (uc *implUseCase) SubmitAddress(ctx context.Context, sc model.Scope, input checkout.SubmitAddressInput) (checkout.StateOutput, error) {
	return uc.transition(ctx, sc, "SubmitAddress", func(s *checkout.Session) error {
		return s.SubmitAddress(input.Address)
	})
}

func (uc *implUseCase) SelectPayment(ctx context.Context, sc model.Scope, input checkout.SelectPaymentInput) (checkout.StateOutput, error) {
	return uc.transition(ctx, sc, "SelectPayment", func(s *checkout.Session) error {
		return s.SelectPayment(input.Method)
	})
}

func (uc *implUseCase) Back(ctx context.Context, sc model.Scope) (checkout.StateOutput, error) {
	return uc.transition(ctx, sc, "Back", func(s *checkout.Session) error { return s.Back() })
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) (checkout.StateOutput, error) {
	out, err := uc.transition(ctx, sc, "Cancel", func(s *checkout.Session) error { return s.Cancel() })
	if err == nil {
		uc.metrics.ObserveCheckout(metrics.OutcomeCancelled, 0)
	}
	return out, err
}

// transition persists any due auto-reset first (closing the cart when it
// fires), then applies fn. A refused fn leaves the observed session as is.
func (uc *implUseCase) transition(ctx context.Context, sc model.Scope, method string, fn func(s *checkout.Session) error) (checkout.StateOutput, error) {
	var reset bool
	current, err := uc.repo.UpdateSession(ctx, sc.SessionID, func(s *checkout.Session) error {
		reset = s.Observe(uc.now(), uc.resetDelay)
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "checkout/usecase.%s UpdateSession: %v", method, err)
		return checkout.StateOutput{}, err
	}
	if reset {
		if _, cerr := uc.cart.Close(ctx, sc); cerr != nil {
			uc.l.Warnf(ctx, "checkout/usecase.%s cart.Close: %v", method, cerr)
		}
	}
	if fn == nil {
		return checkout.StateOutput{Session: current}, nil
	}

	next, err := uc.repo.UpdateSession(ctx, sc.SessionID, func(s *checkout.Session) error {
		now := uc.now()
		s.Observe(now, uc.resetDelay)
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = now
		return nil
	})
	if err != nil {
		return checkout.StateOutput{Session: current}, err
	}
	return checkout.StateOutput{Session: next}, nil
}
