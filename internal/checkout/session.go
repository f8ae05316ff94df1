package checkout

import "time"

// NewSession returns the initial state of a session that never opened checkout.
func NewSession(sessionID string) Session {
	return Session{
		SessionID:     sessionID,
		Step:          StepClosed,
		PaymentMethod: DefaultPaymentMethod,
	}
}

// Observe applies the delayed auto-reset: a completed session whose reset
// delay has passed returns to the address step with an empty form.
// It reports whether the reset happened.
func (s *Session) Observe(now time.Time, resetDelay time.Duration) bool {
	if s.Step != StepCompleted || now.Before(s.CompletedAt.Add(resetDelay)) {
		return false
	}
	s.Step = StepAddress
	s.Address = Address{}
	s.PaymentMethod = DefaultPaymentMethod
	s.CompletedAt = time.Time{}
	return true
}

// Begin opens checkout. Reopening an address or payment step keeps it.
func (s *Session) Begin() error {
	switch s.Step {
	case StepClosed, "":
		s.Step = StepAddress
		if !s.PaymentMethod.Valid() {
			s.PaymentMethod = DefaultPaymentMethod
		}
		return nil
	case StepAddress, StepPayment:
		return nil
	default:
		return ErrInvalidStep
	}
}

// SubmitAddress moves address -> payment when the address is valid.
// A rejected address leaves the session untouched.
func (s *Session) SubmitAddress(a Address) error {
	if s.Step != StepAddress {
		return ErrInvalidStep
	}
	if err := a.Validate(); err != nil {
		return err
	}
	s.Address = a.Normalize()
	s.Step = StepPayment
	return nil
}

// SelectPayment is refused while an order is processing; the order records
// the method chosen before it started.
func (s *Session) SelectPayment(m PaymentMethod) error {
	if s.Step != StepPayment {
		return ErrInvalidStep
	}
	if s.Processing {
		return ErrCheckoutInProgress
	}
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	s.PaymentMethod = m
	return nil
}

// Back returns from payment to address, keeping the entered address.
func (s *Session) Back() error {
	if s.Step != StepPayment || s.Processing {
		return ErrInvalidStep
	}
	s.Step = StepAddress
	return nil
}

// Cancel closes checkout from address or payment. The address form is kept.
func (s *Session) Cancel() error {
	switch s.Step {
	case StepCompleted:
		return ErrCannotCancel
	case StepAddress, StepPayment:
		if s.Processing {
			return ErrCheckoutInProgress
		}
		s.Step = StepClosed
	}
	return nil
}

// StartProcessing claims the payment step for one place-order call.
func (s *Session) StartProcessing() error {
	if s.Step != StepPayment {
		return ErrInvalidStep
	}
	if s.Processing {
		return ErrCheckoutInProgress
	}
	s.Processing = true
	return nil
}

// Complete records a placed order.
func (s *Session) Complete(o Order, now time.Time) {
	s.Processing = false
	s.Step = StepCompleted
	s.CompletedAt = now
	s.LastOrder = &o
}
