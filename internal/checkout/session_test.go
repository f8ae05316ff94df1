package checkout

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTransitions(t *testing.T) {
	s := NewSession("s1")
	if s.Step != StepClosed || s.PaymentMethod != PaymentCOD {
		t.Fatalf("initial state %+v", s)
	}

	if err := s.SubmitAddress(validAddress()); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("address before begin: %v", err)
	}
	if err := s.Begin(); err != nil || s.Step != StepAddress {
		t.Fatalf("begin: %v %s", err, s.Step)
	}

	bad := validAddress()
	bad.Pincode = "1"
	if err := s.SubmitAddress(bad); err == nil || s.Step != StepAddress || s.Address != (Address{}) {
		t.Fatalf("bad address accepted or leaked: %v %+v", err, s)
	}

	if err := s.SubmitAddress(validAddress()); err != nil || s.Step != StepPayment {
		t.Fatalf("submit: %v %s", err, s.Step)
	}
	if err := s.SelectPayment("bitcoin"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Errorf("bad method: %v", err)
	}
	if err := s.SelectPayment(PaymentUPI); err != nil || s.PaymentMethod != PaymentUPI {
		t.Errorf("select: %v %s", err, s.PaymentMethod)
	}

	if err := s.Back(); err != nil || s.Step != StepAddress || s.Address.City != "Bengaluru" {
		t.Errorf("back: %v %+v", err, s)
	}
	if err := s.Back(); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("back from address: %v", err)
	}

	if err := s.Cancel(); err != nil || s.Step != StepClosed {
		t.Errorf("cancel: %v %s", err, s.Step)
	}
	if err := s.Begin(); err != nil || s.Step != StepAddress || s.Address.City != "Bengaluru" {
		t.Errorf("reopen should keep the form: %v %+v", err, s)
	}
}

func TestSessionProcessingAndCompletion(t *testing.T) {
	s := NewSession("s1")
	s.Begin()
	s.SubmitAddress(validAddress())

	if err := s.StartProcessing(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.StartProcessing(); !errors.Is(err, ErrCheckoutInProgress) {
		t.Errorf("second start: %v", err)
	}
	if err := s.Cancel(); !errors.Is(err, ErrCheckoutInProgress) {
		t.Errorf("cancel while processing: %v", err)
	}
	if err := s.SelectPayment(PaymentCard); !errors.Is(err, ErrCheckoutInProgress) || s.PaymentMethod != PaymentCOD {
		t.Errorf("payment change while processing: err=%v method=%q", err, s.PaymentMethod)
	}

	done := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Complete(Order{ID: "o1"}, done)
	if s.Step != StepCompleted || s.Processing || s.LastOrder.ID != "o1" {
		t.Fatalf("complete: %+v", s)
	}
	if err := s.Cancel(); !errors.Is(err, ErrCannotCancel) {
		t.Errorf("cancel completed: %v", err)
	}

	if s.Observe(done.Add(3*time.Second), 4*time.Second) {
		t.Error("reset fired early")
	}
	if !s.Observe(done.Add(4*time.Second), 4*time.Second) {
		t.Fatal("reset did not fire")
	}
	if s.Step != StepAddress || s.Address != (Address{}) || s.PaymentMethod != PaymentCOD {
		t.Errorf("after reset: %+v", s)
	}
	if s.LastOrder == nil {
		t.Error("last order dropped by reset")
	}
}
