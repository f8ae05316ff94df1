package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/model"
)

// Step is the position of a session in the checkout sequence.
type Step string

const (
	StepClosed    Step = "closed"
	StepAddress   Step = "address"
	StepPayment   Step = "payment"
	StepCompleted Step = "completed"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCard PaymentMethod = "card"
)

// DefaultPaymentMethod is preselected when the payment step opens.
const DefaultPaymentMethod = PaymentCOD

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

// Address is the delivery address form. Landmark is optional.
type Address struct {
	FullName string
	Phone    string
	Address  string
	Landmark string
	City     string
	State    string
	Pincode  string
}

// Order is the record of a successfully placed checkout.
type Order struct {
	ID            string
	SessionID     string
	Lines         []cart.Line
	TotalItems    int
	TotalPrice    decimal.Decimal
	Address       Address
	PaymentMethod PaymentMethod
	PlacedAt      time.Time
}

// Session is one browsing session's checkout state.
type Session struct {
	SessionID     string
	Step          Step
	Address       Address
	PaymentMethod PaymentMethod
	Processing    bool
	LastOrder     *Order
	CompletedAt   time.Time
	UpdatedAt     time.Time
}

// --- UseCase Inputs ---

type SubmitAddressInput struct {
	Address Address
}

type SelectPaymentInput struct {
	Method PaymentMethod
}

// --- UseCase Outputs ---

type StateOutput struct {
	Session Session
	Notice  model.Notice
}

type PlaceOrderOutput struct {
	Order   Order
	Session Session
	Notices []model.Notice
}
