package checkout

import (
	"context"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	State(ctx context.Context, sc model.Scope) (StateOutput, error)
	Begin(ctx context.Context, sc model.Scope) (StateOutput, error)
	SubmitAddress(ctx context.Context, sc model.Scope, input SubmitAddressInput) (StateOutput, error)
	SelectPayment(ctx context.Context, sc model.Scope, input SelectPaymentInput) (StateOutput, error)
	Back(ctx context.Context, sc model.Scope) (StateOutput, error)
	PlaceOrder(ctx context.Context, sc model.Scope) (PlaceOrderOutput, error)
	Cancel(ctx context.Context, sc model.Scope) (StateOutput, error)
}

// Purchaser commits a whole order against stock atomically.
type Purchaser interface {
	PurchaseBatch(ctx context.Context, input catalog.PurchaseBatchInput) (catalog.PurchaseBatchOutput, error)
}
