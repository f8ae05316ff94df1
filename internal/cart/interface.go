package cart

import (
	"context"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (CartOutput, error)
	AddItem(ctx context.Context, sc model.Scope, input AddItemInput) (CartOutput, error)
	UpdateQuantity(ctx context.Context, sc model.Scope, input UpdateQuantityInput) (CartOutput, error)
	RemoveItem(ctx context.Context, sc model.Scope, itemID string) (CartOutput, error)
	Clear(ctx context.Context, sc model.Scope) (CartOutput, error)
	// Deduct removes bought quantities, keeping anything added since.
	Deduct(ctx context.Context, sc model.Scope, bought []Line) (CartOutput, error)
	Open(ctx context.Context, sc model.Scope) (CartOutput, error)
	Close(ctx context.Context, sc model.Scope) (CartOutput, error)
}

// Catalog is the live stock lookup the cart gates quantities against.
type Catalog interface {
	Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error)
}
