package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Inventory administration
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) (DeleteItemOutput, error)
	Restock(ctx context.Context, input RestockInput) (RestockOutput, error)
	Seed(ctx context.Context, items []Item) (int, error)

	// Stock movements
	Purchase(ctx context.Context, input PurchaseInput) (PurchaseOutput, error)
	PurchaseBatch(ctx context.Context, input PurchaseBatchInput) (PurchaseBatchOutput, error)

	// Browsing
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Categories() []string
}
