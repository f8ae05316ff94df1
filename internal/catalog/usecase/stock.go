package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
	"sweet-shop/internal/model"
)

// Purchase debits qty units of one item. Nothing changes when stock is short.
func (uc *implUseCase) Purchase(ctx context.Context, input catalog.PurchaseInput) (catalog.PurchaseOutput, error) {
	if input.Quantity <= 0 {
		return catalog.PurchaseOutput{}, catalog.ErrInvalidQuantity
	}
	existing, err := uc.getItem(ctx, input.ID, "Purchase")
	if err != nil {
		return catalog.PurchaseOutput{}, err
	}
	if input.Quantity > existing.Quantity {
		return uc.shortPurchase(existing, input.Quantity)
	}

	item, err := uc.repo.AdjustStock(ctx, repo.AdjustStockOptions{ID: input.ID, Delta: -input.Quantity})
	if errors.Is(err, repo.ErrStockConflict) {
		// lost a race with another purchase, report what is left now
		current, gerr := uc.getItem(ctx, input.ID, "Purchase")
		if gerr != nil {
			return catalog.PurchaseOutput{}, gerr
		}
		return uc.shortPurchase(current, input.Quantity)
	}
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.Purchase AdjustStock: %v", err)
		return catalog.PurchaseOutput{}, err
	}

	return catalog.PurchaseOutput{
		Item:   item,
		Notice: model.Info(fmt.Sprintf("Purchased %d %s!", input.Quantity, item.Name)),
	}, nil
}

func (uc *implUseCase) shortPurchase(item catalog.Item, requested int) (catalog.PurchaseOutput, error) {
	serr := &catalog.StockError{
		ItemID:    item.ID,
		Name:      item.Name,
		Requested: requested,
		Available: item.Quantity,
	}
	return catalog.PurchaseOutput{Item: item, Notice: model.Warning(serr.Error())}, serr
}

// PurchaseBatch debits every line or none. Lines naming the same item are
// summed before the stock check. Deltas reach the repository sorted by item
// id so concurrent batches lock rows in the same order.
func (uc *implUseCase) PurchaseBatch(ctx context.Context, input catalog.PurchaseBatchInput) (catalog.PurchaseBatchOutput, error) {
	if len(input.Lines) == 0 {
		return catalog.PurchaseBatchOutput{}, catalog.ErrEmptyPurchase
	}

	var ids []string
	wanted := make(map[string]int, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return catalog.PurchaseBatchOutput{}, catalog.ErrInvalidQuantity
		}
		if _, ok := wanted[line.ItemID]; !ok {
			ids = append(ids, line.ItemID)
		}
		wanted[line.ItemID] += line.Quantity
	}
	slices.Sort(ids)

	opts := make([]repo.AdjustStockOptions, 0, len(ids))
	for _, id := range ids {
		item, err := uc.getItem(ctx, id, "PurchaseBatch")
		if err != nil {
			return catalog.PurchaseBatchOutput{}, err
		}
		if wanted[id] > item.Quantity {
			return catalog.PurchaseBatchOutput{}, &catalog.StockError{
				ItemID:    item.ID,
				Name:      item.Name,
				Requested: wanted[id],
				Available: item.Quantity,
			}
		}
		opts = append(opts, repo.AdjustStockOptions{ID: id, Delta: -wanted[id]})
	}

	items, err := uc.repo.AdjustStockBatch(ctx, opts)
	if errors.Is(err, repo.ErrStockConflict) {
		uc.l.Warnf(ctx, "catalog/usecase.PurchaseBatch: stock changed during commit")
		return catalog.PurchaseBatchOutput{}, fmt.Errorf("catalog/usecase.PurchaseBatch: %w", catalog.ErrInsufficientStock)
	}
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.PurchaseBatch AdjustStockBatch: %v", err)
		return catalog.PurchaseBatchOutput{}, err
	}

	notices := make([]model.Notice, 0, len(items))
	for _, item := range items {
		notices = append(notices, model.Info(fmt.Sprintf("Purchased %d %s!", wanted[item.ID], item.Name)))
	}
	return catalog.PurchaseBatchOutput{Items: items, Notices: notices}, nil
}

// Restock credits qty units to one item.
func (uc *implUseCase) Restock(ctx context.Context, input catalog.RestockInput) (catalog.RestockOutput, error) {
	if input.Quantity <= 0 {
		return catalog.RestockOutput{}, catalog.ErrInvalidQuantity
	}
	existing, err := uc.getItem(ctx, input.ID, "Restock")
	if err != nil {
		return catalog.RestockOutput{}, err
	}
	if input.Quantity > catalog.MaxQuantity-existing.Quantity {
		return catalog.RestockOutput{}, catalog.ErrInvalidQuantity
	}

	item, err := uc.repo.AdjustStock(ctx, repo.AdjustStockOptions{ID: input.ID, Delta: input.Quantity})
	if errors.Is(err, repo.ErrStockConflict) {
		// gone since the read, or another restock pushed it past the limit
		current, gerr := uc.getItem(ctx, input.ID, "Restock")
		if gerr != nil {
			return catalog.RestockOutput{}, gerr
		}
		uc.l.Warnf(ctx, "catalog/usecase.Restock: %s cannot take %d more", current.ID, input.Quantity)
		return catalog.RestockOutput{}, catalog.ErrInvalidQuantity
	}
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.Restock AdjustStock: %v", err)
		return catalog.RestockOutput{}, err
	}

	return catalog.RestockOutput{
		Item:   item,
		Notice: model.Info(fmt.Sprintf("Restocked %d %s", input.Quantity, item.Name)),
	}, nil
}
