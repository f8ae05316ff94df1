package usecase

import (
	"context"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
)

// getItem loads an item or returns ErrItemNotFound. method names the caller in logs.
func (uc *implUseCase) getItem(ctx context.Context, id, method string) (catalog.Item, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.%s GetOneItem: %v", method, err)
		return catalog.Item{}, err
	}
	if item.ID == "" {
		return catalog.Item{}, catalog.ErrItemNotFound
	}
	return item, nil
}
