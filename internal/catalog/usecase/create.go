package usecase

import (
	"context"
	"fmt"
	"strings"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
	"sweet-shop/internal/model"
)

// Create validates and appends a new Item under a fresh id.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	candidate := catalog.Item{
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: strings.TrimSpace(input.Description),
	}
	if err := catalog.ValidateItem(candidate); err != nil {
		return catalog.CreateItemOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:          uc.newID(),
		Name:        candidate.Name,
		Category:    string(candidate.Category),
		Price:       candidate.Price,
		Quantity:    candidate.Quantity,
		Description: candidate.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.Create CreateItem: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "catalog/usecase.Create: added %s (%s)", item.Name, item.ID)
	return catalog.CreateItemOutput{
		Item:   item,
		Notice: model.Info(fmt.Sprintf("%s added successfully!", item.Name)),
	}, nil
}

// Seed inserts items with their own ids when the catalog is empty.
// It returns how many items were inserted.
func (uc *implUseCase) Seed(ctx context.Context, items []catalog.Item) (int, error) {
	n, err := uc.repo.CountItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.Seed CountItems: %v", err)
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for _, it := range items {
		if err := catalog.ValidateItem(it); err != nil {
			return 0, fmt.Errorf("seed item %s: %w", it.ID, err)
		}
		if _, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
			ID:          it.ID,
			Name:        it.Name,
			Category:    string(it.Category),
			Price:       it.Price,
			Quantity:    it.Quantity,
			Description: it.Description,
		}); err != nil {
			uc.l.Errorf(ctx, "catalog/usecase.Seed CreateItem %s: %v", it.ID, err)
			return 0, err
		}
	}
	return len(items), nil
}
