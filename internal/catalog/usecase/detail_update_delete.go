package usecase

import (
	"context"
	"fmt"
	"strings"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
	"sweet-shop/internal/model"
)

// Detail returns ErrItemNotFound when the id is unknown.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	item, err := uc.getItem(ctx, id, "Detail")
	if err != nil {
		return catalog.DetailItemOutput{}, err
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// Update merges the supplied fields into the stored Item and validates the result.
func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	existing, err := uc.getItem(ctx, input.ID, "Update")
	if err != nil {
		return catalog.UpdateItemOutput{}, err
	}

	merged := existing
	if input.Name != nil {
		merged.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		merged.Category = *input.Category
	}
	if input.Price != nil {
		merged.Price = *input.Price
	}
	if input.Quantity != nil {
		merged.Quantity = *input.Quantity
	}
	if input.Description != nil {
		merged.Description = strings.TrimSpace(*input.Description)
	}
	if err := catalog.ValidateItem(merged); err != nil {
		return catalog.UpdateItemOutput{}, err
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          merged.ID,
		Name:        merged.Name,
		Category:    string(merged.Category),
		Price:       merged.Price,
		Quantity:    input.Quantity,
		Description: merged.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.Update UpdateItem: %v", err)
		return catalog.UpdateItemOutput{}, err
	}
	if item.ID == "" {
		// deleted between read and write
		return catalog.UpdateItemOutput{}, catalog.ErrItemNotFound
	}

	return catalog.UpdateItemOutput{
		Item:   item,
		Notice: model.Info("Sweet updated successfully!"),
	}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) (catalog.DeleteItemOutput, error) {
	existing, err := uc.getItem(ctx, id, "Delete")
	if err != nil {
		return catalog.DeleteItemOutput{}, err
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.Delete DeleteItem: %v", err)
		return catalog.DeleteItemOutput{}, err
	}

	uc.l.Infof(ctx, "catalog/usecase.Delete: removed %s (%s)", existing.Name, id)
	return catalog.DeleteItemOutput{
		Notice: model.Info(fmt.Sprintf("%s removed from inventory", existing.Name)),
	}, nil
}
