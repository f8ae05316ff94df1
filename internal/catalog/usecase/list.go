package usecase

import (
	"context"

	"sweet-shop/internal/catalog"
)

// List computes the filtered view over a snapshot of the whole catalog.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	all, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "catalog/usecase.List ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}

	items := catalog.FilterView(all, input.Criteria)
	return catalog.ListItemsOutput{
		Items:    items,
		Total:    len(items),
		Criteria: input.Criteria,
	}, nil
}

func (uc *implUseCase) Categories() []string {
	return catalog.Categories()
}
