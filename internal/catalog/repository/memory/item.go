package memory

import (
	"context"
	"slices"

	"sweet-shop/internal/catalog"
	repo "sweet-shop/internal/catalog/repository"
)

// CreateItem appends a new Item. The caller supplies the id.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[opt.ID]; ok {
		r.l.Warnf(ctx, "%s: id %q already present", r.dsn("CreateItem"), opt.ID)
		return catalog.Item{}, repo.ErrDuplicateID
	}

	now := r.now()
	item := catalog.Item{
		ID:          opt.ID,
		Name:        opt.Name,
		Category:    catalog.Category(opt.Category),
		Price:       opt.Price,
		Quantity:    opt.Quantity,
		Description: opt.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return item, nil
}

// GetOneItem returns a zero-value Item when the id is unknown.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[opt.ID], nil
}

// ListItems returns a snapshot of all items in insertion order.
func (r *implRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (catalog.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[opt.ID]
	if !ok {
		return catalog.Item{}, nil
	}
	item.Name = opt.Name
	item.Category = catalog.Category(opt.Category)
	item.Price = opt.Price
	if opt.Quantity != nil {
		item.Quantity = *opt.Quantity
	}
	item.Description = opt.Description
	item.UpdatedAt = r.now()
	r.items[opt.ID] = item
	return item, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
