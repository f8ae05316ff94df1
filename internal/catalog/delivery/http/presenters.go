package http

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
	pkgErrors "sweet-shop/pkg/errors"
	"sweet-shop/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`

	sort catalog.SortConfig
}

func (r *listReq) validate() error {
	if r.Category != "" && !slices.Contains(catalog.Categories(), r.Category) {
		return pkgErrors.NewValidationError("Validation failed", map[string]string{"category": "Unknown category"})
	}
	sc, err := catalog.ParseSort(r.Sort, r.Order)
	if err != nil {
		return err
	}
	r.sort = sc
	return nil
}

func (r listReq) toInput() catalog.ListItemsInput {
	return catalog.ListItemsInput{Criteria: catalog.Criteria{
		Search:   r.Search,
		Category: r.Category,
		Sort:     r.sort,
	}}
}

// ---

type createReq struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description" binding:"max=1000"`
}

func (r createReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		Name:        r.Name,
		Category:    catalog.Category(r.Category),
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: r.Description,
	}
}

// ---

type updateReq struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
}

func (r updateReq) toInput() catalog.UpdateItemInput {
	in := catalog.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: r.Description,
	}
	if r.Category != nil {
		c := catalog.Category(*r.Category)
		in.Category = &c
	}
	return in
}

// ---

type stockReq struct {
	ID       string `json:"-"`
	Quantity int    `json:"quantity"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Price       response.Money `json:"price" swaggertype:"number"`
	Quantity    int            `json:"quantity"`
	InStock     bool           `json:"in_stock"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func newItemResp(item catalog.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Category:    string(item.Category),
		Price:       response.Money(item.Price),
		Quantity:    item.Quantity,
		InStock:     item.Quantity > 0,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type itemNoticeResp struct {
	Item   itemResp     `json:"item"`
	Notice model.Notice `json:"notice"`
}

type listResp struct {
	Items    []itemResp `json:"items"`
	Total    int        `json:"total"`
	Search   string     `json:"search"`
	Category string     `json:"category"`
	Sort     string     `json:"sort"`
	Order    string     `json:"order"`
}

func (h *handler) newListResp(out catalog.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	category := out.Criteria.Category
	if category == "" {
		category = catalog.CategoryAll
	}
	return listResp{
		Items:    items,
		Total:    out.Total,
		Search:   out.Criteria.Search,
		Category: category,
		Sort:     string(out.Criteria.Sort.Field),
		Order:    string(out.Criteria.Sort.Order),
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

type categoriesResp struct {
	Categories []string `json:"categories"`
}

type deleteResp struct {
	Notice model.Notice `json:"notice"`
}
