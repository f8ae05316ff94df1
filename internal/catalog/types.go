package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"sweet-shop/internal/model"
)

// --- Item Domain Model ---

// Item is a sellable sweet. Price is always positive and Quantity never negative.
type Item struct {
	ID          string
	Name        string
	Category    Category
	Price       decimal.Decimal
	Quantity    int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is one of the fixed shop categories.
type Category string

const (
	CategoryAll        = "All"
	CategoryChocolates Category = "Chocolates"
	CategoryMacarons   Category = "Macarons"
	CategoryCupcakes   Category = "Cupcakes"
	CategoryCandies    Category = "Candies"
	CategoryFudge      Category = "Fudge"
)

// SortField names the attribute the filtered view is ordered by.
type SortField string

const (
	SortByName     SortField = "name"
	SortByPrice    SortField = "price"
	SortByQuantity SortField = "quantity"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortConfig pairs a field with a direction.
type SortConfig struct {
	Field SortField
	Order SortOrder
}

// Criteria is the search/filter/sort state of a catalog view.
// An empty Category means CategoryAll; a zero Sort means name ascending.
type Criteria struct {
	Search   string
	Category string
	Sort     SortConfig
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Category    Category
	Price       decimal.Decimal
	Quantity    int
	Description string
}

// UpdateItemInput carries a partial update: nil fields are left untouched.
type UpdateItemInput struct {
	ID          string
	Name        *string
	Category    *Category
	Price       *decimal.Decimal
	Quantity    *int
	Description *string
}

type ListItemsInput struct {
	Criteria Criteria
}

type PurchaseInput struct {
	ID       string
	Quantity int
}

type RestockInput struct {
	ID       string
	Quantity int
}

// PurchaseLine is one entry of a whole-order purchase.
type PurchaseLine struct {
	ItemID   string
	Quantity int
}

type PurchaseBatchInput struct {
	Lines []PurchaseLine
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item   Item
	Notice model.Notice
}

type ListItemsOutput struct {
	Items    []Item
	Total    int
	Criteria Criteria
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item   Item
	Notice model.Notice
}

type DeleteItemOutput struct {
	Notice model.Notice
}

type PurchaseOutput struct {
	Item   Item
	Notice model.Notice
}

// PurchaseBatchOutput holds the updated items and one notice per purchased line.
type PurchaseBatchOutput struct {
	Items   []Item
	Notices []model.Notice
}

type RestockOutput struct {
	Item   Item
	Notice model.Notice
}
