package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/model"
)

// Line is one cart entry. Item is the catalog snapshot taken when the line
// was created; its Price is what the line is charged at.
type Line struct {
	Item     catalog.Item
	Quantity int
}

// Cart is a browsing session's selection plus the drawer visibility flag.
type Cart struct {
	SessionID string
	Lines     []Line
	IsOpen    bool
	UpdatedAt time.Time
}

// Totals is derived from the lines on every read.
type Totals struct {
	TotalItems int
	TotalPrice decimal.Decimal
}

// --- UseCase Inputs ---

type AddItemInput struct {
	ItemID   string
	Quantity int
}

type UpdateQuantityInput struct {
	ItemID   string
	Quantity int
}

// --- UseCase Outputs ---

// CartOutput is returned by every cart operation.
type CartOutput struct {
	Cart   Cart
	Totals Totals
	Notice model.Notice
}
