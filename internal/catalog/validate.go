package catalog

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"

	"sweet-shop/internal/model"
)

// MaxQuantity is the most stock one item can hold; it fits the INTEGER column.
const MaxQuantity = math.MaxInt32

var validate = validator.New(validator.WithRequiredStructEnabled())

type itemRules struct {
	Name     string `validate:"min=2"`
	Category string `validate:"required,oneof=Chocolates Macarons Cupcakes Candies Fudge"`
	Quantity int    `validate:"gte=0,lte=2147483647"`
}

var itemMessages = map[string]string{
	"Name":         "Name must be at least 2 characters",
	"Category":     "Please select a category",
	"Price":        "Price must be greater than 0",
	"Quantity":     "Quantity cannot be negative",
	"Quantity.lte": "Quantity is too large",
}

var itemFieldKeys = map[string]string{
	"Name":     "name",
	"Category": "category",
	"Price":    "price",
	"Quantity": "quantity",
}

// ValidateItem checks the inventory rules shared by create and update.
// Failures come back as *model.ValidationError keyed by JSON field name.
func ValidateItem(it Item) error {
	fields := map[string]string{}

	err := validate.Struct(itemRules{Name: it.Name, Category: string(it.Category), Quantity: it.Quantity})
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msg, ok := itemMessages[fe.Field()+"."+fe.Tag()]
			if !ok {
				msg = itemMessages[fe.Field()]
			}
			fields[itemFieldKeys[fe.Field()]] = msg
		}
	} else if err != nil {
		return err
	}

	if !it.Price.IsPositive() {
		fields[itemFieldKeys["Price"]] = itemMessages["Price"]
	}

	if len(fields) > 0 {
		return &model.ValidationError{Fields: fields}
	}
	return nil
}
