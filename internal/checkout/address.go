package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"sweet-shop/internal/model"
)

var (
	mobileRe  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRe.MatchString(fl.Field().String())
	})
	return v
}

type addressRules struct {
	FullName string `json:"full_name" validate:"min=2,max=100"`
	Phone    string `json:"phone"     validate:"mobile"`
	Address  string `json:"address"   validate:"min=10,max=500"`
	Landmark string `json:"landmark"  validate:"max=100"`
	City     string `json:"city"      validate:"min=2,max=50"`
	State    string `json:"state"     validate:"min=2,max=50"`
	Pincode  string `json:"pincode"   validate:"pincode"`
}

// addressMessages is keyed by field then failing tag.
var addressMessages = map[string]map[string]string{
	"FullName": {"min": "Name must be at least 2 characters", "max": "Name must be at most 100 characters"},
	"Phone":    {"mobile": "Enter valid 10-digit mobile number"},
	"Address":  {"min": "Please enter complete address", "max": "Address must be at most 500 characters"},
	"Landmark": {"max": "Landmark must be at most 100 characters"},
	"City":     {"min": "City is required", "max": "City must be at most 50 characters"},
	"State":    {"min": "State is required", "max": "State must be at most 50 characters"},
	"Pincode":  {"pincode": "Enter valid 6-digit pincode"},
}

var addressKeys = map[string]string{
	"FullName": "full_name",
	"Phone":    "phone",
	"Address":  "address",
	"Landmark": "landmark",
	"City":     "city",
	"State":    "state",
	"Pincode":  "pincode",
}

// Normalize returns a copy with every field trimmed.
func (a Address) Normalize() Address {
	return Address{
		FullName: strings.TrimSpace(a.FullName),
		Phone:    strings.TrimSpace(a.Phone),
		Address:  strings.TrimSpace(a.Address),
		Landmark: strings.TrimSpace(a.Landmark),
		City:     strings.TrimSpace(a.City),
		State:    strings.TrimSpace(a.State),
		Pincode:  strings.TrimSpace(a.Pincode),
	}
}

// Validate checks the trimmed address. Failures come back as
// *model.ValidationError with one message per field.
func (a Address) Validate() error {
	n := a.Normalize()
	err := validate.Struct(addressRules{
		FullName: n.FullName,
		Phone:    n.Phone,
		Address:  n.Address,
		Landmark: n.Landmark,
		City:     n.City,
		State:    n.State,
		Pincode:  n.Pincode,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[addressKeys[fe.Field()]] = addressMessages[fe.Field()][fe.Tag()]
	}
	return &model.ValidationError{Fields: fields}
}
