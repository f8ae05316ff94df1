package checkout

import (
	"errors"
	"strings"
	"testing"

	"sweet-shop/internal/model"
)

func validAddress() Address {
	return Address{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Address:  "12 MG Road, Indiranagar",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560038",
	}
}

func TestAddressValidate(t *testing.T) {
	if err := validAddress().Validate(); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(a *Address)
		field   string
		message string
	}{
		{"short name", func(a *Address) { a.FullName = " A " }, "full_name", "Name must be at least 2 characters"},
		{"long name", func(a *Address) { a.FullName = strings.Repeat("a", 101) }, "full_name", "Name must be at most 100 characters"},
		{"phone starting with 5", func(a *Address) { a.Phone = "5876543210" }, "phone", "Enter valid 10-digit mobile number"},
		{"phone too short", func(a *Address) { a.Phone = "987654321" }, "phone", "Enter valid 10-digit mobile number"},
		{"short address", func(a *Address) { a.Address = "MG Road" }, "address", "Please enter complete address"},
		{"long landmark", func(a *Address) { a.Landmark = strings.Repeat("x", 101) }, "landmark", "Landmark must be at most 100 characters"},
		{"missing city", func(a *Address) { a.City = "" }, "city", "City is required"},
		{"missing state", func(a *Address) { a.State = "  " }, "state", "State is required"},
		{"five digit pincode", func(a *Address) { a.Pincode = "56003" }, "pincode", "Enter valid 6-digit pincode"},
		{"letters in pincode", func(a *Address) { a.Pincode = "56OO38" }, "pincode", "Enter valid 6-digit pincode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := validAddress()
			tc.mutate(&a)

			var verr *model.ValidationError
			if err := a.Validate(); !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Fields[tc.field] != tc.message || len(verr.Fields) != 1 {
				t.Errorf("fields = %v", verr.Fields)
			}
		})
	}
}

func TestAddressValidate_TrimsBeforeChecking(t *testing.T) {
	a := validAddress()
	a.Phone = " 9876543210 "
	a.Pincode = "560038\n"
	if err := a.Validate(); err != nil {
		t.Errorf("padded values rejected: %v", err)
	}
}
