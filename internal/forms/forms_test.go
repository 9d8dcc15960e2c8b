package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type supplierForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidateOK(t *testing.T) {
	errs := Validate(supplierForm{Name: "Acme Industrial", Email: "sales@acme.test"})
	require.False(t, errs.Any())
}

func TestValidateFieldKeysAndMessages(t *testing.T) {
	errs := Validate(supplierForm{Name: "A", Email: "not-an-email"})
	require.Len(t, errs, 2)
	require.Equal(t, "must have at least 2 characters", errs["name"])
	require.Equal(t, "must be a valid email address", errs["email"])
}

func TestValidateOptionalEmailMayBeEmpty(t *testing.T) {
	errs := Validate(supplierForm{Name: "Acme"})
	require.False(t, errs.Any())
}

func TestNestedFieldKeys(t *testing.T) {
	type item struct {
		Quantity int `json:"quantity" validate:"min=1"`
	}
	type order struct {
		Items []item `json:"items" validate:"min=1,dive"`
	}
	errs := Validate(order{Items: []item{{Quantity: 1}, {Quantity: 0}}})
	require.Equal(t, "must be at least 1", errs["items[1].quantity"])
}

func TestDecimalField(t *testing.T) {
	value, err := DecimalField(" 19.99 ")
	require.NoError(t, err)
	require.Equal(t, "19.99", value.String())

	_, err = DecimalField("abc")
	require.Error(t, err)
}

func TestIntField(t *testing.T) {
	value, err := IntField("3")
	require.NoError(t, err)
	require.Equal(t, 3, value)

	_, err = IntField("3.5")
	require.Error(t, err)
}
