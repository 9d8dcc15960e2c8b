package procurement

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseOrderFormContiguousItems(t *testing.T) {
	form := url.Values{}
	form.Set("supplierId", uuid.NewString())
	form.Set("notes", "rush order")
	form.Set("items[0][productId]", uuid.NewString())
	form.Set("items[0][quantity]", "2")
	form.Set("items[0][unitPrice]", "19.99")
	form.Set("items[1][productId]", uuid.NewString())
	form.Set("items[1][quantity]", "1")
	form.Set("items[1][unitPrice]", "5.00")

	input, errs := ParseOrderForm(form)
	require.False(t, errs.Any())
	require.Len(t, input.Items, 2)
	require.Equal(t, 2, input.Items[0].Quantity)
	require.Equal(t, "19.99", input.Items[0].UnitPrice.String())
	require.Equal(t, "rush order", input.Notes)
}

func TestParseOrderFormStopsAtFirstGap(t *testing.T) {
	form := url.Values{}
	form.Set("supplierId", uuid.NewString())
	form.Set("items[0][productId]", uuid.NewString())
	form.Set("items[0][quantity]", "1")
	form.Set("items[0][unitPrice]", "3.00")
	// Index 1 missing: index 2 must not be picked up.
	form.Set("items[2][productId]", uuid.NewString())
	form.Set("items[2][quantity]", "4")
	form.Set("items[2][unitPrice]", "1.00")

	input, errs := ParseOrderForm(form)
	require.False(t, errs.Any())
	require.Len(t, input.Items, 1)
}

func TestParseOrderFormBadNumbers(t *testing.T) {
	form := url.Values{}
	form.Set("supplierId", uuid.NewString())
	form.Set("items[0][productId]", uuid.NewString())
	form.Set("items[0][quantity]", "two")
	form.Set("items[0][unitPrice]", "cheap")

	_, errs := ParseOrderForm(form)
	require.Contains(t, errs, "items[0].quantity")
	require.Contains(t, errs, "items[0].unitPrice")
}

func TestAssembleComputesExactTotal(t *testing.T) {
	input := CreateOrderInput{
		SupplierID: uuid.NewString(),
		Items: []ItemInput{
			{ProductID: uuid.NewString(), Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}
	assembled, errs := assemble(input)
	require.False(t, errs.Any())
	require.True(t, assembled.Total.Equal(decimal.RequireFromString("44.98")), "got total %s", assembled.Total)
	require.True(t, assembled.Items[0].TotalPrice.Equal(decimal.RequireFromString("39.98")))
}

func TestAssembleRejectsZeroItems(t *testing.T) {
	_, errs := assemble(CreateOrderInput{SupplierID: uuid.NewString()})
	require.Contains(t, errs, "items")
}

func TestAssembleRejectsZeroQuantity(t *testing.T) {
	input := CreateOrderInput{
		SupplierID: uuid.NewString(),
		Items: []ItemInput{
			{ProductID: uuid.NewString(), Quantity: 0, UnitPrice: decimal.RequireFromString("2.00")},
		},
	}
	_, errs := assemble(input)
	require.Contains(t, errs, "items[0].quantity")
}

func TestAssembleRejectsNegativePrice(t *testing.T) {
	input := CreateOrderInput{
		SupplierID: uuid.NewString(),
		Items: []ItemInput{
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.RequireFromString("-1.00")},
		},
	}
	_, errs := assemble(input)
	require.Contains(t, errs, "items[0].unitPrice")
}

func TestAssembleRejectsBadSupplier(t *testing.T) {
	input := CreateOrderInput{
		SupplierID: "not-a-uuid",
		Items: []ItemInput{
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	}
	_, errs := assemble(input)
	require.Contains(t, errs, "supplierId")
}
