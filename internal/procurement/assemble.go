package procurement

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quartermaster-erp/quartermaster/internal/forms"
)

// ItemInput is one submitted line item candidate.
type ItemInput struct {
	ProductID string          `json:"productId" validate:"required,uuid4"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderInput is the order creation payload. The JSON API submits the
// items as an explicit nested list; the legacy form convention is converted
// into the same structure by ParseOrderForm.
type CreateOrderInput struct {
	SupplierID string      `json:"supplierId" validate:"required,uuid4"`
	Notes      string      `json:"notes"`
	Items      []ItemInput `json:"items" validate:"min=1,dive"`
}

// ParseOrderForm reconstructs a CreateOrderInput from urlencoded fields using
// the legacy flattened convention: items[0][productId], items[0][quantity],
// items[0][unitPrice], items[1][...], a contiguous prefix with no explicit
// count. Scanning stops at the first index with no productId field.
// Coercion failures surface as field errors keyed by the offending field.
func ParseOrderForm(values url.Values) (CreateOrderInput, forms.Errors) {
	input := CreateOrderInput{
		SupplierID: values.Get("supplierId"),
		Notes:      values.Get("notes"),
	}
	errs := forms.Errors{}

	for i := 0; ; i++ {
		key := func(field string) string { return fmt.Sprintf("items[%d][%s]", i, field) }
		if !values.Has(key("productId")) {
			break
		}
		item := ItemInput{ProductID: values.Get(key("productId"))}
		quantity, err := forms.IntField(values.Get(key("quantity")))
		if err != nil {
			errs.Add(fmt.Sprintf("items[%d].quantity", i), "must be a whole number")
		}
		item.Quantity = quantity
		price, err := forms.DecimalField(values.Get(key("unitPrice")))
		if err != nil {
			errs.Add(fmt.Sprintf("items[%d].unitPrice", i), "must be a number")
		}
		item.UnitPrice = price
		input.Items = append(input.Items, item)
	}

	if errs.Any() {
		return input, errs
	}
	return input, nil
}

// assembledOrder is the normalized result of a validated submission.
type assembledOrder struct {
	SupplierID uuid.UUID
	Notes      string
	Items      []LineItem
	Total      decimal.Decimal
}

// assemble validates the collection and computes the derived amounts. Any
// failing item aborts the whole call; no partial order is ever assembled.
func assemble(input CreateOrderInput) (assembledOrder, forms.Errors) {
	errs := forms.Validate(input)
	if errs == nil {
		errs = forms.Errors{}
	}
	for i, item := range input.Items {
		if item.UnitPrice.IsNegative() {
			errs.Add(fmt.Sprintf("items[%d].unitPrice", i), "must be zero or greater")
		}
	}
	if errs.Any() {
		return assembledOrder{}, errs
	}

	supplierID, err := uuid.Parse(input.SupplierID)
	if err != nil {
		return assembledOrder{}, forms.Errors{"supplierId": "must be a valid identifier"}
	}

	out := assembledOrder{
		SupplierID: supplierID,
		Notes:      input.Notes,
		Total:      decimal.Zero,
	}
	for _, item := range input.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return assembledOrder{}, forms.Errors{"items": "must reference valid products"}
		}
		lineTotal := decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice)
		out.Items = append(out.Items, LineItem{
			ProductID:  productID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: lineTotal,
		})
		out.Total = out.Total.Add(lineTotal)
	}
	return out, nil
}
