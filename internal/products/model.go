package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SKUPrefix is the prefix of generated product codes.
const SKUPrefix = "PRD"

// Product represents a catalog product. The SKU is generated once at
// creation time and never re-derived.
type Product struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	SKU            string          `json:"sku"`
	UnitOfMeasure  string          `json:"unit_of_measure"`
	Cost           decimal.Decimal `json:"cost"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateInput is the validated product creation payload. Cost is checked
// separately since validator tags cannot compare decimals.
type CreateInput struct {
	Name          string          `json:"name" validate:"required,min=2"`
	Description   string          `json:"description" validate:"omitempty"`
	UnitOfMeasure string          `json:"unitOfMeasure" validate:"required,min=1"`
	Cost          decimal.Decimal `json:"cost"`
}
