package procurement

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the purchase order lifecycle status. Orders are always created
// as draft; transition logic lives outside this service.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// PurchaseOrder is the order header. TotalAmount is derived at creation time
// as the sum of its line items and is not recomputed afterwards.
type PurchaseOrder struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"po_number"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	Status      Status          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LineItem is one product/quantity/price entry within an order. Line items
// are only ever created together with their parent order.
type LineItem struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"po_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderSummary is a purchase order annotated with its supplier's name for
// listing views.
type OrderSummary struct {
	PurchaseOrder
	SupplierName string `json:"supplier_name"`
}

var (
	// ErrNotFound indicates the order does not exist.
	ErrNotFound = errors.New("procurement: order not found")
)
