package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary aggregates the dashboard metrics. Every field reflects the rows
// visible at call time; nothing here is cached.
type Summary struct {
	TotalPOs       int             `json:"totalPOs"`
	ActivePOs      int             `json:"activePOs"`
	TotalProducts  int             `json:"totalProducts"`
	TotalSuppliers int             `json:"totalSuppliers"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	TotalValueText string          `json:"totalValueDisplay"`
	RecentOrders   []RecentOrder   `json:"recentOrders"`
}

// RecentOrder is one of the latest purchase orders shown on the dashboard.
type RecentOrder struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"po_number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// recentOrderLimit caps the recent activity list.
const recentOrderLimit = 5
