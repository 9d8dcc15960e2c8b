package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	orders   []RecentOrder
	products int
	supplier int
	failSum  bool
}

func (r *memoryRepo) CountOrders(ctx context.Context) (int, error) {
	return len(r.orders), nil
}

func (r *memoryRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) CountProducts(ctx context.Context) (int, error) {
	return r.products, nil
}

func (r *memoryRepo) CountSuppliers(ctx context.Context) (int, error) {
	return r.supplier, nil
}

func (r *memoryRepo) SumOrderTotals(ctx context.Context) (decimal.Decimal, error) {
	if r.failSum {
		return decimal.Decimal{}, errors.New("sum query failed")
	}
	total := decimal.Zero
	for _, o := range r.orders {
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}

func (r *memoryRepo) RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error) {
	if len(r.orders) <= limit {
		return append([]RecentOrder(nil), r.orders...), nil
	}
	return append([]RecentOrder(nil), r.orders[:limit]...), nil
}

func order(status, total string) RecentOrder {
	return RecentOrder{
		ID:          uuid.New(),
		Number:      "PO-1700000000000",
		Status:      status,
		TotalAmount: decimal.RequireFromString(total),
		CreatedAt:   time.Now(),
	}
}

func TestSummaryCounts(t *testing.T) {
	repo := &memoryRepo{
		orders: []RecentOrder{
			order("pending", "10.00"),
			order("draft", "20.00"),
			order("draft", "5.50"),
			order("completed", "4.48"),
		},
		products: 10,
		supplier: 2,
	}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, summary.TotalPOs)
	require.Equal(t, 1, summary.ActivePOs)
	require.Equal(t, 10, summary.TotalProducts)
	require.Equal(t, 2, summary.TotalSuppliers)
	require.True(t, summary.TotalValue.Equal(decimal.RequireFromString("39.98")), "got %s", summary.TotalValue)
	require.Contains(t, summary.TotalValueText, "39.98")
	require.Len(t, summary.RecentOrders, 4)
}

func TestSummaryRecentOrdersCappedAtFive(t *testing.T) {
	repo := &memoryRepo{}
	for range 7 {
		repo.orders = append(repo.orders, order("draft", "1.00"))
	}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.RecentOrders, 5)
}

func TestSummaryPropagatesQueryError(t *testing.T) {
	repo := &memoryRepo{failSum: true}
	svc := NewService(repo)

	_, err := svc.Summary(context.Background())
	require.Error(t, err)
}
