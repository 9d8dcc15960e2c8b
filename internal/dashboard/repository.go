package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository exposes the aggregate queries behind the dashboard.
type Repository interface {
	CountOrders(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountSuppliers(ctx context.Context) (int, error)
	SumOrderTotals(ctx context.Context) (decimal.Decimal, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL dashboard repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) CountOrders(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM purchase_orders`)
}

func (r *repository) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM purchase_orders WHERE status = $1`, status).Scan(&n)
	return n, err
}

func (r *repository) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *repository) CountSuppliers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers`)
}

func (r *repository) SumOrderTotals(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM purchase_orders`).Scan(&total)
	return total, err
}

func (r *repository) RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error) {
	rows, err := r.db.Query(ctx, `SELECT id, po_number, status, total_amount, created_at
		FROM purchase_orders ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentOrder
	for rows.Next() {
		var o RecentOrder
		if err := rows.Scan(&o.ID, &o.Number, &o.Status, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repository) count(ctx context.Context, query string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, query).Scan(&n)
	return n, err
}
