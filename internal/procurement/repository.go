package procurement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quartermaster-erp/quartermaster/internal/platform/db"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type txRepo struct {
	tx pgx.Tx
}

// WithTx wraps the callback in a repeatable-read transaction. Any error
// rolls back every write issued through the TxRepository.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepo{tx: tx})
	})
}

const orderColumns = `id, po_number, supplier_id, status, total_amount, notes, created_by, created_at, updated_at`

// GetOrder returns the order header and its line items.
func (r *Repository) GetOrder(ctx context.Context, id uuid.UUID) (PurchaseOrder, []LineItem, error) {
	var po PurchaseOrder
	err := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id).
		Scan(&po.ID, &po.Number, &po.SupplierID, &po.Status, &po.TotalAmount, &po.Notes, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PurchaseOrder{}, nil, ErrNotFound
		}
		return PurchaseOrder{}, nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT id, po_id, product_id, quantity, unit_price, total_price, created_at
		FROM po_items WHERE po_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return PurchaseOrder{}, nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return PurchaseOrder{}, nil, err
		}
		items = append(items, item)
	}
	return po, items, rows.Err()
}

// ListOrders returns all orders newest first with the supplier name joined.
func (r *Repository) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	query := `SELECT po.id, po.po_number, po.supplier_id, po.status, po.total_amount, po.notes, po.created_by,
			po.created_at, po.updated_at, s.name
		FROM purchase_orders po
		JOIN suppliers s ON s.id = po.supplier_id
		ORDER BY po.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderSummary
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.ID, &o.Number, &o.SupplierID, &o.Status, &o.TotalAmount, &o.Notes, &o.CreatedBy,
			&o.CreatedAt, &o.UpdatedAt, &o.SupplierName); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// InsertOrder inserts the order header and returns its generated identity.
func (t *txRepo) InsertOrder(ctx context.Context, po PurchaseOrder) (uuid.UUID, error) {
	query := `INSERT INTO purchase_orders (po_number, supplier_id, status, total_amount, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	var id uuid.UUID
	err := t.tx.QueryRow(ctx, query, po.Number, po.SupplierID, po.Status, po.TotalAmount, po.Notes, po.CreatedBy, time.Now().UTC()).Scan(&id)
	return id, err
}

// InsertLineItem inserts one line item referencing its parent order.
func (t *txRepo) InsertLineItem(ctx context.Context, item LineItem) error {
	query := `INSERT INTO po_items (po_id, product_id, quantity, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := t.tx.Exec(ctx, query, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice, time.Now().UTC())
	return err
}

var _ RepositoryPort = (*Repository)(nil)
