package procurement

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/quartermaster-erp/quartermaster/internal/platform/httpx"
	"github.com/quartermaster-erp/quartermaster/internal/shared"
)

type memoryRepo struct {
	orders        map[uuid.UUID]PurchaseOrder
	items         map[uuid.UUID][]LineItem
	supplierNames map[uuid.UUID]string
	txCalls       int
	failItemAt    int // 1-based item insert that fails; 0 disables
}

type memoryTx struct {
	repo         *memoryRepo
	stagedOrders map[uuid.UUID]PurchaseOrder
	stagedItems  map[uuid.UUID][]LineItem
	itemInserts  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		orders:        make(map[uuid.UUID]PurchaseOrder),
		items:         make(map[uuid.UUID][]LineItem),
		supplierNames: make(map[uuid.UUID]string),
	}
}

// WithTx stages writes and only publishes them when the callback succeeds,
// mirroring the transactional gateway.
func (r *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	r.txCalls++
	tx := &memoryTx{
		repo:         r,
		stagedOrders: make(map[uuid.UUID]PurchaseOrder),
		stagedItems:  make(map[uuid.UUID][]LineItem),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for id, po := range tx.stagedOrders {
		r.orders[id] = po
	}
	for id, items := range tx.stagedItems {
		r.items[id] = append(r.items[id], items...)
	}
	return nil
}

func (r *memoryRepo) GetOrder(ctx context.Context, id uuid.UUID) (PurchaseOrder, []LineItem, error) {
	po, ok := r.orders[id]
	if !ok {
		return PurchaseOrder{}, nil, ErrNotFound
	}
	return po, append([]LineItem(nil), r.items[id]...), nil
}

func (r *memoryRepo) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	out := make([]OrderSummary, 0, len(r.orders))
	for _, po := range r.orders {
		out = append(out, OrderSummary{PurchaseOrder: po, SupplierName: r.supplierNames[po.SupplierID]})
	}
	return out, nil
}

func (tx *memoryTx) InsertOrder(ctx context.Context, po PurchaseOrder) (uuid.UUID, error) {
	id := uuid.New()
	po.ID = id
	tx.stagedOrders[id] = po
	return id, nil
}

func (tx *memoryTx) InsertLineItem(ctx context.Context, item LineItem) error {
	tx.itemInserts++
	if tx.repo.failItemAt > 0 && tx.itemInserts == tx.repo.failItemAt {
		return errors.New("insert po_items: constraint violation")
	}
	tx.stagedItems[item.OrderID] = append(tx.stagedItems[item.OrderID], item)
	return nil
}

func buyer() shared.Identity {
	return shared.Identity{ID: uuid.New(), Email: "buyer@example.com", Role: "user"}
}

func threeItemInput(t *testing.T) CreateOrderInput {
	t.Helper()
	return CreateOrderInput{
		SupplierID: uuid.NewString(),
		Notes:      "Q3 restock",
		Items: []ItemInput{
			{ProductID: uuid.NewString(), Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
			{ProductID: uuid.NewString(), Quantity: 3, UnitPrice: decimal.RequireFromString("0.40")},
		},
	}
}

func TestCreateOrderPersistsHeaderAndItems(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	po, items, err := svc.CreateOrder(context.Background(), buyer(), threeItemInput(t))
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, StatusDraft, po.Status)
	require.True(t, strings.HasPrefix(po.Number, "PO-"))
	require.True(t, po.TotalAmount.Equal(decimal.RequireFromString("46.18")), "got %s", po.TotalAmount)

	stored, storedItems, err := repo.GetOrder(context.Background(), po.ID)
	require.NoError(t, err)
	require.True(t, stored.TotalAmount.Equal(po.TotalAmount))
	require.Len(t, storedItems, 3)
	for _, item := range storedItems {
		require.Equal(t, po.ID, item.OrderID)
	}
}

func TestCreateOrderSetsCreator(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	identity := buyer()

	po, _, err := svc.CreateOrder(context.Background(), identity, threeItemInput(t))
	require.NoError(t, err)
	require.Equal(t, identity.ID, po.CreatedBy)
}

func TestCreateOrderZeroItems(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, _, err := svc.CreateOrder(context.Background(), buyer(), CreateOrderInput{SupplierID: uuid.NewString()})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "items")
	require.Zero(t, repo.txCalls, "no store write may happen for invalid submissions")
	require.Empty(t, repo.orders)
}

func TestCreateOrderZeroQuantityItem(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	input := threeItemInput(t)
	input.Items[1].Quantity = 0
	_, _, err := svc.CreateOrder(context.Background(), buyer(), input)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "items[1].quantity")
	require.Empty(t, repo.orders)
	require.Empty(t, repo.items)
}

func TestCreateOrderUnauthenticated(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, _, err := svc.CreateOrder(context.Background(), shared.Identity{}, threeItemInput(t))
	require.True(t, errors.Is(err, httpx.ErrUnauthorized))
	require.Zero(t, repo.txCalls)
}

func TestCreateOrderItemFailureRollsBackHeader(t *testing.T) {
	repo := newMemoryRepo()
	repo.failItemAt = 2
	svc := NewService(repo)

	_, _, err := svc.CreateOrder(context.Background(), buyer(), threeItemInput(t))
	require.Error(t, err)
	require.Empty(t, repo.orders, "header must not survive a failed item insert")
	require.Empty(t, repo.items)
}

func TestListOrdersAnnotatesSupplierName(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	input := threeItemInput(t)
	supplierID := uuid.MustParse(input.SupplierID)
	repo.supplierNames[supplierID] = "Acme Industrial"

	_, _, err := svc.CreateOrder(context.Background(), buyer(), input)
	require.NoError(t, err)

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "Acme Industrial", orders[0].SupplierName)
}
