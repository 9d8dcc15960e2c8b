package products

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
	records map[uuid.UUID]Product
	writes  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[uuid.UUID]Product)}
}

func (r *memoryRepo) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(r.records))
	for _, p := range r.records {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	p, ok := r.records[id]
	if !ok {
		return Product{}, httpx.ErrNotFound
	}
	return p, nil
}

func (r *memoryRepo) Create(ctx context.Context, product Product) (Product, error) {
	r.writes++
	product.ID = uuid.New()
	r.records[product.ID] = product
	return product, nil
}

func actingUser() shared.Identity {
	return shared.Identity{ID: uuid.New(), Email: "buyer@example.com", Role: "user"}
}

func TestCreateProductGeneratesSKU(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), actingUser(), CreateInput{
		Name:          "Hex Bolt M8",
		UnitOfMeasure: "box",
		Cost:          decimal.RequireFromString("4.25"),
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.SKU, "PRD-"))
	require.Equal(t, 0, created.QuantityOnHand)
	require.Equal(t, "4.25", created.Cost.String())
}

func TestCreateProductNegativeCost(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), actingUser(), CreateInput{
		Name:          "Hex Bolt M8",
		UnitOfMeasure: "box",
		Cost:          decimal.RequireFromString("-0.01"),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "cost")
	require.Zero(t, repo.writes)
}

func TestCreateProductMissingUnit(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), actingUser(), CreateInput{Name: "Hex Bolt M8"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "unitOfMeasure")
}

func TestCreateProductRequiresIdentity(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), shared.Identity{}, CreateInput{
		Name:          "Hex Bolt M8",
		UnitOfMeasure: "box",
	})
	require.True(t, errors.Is(err, httpx.ErrUnauthorized))
	require.Zero(t, repo.writes)
}

func TestZeroCostIsAllowed(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), actingUser(), CreateInput{
		Name:          "Sample Item",
		UnitOfMeasure: "each",
	})
	require.NoError(t, err)
}
