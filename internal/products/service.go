package products

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quartermaster-erp/quartermaster/internal/forms"
	"github.com/quartermaster-erp/quartermaster/internal/platform/httpx"
	"github.com/quartermaster-erp/quartermaster/internal/shared"
)

// ValidationError carries the per-field messages of a rejected payload.
type ValidationError struct {
	Fields forms.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("products: %d invalid fields", len(e.Fields))
}

// Unwrap ties the error into the shared HTTP mapping.
func (e *ValidationError) Unwrap() error {
	return httpx.ErrValidation
}

// Service owns product catalog rules.
type Service struct {
	repo Repository
}

// NewService constructs a product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the payload, generates the SKU and persists the product.
// Quantity on hand always starts at zero.
func (s *Service) Create(ctx context.Context, identity shared.Identity, input CreateInput) (Product, error) {
	if identity.IsZero() {
		return Product{}, httpx.ErrUnauthorized
	}
	errs := forms.Validate(input)
	if errs == nil {
		errs = forms.Errors{}
	}
	if input.Cost.IsNegative() {
		errs.Add("cost", "must be zero or greater")
	}
	if errs.Any() {
		return Product{}, &ValidationError{Fields: errs}
	}

	return s.repo.Create(ctx, Product{
		Name:           input.Name,
		Description:    input.Description,
		SKU:            shared.GenerateCode(SKUPrefix),
		UnitOfMeasure:  input.UnitOfMeasure,
		Cost:           input.Cost,
		QuantityOnHand: 0,
	})
}

// Get fetches a single product.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	return s.repo.Get(ctx, id)
}

// List returns all products ordered by name.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}
