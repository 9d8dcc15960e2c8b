package suppliers

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
	return fmt.Sprintf("suppliers: %d invalid fields", len(e.Fields))
}

// Unwrap ties the error into the shared HTTP mapping.
func (e *ValidationError) Unwrap() error {
	return httpx.ErrValidation
}

// Service owns supplier master data rules.
type Service struct {
	repo Repository
}

// NewService constructs a supplier service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new supplier. The acting identity must be
// present; the check runs before any store write.
func (s *Service) Create(ctx context.Context, identity shared.Identity, input CreateInput) (Supplier, error) {
	if identity.IsZero() {
		return Supplier{}, httpx.ErrUnauthorized
	}
	if errs := forms.Validate(input); errs.Any() {
		return Supplier{}, &ValidationError{Fields: errs}
	}
	return s.repo.Create(ctx, Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
	})
}

// Update replaces the descriptive fields of an existing supplier.
func (s *Service) Update(ctx context.Context, identity shared.Identity, id uuid.UUID, input CreateInput) (Supplier, error) {
	if identity.IsZero() {
		return Supplier{}, httpx.ErrUnauthorized
	}
	if errs := forms.Validate(input); errs.Any() {
		return Supplier{}, &ValidationError{Fields: errs}
	}
	return s.repo.Update(ctx, id, Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
	})
}

// Get fetches a single supplier.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

// List returns all suppliers ordered by name.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}
