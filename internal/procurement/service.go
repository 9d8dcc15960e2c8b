package procurement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quartermaster-erp/quartermaster/internal/forms"
	"github.com/quartermaster-erp/quartermaster/internal/platform/httpx"
	"github.com/quartermaster-erp/quartermaster/internal/shared"
)

// ValidationError carries the per-field messages of a rejected submission.
type ValidationError struct {
	Fields forms.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("procurement: %d invalid fields", len(e.Fields))
}

// Unwrap ties the error into the shared HTTP mapping.
func (e *ValidationError) Unwrap() error {
	return httpx.ErrValidation
}

// RepositoryPort describes repository operations used by Service.
type RepositoryPort interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	GetOrder(ctx context.Context, id uuid.UUID) (PurchaseOrder, []LineItem, error)
	ListOrders(ctx context.Context) ([]OrderSummary, error)
}

// TxRepository exposes the writes that run inside one transaction.
type TxRepository interface {
	InsertOrder(ctx context.Context, po PurchaseOrder) (uuid.UUID, error)
	InsertLineItem(ctx context.Context, item LineItem) error
}

// Service orchestrates the purchase order workflow.
type Service struct {
	repo RepositoryPort
}

// NewService constructs a procurement service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// CreateOrder validates the submission, derives the order total and number,
// and persists the header and all line items in a single transaction. A
// failing line item insert rolls the header back; the store never holds a
// header without its items.
func (s *Service) CreateOrder(ctx context.Context, identity shared.Identity, input CreateOrderInput) (PurchaseOrder, []LineItem, error) {
	if identity.IsZero() {
		return PurchaseOrder{}, nil, httpx.ErrUnauthorized
	}

	assembled, errs := assemble(input)
	if errs.Any() {
		return PurchaseOrder{}, nil, &ValidationError{Fields: errs}
	}

	po := PurchaseOrder{
		Number:      shared.OrderNumber(),
		SupplierID:  assembled.SupplierID,
		Status:      StatusDraft,
		TotalAmount: assembled.Total,
		Notes:       assembled.Notes,
		CreatedBy:   identity.ID,
	}

	var items []LineItem
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		orderID, err := tx.InsertOrder(ctx, po)
		if err != nil {
			return err
		}
		po.ID = orderID
		for _, item := range assembled.Items {
			item.OrderID = orderID
			if err := tx.InsertLineItem(ctx, item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return PurchaseOrder{}, nil, err
	}
	return po, items, nil
}

// GetOrder returns the order header and its line items.
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (PurchaseOrder, []LineItem, error) {
	return s.repo.GetOrder(ctx, id)
}

// ListOrders returns all orders newest first, annotated with supplier names.
func (s *Service) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	return s.repo.ListOrders(ctx)
}
