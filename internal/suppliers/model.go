package suppliers

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a supplier master data record. The id is immutable;
// the descriptive fields may be updated after creation.
type Supplier struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateInput is the validated supplier creation payload.
type CreateInput struct {
	Name          string `json:"name" validate:"required,min=2"`
	ContactPerson string `json:"contactPerson" validate:"omitempty"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty"`
	Address       string `json:"address" validate:"omitempty"`
}
