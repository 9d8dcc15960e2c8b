package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user account with its profile fields.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	Role         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles assignable to a user profile.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
