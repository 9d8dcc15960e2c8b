package shared

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the acting user resolved for a request. Every mutating
// operation receives it explicitly rather than reading ambient state.
type Identity struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     string
}

// IsZero reports whether no authenticated identity is present.
func (i Identity) IsZero() bool {
	return i.ID == uuid.Nil
}

type identityContextKey struct{}

// ContextWithIdentity stores the resolved identity in context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the identity from context, if any.
func IdentityFromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(identityContextKey{}).(Identity)
	return id
}
