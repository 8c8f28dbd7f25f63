package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const ownerIDKey contextKey = "owner_id"

// ErrOwnerIDNotFound is returned when no owner ID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrOwnerIDNotFound = errors.New("owner_id not found in context")

// OwnerIDFromCtx extracts the authenticated owner ID from the request context.
// Returns uuid.Nil and ErrOwnerIDNotFound if none is set (unauthenticated request).
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, ErrOwnerIDNotFound
	}
	return ownerID, nil
}

// WithOwnerID returns a new context with the given owner ID attached.
// Used by authentication middleware after validating the credential.
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}
