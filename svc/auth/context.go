package auth

import (
	"context"

	"github.com/google/uuid"
)

type userIDContextKey struct{}

// SetUserIDToContext stores the authenticated user ID for downstream handlers.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID.
// Returns false if no identity was attached.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(uuid.UUID)
	return userID, ok
}
