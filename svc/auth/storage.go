package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Storage persists User records. Implementations must make challenge token
// consumption atomic: the Consume* operations clear the token and its expiry
// in the same statement that applies the authorized state change, guarded by
// the token value and an expiry-in-future check, so two concurrent attempts
// cannot both succeed.
type Storage interface {
	// CreateUser inserts the user. Returns ErrEmailTaken on a duplicate email
	// and ErrEmailTaken-style uniqueness failure on a duplicate GoogleID.
	CreateUser(ctx context.Context, user *User) error

	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)

	// GetUserByResetToken is the read-only probe: it matches only unexpired
	// tokens and has no side effects. Returns ErrTokenNotFound otherwise.
	GetUserByResetToken(ctx context.Context, token string) (*User, error)

	// SetVerificationToken replaces any outstanding verification challenge.
	SetVerificationToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	// ConsumeVerificationToken marks the matching user verified and clears
	// the challenge, all in one guarded update. Returns ErrTokenNotFound when
	// the token is unknown, spent, or expired.
	ConsumeVerificationToken(ctx context.Context, token string) (*User, error)

	// SetResetToken replaces any outstanding reset challenge.
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	// ConsumeResetToken swaps in the new password hash and clears the
	// challenge in one guarded update. Returns ErrTokenNotFound when the
	// token is unknown, spent, or expired.
	ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*User, error)

	// LinkGoogleID attaches the provider subject to an existing user and
	// forces IsVerified true.
	LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error

	UpdateLastLoginAt(ctx context.Context, userID uuid.UUID, at time.Time) error
}
