package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record the auth service owns. PasswordHash and the
// challenge token fields never leave the service; handlers receive Profile
// projections instead.
type User struct {
	ID                    uuid.UUID
	Email                 string
	Name                  string
	PasswordHash          string
	GoogleID              *string
	IsVerified            bool
	LastLoginAt           *time.Time
	VerificationToken     *string
	VerificationExpiresAt *time.Time
	ResetToken            *string
	ResetExpiresAt        *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Profile is the public projection of a user, safe to serialize outward.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"isVerified"`
}

// Profile returns the user's public projection.
func (u *User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		IsVerified: u.IsVerified,
	}
}
