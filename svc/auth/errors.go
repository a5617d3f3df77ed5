package auth

import "errors"

var (
	// ErrEmailTaken indicates a signup against an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound indicates a lookup miss by id, email or provider id.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenNotFound indicates a challenge token that is unknown, already
	// consumed, or past its expiry. The three cases are indistinguishable.
	ErrTokenNotFound = errors.New("token not found or expired")
	// ErrAlreadyVerified indicates a verification attempt on a verified account.
	ErrAlreadyVerified = errors.New("email already verified")
	// ErrInvalidCredentials covers every local login failure mode.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidOAuthState indicates an unknown or replayed OAuth state token.
	ErrInvalidOAuthState = errors.New("invalid oauth state")
	// ErrInvalidCode indicates the provider rejected the authorization code.
	ErrInvalidCode = errors.New("invalid authorization code")
	// ErrNoPrimaryEmail indicates the provider profile carries no usable email.
	ErrNoPrimaryEmail = errors.New("provider returned no primary email")
)
