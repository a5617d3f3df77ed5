package auth

import "context"

// OAuth provider identifiers used across the auth system.
const OAuthProviderGoogle = "google"

// ProviderAdapter abstracts provider-specific OAuth behavior behind a minimal
// provider-agnostic interface. Implementations encapsulate the protocol
// details (oauth2.Config, token exchange, profile API calls) and expose only
// what the federation flow needs.
type ProviderAdapter interface {
	// ProviderID returns a stable provider identifier used for storage and
	// logging, e.g. "google".
	ProviderID() string

	// AuthURL builds the provider authorization URL for the given state token.
	AuthURL(state string) string

	// ResolveProfile exchanges the authorization code and returns the
	// normalized profile. Returns ErrInvalidCode when the exchange fails and
	// ErrNoPrimaryEmail when the provider yields no email. Email
	// normalization is done by the federation flow, not here.
	ResolveProfile(ctx context.Context, code string) (ProviderProfile, error)
}

// ProviderProfile is the normalized user profile returned by a provider.
type ProviderProfile struct {
	// ProviderUserID is the provider's stable subject identifier.
	ProviderUserID string
	Email          string
	EmailVerified  bool
	Name           string
}
