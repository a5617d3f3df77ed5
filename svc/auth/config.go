package auth

import "time"

// Config holds auth service settings loaded from the environment.
type Config struct {
	JWTSigningKey   string        `env:"JWT_SIGNING_KEY,required"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	VerificationTTL time.Duration `env:"VERIFICATION_TOKEN_TTL" envDefault:"24h"`
	ResetTTL        time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`

	// BaseURL is the API origin used in verification links,
	// ClientURL the SPA origin used in password reset links.
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
}

// GoogleOAuthConfig holds the Google federation settings.
type GoogleOAuthConfig struct {
	ClientID     string        `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string        `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string        `env:"GOOGLE_REDIRECT_URL"`
	StateTTL     time.Duration `env:"OAUTH_STATE_TTL" envDefault:"10m"`

	// Post-handshake browser destinations.
	SuccessRedirectURL string `env:"OAUTH_SUCCESS_REDIRECT_URL" envDefault:"http://localhost:3000"`
	FailureRedirectURL string `env:"OAUTH_FAILURE_REDIRECT_URL" envDefault:"http://localhost:3000/login"`
}

// Enabled reports whether Google federation is configured.
func (c GoogleOAuthConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != ""
}
