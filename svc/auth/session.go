package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linkvaulthq/linkvault/pkg/jwt"
)

const sessionIssuer = "linkvault"

// SessionManager issues and verifies stateless HS256 session tokens. There is
// no revocation list: a token stays valid until its embedded expiry, and
// logout is cookie clearing on the client.
type SessionManager struct {
	jwt *jwt.Service
	ttl time.Duration
}

// NewSessionManager creates a session manager from the signing key.
func NewSessionManager(signingKey string, ttl time.Duration) (*SessionManager, error) {
	svc, err := jwt.NewFromString(signingKey)
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{jwt: svc, ttl: ttl}, nil
}

// TTL returns the session lifetime, used to align the cookie max-age.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Issue mints a session token for the user.
func (m *SessionManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	token, err := m.jwt.Generate(jwt.StandardClaims{
		Subject:   userID.String(),
		Issuer:    sessionIssuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(m.ttl).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Verify checks signature and temporal claims and returns the user ID. It
// performs no storage access.
func (m *SessionManager) Verify(token string) (uuid.UUID, error) {
	var claims jwt.StandardClaims
	if err := m.jwt.Parse(token, &claims); err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed subject", jwt.ErrInvalidToken)
	}
	return userID, nil
}
