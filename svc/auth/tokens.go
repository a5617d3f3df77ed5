package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// newVerificationToken returns a 6-digit numeric code. Codes are short
// because they are single-use, server-side bound, and expire within a day.
func newVerificationToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// newResetToken returns 20 random bytes hex-encoded (40 characters).
func newResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// newStateToken returns 32 random bytes in hex, used as OAuth CSRF state.
func newStateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
