package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword is the only path by which a password hash is ever produced.
func hashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword reports whether plaintext matches the stored bcrypt digest.
func verifyPassword(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// placeholderPassword returns an unguessable secret for federation-created
// accounts so the record always carries a password hash. It is never shown
// to anyone; such users log in through their provider or a password reset.
func placeholderPassword() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate placeholder password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
