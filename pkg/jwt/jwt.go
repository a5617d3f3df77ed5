package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Header constants required by RFC 7519.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

// Header is the JWT header as defined in RFC 7515.
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// StandardClaims carries the registered claims from RFC 7519 Section 4.1.
// Temporal claims are Unix timestamps; zero values are treated as unset.
type StandardClaims struct {
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()
	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrInvalidToken
	}
	return nil
}

// Service signs and verifies JWTs with HMAC-SHA256. The signing key lives
// only in memory and should be at least 32 bytes.
type Service struct {
	signingKey []byte
}

// New creates a JWT service with the provided signing key.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString is a convenience wrapper around New for string keys.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate signs the given claims and returns the compact JWT string.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(Header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	payload := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Parse verifies the token's signature, algorithm, and temporal claims, then
// unmarshals the claims into the provided structure.
func (s *Service) Parse(tokenString string, claims any) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	// Signature first so malformed payloads cannot be probed.
	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := decodeSegment(parts[0])
	if err != nil {
		return ErrInvalidToken
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return ErrInvalidToken
	}
	// Reject unexpected algorithms to prevent algorithm confusion attacks.
	if header.Algorithm != headerAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return ErrInvalidToken
	}
	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("unmarshal claims: %w", err)
	}

	if validator, ok := claims.(interface{ Valid() error }); ok {
		if err := validator.Valid(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return encodeSegment(h.Sum(nil))
}

func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
