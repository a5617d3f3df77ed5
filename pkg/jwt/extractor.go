package jwt

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc extracts a token string from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// BearerTokenExtractor reads "Authorization: Bearer <token>" headers,
// the standard JWT transport per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// CookieTokenExtractor reads the token from a named cookie, the transport
// browser clients use.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrNoToken
		}
		return cookie.Value, nil
	}
}

// ChainExtractors tries each extractor in order and returns the first token
// found. ErrNoToken is returned only when every extractor comes up empty.
func ChainExtractors(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, extract := range extractors {
			token, err := extract(r)
			if err == nil {
				return token, nil
			}
		}
		return "", ErrNoToken
	}
}
