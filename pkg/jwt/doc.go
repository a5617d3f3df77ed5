// Package jwt implements HMAC-SHA256 signed JSON Web Tokens: generation,
// verification with constant-time signature comparison, and request token
// extraction from cookies and Authorization headers.
//
// Verification is pure computation; no storage lookup is ever required to
// accept or reject a token.
package jwt
