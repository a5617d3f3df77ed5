// Package sanitizer normalizes user-supplied strings before validation and
// storage, so a single canonical form reaches the database.
package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an email address. The local part is
// otherwise stored verbatim; dots are significant under RFC 5321, so
// "a.b@x.com" and "ab@x.com" stay distinct accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TrimName collapses inner whitespace runs and trims a display name.
func TrimName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
