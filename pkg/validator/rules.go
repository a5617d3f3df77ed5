package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// Required fails on empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// ValidEmail checks RFC 5322 addressability and rejects display-name forms.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// PasswordStrengthConfig controls StrongPassword requirements.
type PasswordStrengthConfig struct {
	MinLength      int
	MaxLength      int
	MinCharClasses int // of: lowercase, uppercase, digit, other
}

// DefaultPasswordStrength mirrors a pragmatic baseline: long enough to
// resist online guessing without blocking passphrase-style passwords.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{MinLength: 8, MaxLength: 128, MinCharClasses: 2}
}

// StrongPassword enforces length bounds and character-class diversity.
func StrongPassword(field, value string, cfg PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < cfg.MinLength || (cfg.MaxLength > 0 && len(value) > cfg.MaxLength) {
				return false
			}
			return charClasses(value) >= cfg.MinCharClasses
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be %d-%d characters with at least %d character classes", cfg.MinLength, cfg.MaxLength, cfg.MinCharClasses),
		},
	}
}

// NotCommonPassword rejects passwords from a short deny-list of frequently
// compromised choices.
func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool { return !commonPasswords[strings.ToLower(value)] },
		Error: ValidationError{Field: field, Message: "is too common"},
	}
}

func charClasses(s string) int {
	var lower, upper, digit, other bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}
	n := 0
	for _, ok := range []bool{lower, upper, digit, other} {
		if ok {
			n++
		}
	}
	return n
}

var commonPasswords = map[string]bool{
	"password":    true,
	"password1":   true,
	"password123": true,
	"123456":      true,
	"12345678":    true,
	"123456789":   true,
	"1234567890":  true,
	"qwerty":      true,
	"qwerty123":   true,
	"qwertyuiop":  true,
	"abc123":      true,
	"letmein":     true,
	"welcome":     true,
	"iloveyou":    true,
	"admin":       true,
	"admin123":    true,
	"dragon":      true,
	"sunshine":    true,
	"princess":    true,
	"football":    true,
	"monkey":      true,
	"111111":      true,
	"123123":      true,
	"000000":      true,
}
