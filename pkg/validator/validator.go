// Package validator implements rule-based input validation. Rules are
// composed per call site and applied together, collecting every failure
// rather than stopping at the first.
package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single failed rule, attributed to a field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects failed rules for one request.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the distinct field names that failed.
func (ve ValidationErrors) Fields() []string {
	seen := make(map[string]bool, len(ve))
	var fields []string
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Rule pairs a predicate with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns the accumulated ValidationErrors, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Extract returns the ValidationErrors wrapped in err, or nil.
func Extract(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
