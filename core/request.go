package core

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON body")

// DecodeJSON decodes a request body into v. Requests without a JSON content
// type are rejected; an empty body leaves v at its zero value so field-level
// validation can report what is missing.
func DecodeJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if contentType != "" && contentType != "application/json" {
		return NewError(KindInvalidInput, "Expected application/json body")
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return WrapError(KindInvalidInput, "Malformed request body", ErrInvalidJSON)
	}
	return nil
}
