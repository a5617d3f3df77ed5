package core

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body. Every endpoint answers with it so
// clients can branch on a single success flag.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RespondJSON writes a success envelope with the given status code.
func RespondJSON(w http.ResponseWriter, status int, message string, data any) {
	writeEnvelope(w, status, Envelope{Success: true, Message: message, Data: data})
}

// RespondError maps any error to its HTTP status and writes a failure
// envelope. Non-application errors become an opaque 500.
func RespondError(w http.ResponseWriter, err error) {
	writeEnvelope(w, HTTPStatus(err), Envelope{Success: false, Message: ClientMessage(err)})
}

func writeEnvelope(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
