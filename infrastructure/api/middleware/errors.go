package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/veritext/veritext/domain/rule"
)

// ErrorResponse is the JSON body for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// WriteError maps a domain error to an HTTP status and writes it as JSON.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, rule.ErrUnknownRule):
		status = http.StatusBadRequest
	case errors.Is(err, rule.ErrResourceLoad):
		status = http.StatusUnprocessableEntity
	}
	writeErrorMessage(w, status, err.Error())
}

// WriteBadRequest writes a 400 response with the given message.
func WriteBadRequest(w http.ResponseWriter, msg string) {
	writeErrorMessage(w, http.StatusBadRequest, msg)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}
