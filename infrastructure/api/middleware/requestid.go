// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/veritext/veritext/internal/log"
)

// RequestIDHeader is the header carrying the request id in and out.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns each request a UUID, honouring an incoming
// X-Request-Id header, and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := log.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
