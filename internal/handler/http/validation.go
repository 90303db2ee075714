package http

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
)

// InputValidation returns middleware that rejects oversized request
// components before any handler work: 8KB Authorization headers, 2KB
// paths and 10MB bodies.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > 8192 {
				respond.Error(w, http.StatusBadRequest, "authorization header too large")
				return
			}
			if len(r.URL.Path) > 2048 {
				respond.Error(w, http.StatusRequestURITooLong, "URI too long")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
			next.ServeHTTP(w, r)
		})
	}
}
