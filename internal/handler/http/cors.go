package http

import (
	"net/http"
	"strings"

	"news-portal/pkg/config"
)

// CORS returns middleware that allows the configured frontend origins.
// Origins come from CLIENT_URL (comma-separated); credentials are
// enabled because the frontend may deliver the token via cookie.
func CORS() func(http.Handler) http.Handler {
	allowed := config.GetEnvStringList("CLIENT_URL", []string{"http://localhost:3000"})

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[strings.TrimSuffix(origin, "/")] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := allowedSet[origin]; ok {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Credentials", "true")
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Access-Token, X-Auth-Token, X-Request-ID")
					h.Set("Vary", "Origin")
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
