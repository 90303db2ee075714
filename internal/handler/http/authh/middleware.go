package authh

import (
	"context"
	"net/http"

	"news-portal/internal/handler/http/respond"
	authUC "news-portal/internal/usecase/auth"
)

type ctxKey string

const ctxIdentity ctxKey = "admin"

// WithIdentity returns a context carrying the verified admin claims.
func WithIdentity(ctx context.Context, claims *authUC.Claims) context.Context {
	return context.WithValue(ctx, ctxIdentity, claims)
}

// IdentityFromContext returns the verified admin claims, or nil when
// the request is anonymous.
func IdentityFromContext(ctx context.Context) *authUC.Claims {
	if claims, ok := ctx.Value(ctxIdentity).(*authUC.Claims); ok {
		return claims
	}
	return nil
}

// Gate verifies tokens extracted from requests.
type Gate struct {
	Secret     []byte
	Extractors []TokenExtractor
}

// NewGate builds a gate with the default extractor chain.
func NewGate(secret []byte) *Gate {
	return &Gate{Secret: secret, Extractors: DefaultExtractors()}
}

// Require wraps next so only requests carrying a valid token reach it.
// A missing or invalid token yields a 401 envelope; the handler never
// runs.
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ExtractToken(r, g.Extractors)
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := authUC.VerifyToken(g.Secret, token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims)))
	})
}

// Optional attaches the identity when a valid token is present but
// never rejects the request. Used on public routes whose responses may
// differ for logged-in admins.
func (g *Gate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := ExtractToken(r, g.Extractors); ok {
			if claims, err := authUC.VerifyToken(g.Secret, token); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}
