// Package authh is the access gate: it pulls a token out of the
// request, verifies it and attaches the admin identity to the context.
// The package name avoids clashing with the auth use case package.
package authh

import (
	"net/http"
	"strings"
)

// TokenExtractor pulls a candidate token from one request location.
type TokenExtractor interface {
	Extract(r *http.Request) (token string, ok bool)
}

// BearerExtractor reads "Authorization: Bearer <token>".
type BearerExtractor struct{}

func (BearerExtractor) Extract(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
	return token, token != ""
}

// HeaderExtractor reads the token from a custom header.
type HeaderExtractor struct {
	Header string
}

func (e HeaderExtractor) Extract(r *http.Request) (string, bool) {
	token := strings.TrimSpace(r.Header.Get(e.Header))
	return token, token != ""
}

// QueryExtractor reads the token from a query parameter.
type QueryExtractor struct {
	Param string
}

func (e QueryExtractor) Extract(r *http.Request) (string, bool) {
	token := r.URL.Query().Get(e.Param)
	return token, token != ""
}

// CookieExtractor reads the token from a cookie.
type CookieExtractor struct {
	Name string
}

func (e CookieExtractor) Extract(r *http.Request) (string, bool) {
	c, err := r.Cookie(e.Name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// DefaultExtractors returns the extractor chain in precedence order:
// Authorization header, custom headers, query parameter, cookies.
// The first extractor that yields a token wins; later sources are not
// consulted even if the token turns out invalid.
func DefaultExtractors() []TokenExtractor {
	return []TokenExtractor{
		BearerExtractor{},
		HeaderExtractor{Header: "X-Access-Token"},
		HeaderExtractor{Header: "X-Auth-Token"},
		QueryExtractor{Param: "token"},
		CookieExtractor{Name: "token"},
		CookieExtractor{Name: "jwt"},
	}
}

// ExtractToken runs the extractor chain against r.
func ExtractToken(r *http.Request, extractors []TokenExtractor) (string, bool) {
	for _, e := range extractors {
		if token, ok := e.Extract(r); ok {
			return token, true
		}
	}
	return "", false
}
