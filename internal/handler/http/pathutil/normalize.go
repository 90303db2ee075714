package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern pairs a route regex with its normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled once so normalization stays off the hot path budget.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/news/category/[^/]+$`), Template: "/api/news/category/:slug"},
	{Pattern: regexp.MustCompile(`^/api/news/\d+/status$`), Template: "/api/news/:id/status"},
	{Pattern: regexp.MustCompile(`^/api/news/\d+$`), Template: "/api/news/:id"},
	{Pattern: regexp.MustCompile(`^/api/news/[^/]+$`), Template: "/api/news/:slug"},
	{Pattern: regexp.MustCompile(`^/api/categories/\d+$`), Template: "/api/categories/:id"},
	{Pattern: regexp.MustCompile(`^/api/categories/[^/]+$`), Template: "/api/categories/:slug"},
	{Pattern: regexp.MustCompile(`^/api/contact/\d+/read$`), Template: "/api/contact/:id/read"},
	{Pattern: regexp.MustCompile(`^/api/contact/\d+$`), Template: "/api/contact/:id"},
	{Pattern: regexp.MustCompile(`^/api/social-media/\d+/restore$`), Template: "/api/social-media/:id/restore"},
	{Pattern: regexp.MustCompile(`^/api/social-media/\d+$`), Template: "/api/social-media/:id"},
	{Pattern: regexp.MustCompile(`^/api/settings/[^/]+$`), Template: "/api/settings/:key"},
}

// NormalizePath collapses dynamic URL paths to their route templates so
// metrics label cardinality stays bounded. Static paths pass through
// unchanged.
//
//	NormalizePath("/api/news/123")        // "/api/news/:id"
//	NormalizePath("/api/news/go-124")     // "/api/news/:slug"
//	NormalizePath("/health")              // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	// Fixed sub-routes would otherwise be swallowed by the slug
	// patterns.
	switch path {
	case "/api/news/latest", "/api/news/breaking", "/api/news/admin/stats":
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
