// Package pagination provides offset-based pagination: query parameter
// parsing, offset/page-count math, and the metadata block embedded in
// paginated API responses.
package pagination

import "news-portal/pkg/config"

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page
	MaxLimit     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration:
// page=1, limit=10, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from PAGINATION_DEFAULT_PAGE,
// PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT, falling back to
// DefaultConfig values.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  config.GetEnvInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", 10),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", 100),
	}
}
