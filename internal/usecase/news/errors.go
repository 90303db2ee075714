// Package news provides use cases for managing news articles.
// It implements the publishing workflow: drafting, publishing, hiding,
// slug derivation and the public read paths.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the requested article was not found.
	// The public read path also returns it for unpublished articles, so
	// hidden content is indistinguishable from absent content.
	ErrNewsNotFound = errors.New("news not found")

	// ErrInvalidNewsID indicates that the provided article ID is invalid.
	ErrInvalidNewsID = errors.New("invalid news ID")

	// ErrSlugExists indicates that another article already owns the slug
	// derived from the given title.
	ErrSlugExists = errors.New("slug already exists")

	// ErrCategoryNotFound indicates that the referenced category does not
	// exist or has been deactivated.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidStatus indicates a status value outside draft, published
	// and hidden.
	ErrInvalidStatus = errors.New("invalid status")
)
