// Package category provides use cases for managing content categories.
package category

import "errors"

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the category does not exist or
	// has been deactivated.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryID indicates that the provided category ID is
	// invalid.
	ErrInvalidCategoryID = errors.New("invalid category ID")

	// ErrCategoryExists indicates that another category already owns the
	// name or the slug derived from it.
	ErrCategoryExists = errors.New("category already exists")
)
