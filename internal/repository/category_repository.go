package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// CategoryRepository provides persistence operations for categories.
// All single-row reads and the listing filter on is_active = TRUE;
// Delete is a soft delete that clears the flag.
type CategoryRepository interface {
	// Insert persists a new category and returns its generated id.
	Insert(ctx context.Context, c *entity.Category) (int64, error)

	// Update rewrites name, slug and description.
	// Returns false if no row matched.
	Update(ctx context.Context, c *entity.Category) (bool, error)

	// Delete soft-deletes a category (is_active = FALSE).
	// Returns false if not found.
	Delete(ctx context.Context, id int64) (bool, error)

	// Get fetches an active category by id. Returns nil when absent
	// or inactive.
	Get(ctx context.Context, id int64) (*entity.Category, error)

	// GetBySlug fetches an active category by slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// List returns all active categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// NameExists reports whether a category other than excludeID owns
	// the name. Pass excludeID 0 to check against all rows.
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)

	// SlugExists reports whether a category other than excludeID owns
	// the slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}
