// Package repository defines the persistence interfaces consumed by the
// usecase layer. Implementations live under internal/infra.
package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// NewsFilters is the optional conjunction of filters applied by
// ListFiltered. Zero values mean "no filter".
type NewsFilters struct {
	Status     entity.Status
	CategoryID int64
	Search     string // case-insensitive substring match on title OR summary
}

// NewsWithCategory pairs an article with the name and slug of its
// category, as every read joins the categories table.
type NewsWithCategory struct {
	News         *entity.News
	CategoryName string
	CategorySlug string
}

// NewsStats aggregates the dashboard counters. Each field is the result
// of a separate scalar query; there is no caching tier.
type NewsStats struct {
	Total      int64
	Published  int64
	Draft      int64
	TotalViews int64
}

// NewsRepository provides persistence operations for news articles.
//
// The slug UNIQUE constraint in the store is the authoritative guard
// against concurrent creates with colliding slugs; Insert surfaces a
// violation as entity.ErrConflict. SlugExists is the advisory fast-path
// check used by the service layer.
type NewsRepository interface {
	// Insert persists a new article and returns its generated id.
	Insert(ctx context.Context, n *entity.News) (int64, error)

	// Update rewrites title, slug, summary, content, thumbnail and
	// category of an existing row. Returns false if no row matched.
	Update(ctx context.Context, n *entity.News) (bool, error)

	// SetStatus transitions an article to the given status.
	// Returns false if no row matched.
	SetStatus(ctx context.Context, id int64, status entity.Status) (bool, error)

	// Delete hard-deletes an article. Returns false if not found.
	Delete(ctx context.Context, id int64) (bool, error)

	// IncrementViews atomically bumps the view counter by one.
	IncrementViews(ctx context.Context, id int64) (bool, error)

	// GetBySlug fetches one article by slug. When publishedOnly is
	// true only status='published' rows are visible. Returns nil when
	// absent.
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*NewsWithCategory, error)

	// GetByID fetches one article by id regardless of status.
	// Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*NewsWithCategory, error)

	// SlugExists reports whether any article other than excludeID owns
	// the slug. Pass excludeID 0 to check against all rows.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// ListFiltered returns one page of articles matching the filters,
	// newest first, plus the total count of matching rows.
	ListFiltered(ctx context.Context, offset, limit int, filters NewsFilters) ([]NewsWithCategory, int64, error)

	// ListByCategory returns one page of published articles in the
	// category identified by slug, newest first, plus the total count.
	ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]NewsWithCategory, int64, error)

	// Latest returns the limit most recent published articles.
	Latest(ctx context.Context, limit int) ([]NewsWithCategory, error)

	// Breaking returns the single most recent published article, or
	// nil when none exist.
	Breaking(ctx context.Context) (*NewsWithCategory, error)

	// Stats returns the dashboard aggregate counters.
	Stats(ctx context.Context) (*NewsStats, error)
}
