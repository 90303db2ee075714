package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// SocialMediaRepository provides persistence operations for social
// media links. Delete/Restore toggle is_active.
type SocialMediaRepository interface {
	// Insert persists a new link and returns its generated id.
	Insert(ctx context.Context, s *entity.SocialMedia) (int64, error)

	// Update rewrites platform name, URL, icon and display order.
	// Returns false if no row matched.
	Update(ctx context.Context, s *entity.SocialMedia) (bool, error)

	// Get fetches a link by id regardless of active flag.
	// Returns nil when absent.
	Get(ctx context.Context, id int64) (*entity.SocialMedia, error)

	// ListActive returns active links ordered by display order.
	ListActive(ctx context.Context) ([]*entity.SocialMedia, error)

	// ListAll returns every link, active or not, ordered by display
	// order.
	ListAll(ctx context.Context) ([]*entity.SocialMedia, error)

	// SetActive toggles the active flag. Returns false if not found.
	SetActive(ctx context.Context, id int64, active bool) (bool, error)

	// PlatformExists reports whether a link other than excludeID owns
	// the platform name.
	PlatformExists(ctx context.Context, platformName string, excludeID int64) (bool, error)
}
