package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// AdminRepository provides lookups and credential updates for
// administrator accounts.
type AdminRepository interface {
	// GetByID fetches an administrator by id. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*entity.Admin, error)

	// GetByEmail fetches an administrator by email.
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// GetByUsername fetches an administrator by username.
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// UpdatePassword replaces the stored credential hash.
	// Returns false if no row matched.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error)
}
