package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// SettingsRepository provides key-addressed persistence for site
// settings.
type SettingsRepository interface {
	// List returns all settings ordered by key.
	List(ctx context.Context) ([]*entity.Setting, error)

	// Get fetches a setting by key. Returns nil when absent.
	Get(ctx context.Context, key string) (*entity.Setting, error)

	// Upsert inserts the setting or updates its value when the key
	// already exists.
	Upsert(ctx context.Context, key, value string) error
}
