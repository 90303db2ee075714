// Package settings provides use cases for key-addressed site settings.
package settings

import (
	"context"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// ErrSettingNotFound indicates that no setting exists under the key.
var ErrSettingNotFound = errors.New("setting not found")

// Service provides site settings use cases.
type Service struct {
	Repo repository.SettingsRepository
}

// List returns all settings.
func (s *Service) List(ctx context.Context) ([]*entity.Setting, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return items, nil
}

// Get fetches a single setting by key.
func (s *Service) Get(ctx context.Context, key string) (*entity.Setting, error) {
	if key == "" {
		return nil, &entity.ValidationError{Field: "key", Message: "is required"}
	}
	setting, err := s.Repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}
	return setting, nil
}

// Set creates or replaces the value under key.
func (s *Service) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return &entity.ValidationError{Field: "key", Message: "is required"}
	}
	if err := s.Repo.Upsert(ctx, key, value); err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

// SetMany applies several settings in one call. Writes are not atomic
// across keys.
func (s *Service) SetMany(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := s.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
