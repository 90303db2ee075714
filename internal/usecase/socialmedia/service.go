// Package socialmedia provides use cases for the site's social media
// links.
package socialmedia

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// Sentinel errors for social media use case operations.
var (
	ErrLinkNotFound   = errors.New("social media link not found")
	ErrPlatformExists = errors.New("platform already exists")
)

// Input represents the writable fields of a link.
type Input struct {
	PlatformName string
	URL          string
	IconName     string
	DisplayOrder int
}

// Service provides social media link use cases.
type Service struct {
	Repo repository.SocialMediaRepository
}

func (s *Service) validate(ctx context.Context, in Input, excludeID int64) error {
	if in.PlatformName == "" {
		return &entity.ValidationError{Field: "platformName", Message: "is required"}
	}
	if !strings.HasPrefix(in.URL, "http://") && !strings.HasPrefix(in.URL, "https://") {
		return &entity.ValidationError{Field: "url", Message: "must be an http(s) URL"}
	}
	taken, err := s.Repo.PlatformExists(ctx, in.PlatformName, excludeID)
	if err != nil {
		return fmt.Errorf("check platform: %w", err)
	}
	if taken {
		return ErrPlatformExists
	}
	return nil
}

// Create adds a new link.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if err := s.validate(ctx, in, 0); err != nil {
		return 0, err
	}
	id, err := s.Repo.Insert(ctx, &entity.SocialMedia{
		PlatformName: in.PlatformName,
		URL:          in.URL,
		IconName:     in.IconName,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return 0, ErrPlatformExists
		}
		return 0, fmt.Errorf("insert social media: %w", err)
	}
	return id, nil
}

// Update rewrites an existing link.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if err := s.validate(ctx, in, id); err != nil {
		return err
	}
	found, err := s.Repo.Update(ctx, &entity.SocialMedia{
		ID:           id,
		PlatformName: in.PlatformName,
		URL:          in.URL,
		IconName:     in.IconName,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return ErrPlatformExists
		}
		return fmt.Errorf("update social media: %w", err)
	}
	if !found {
		return ErrLinkNotFound
	}
	return nil
}

// ListActive returns the links shown on the public site.
func (s *Service) ListActive(ctx context.Context) ([]*entity.SocialMedia, error) {
	links, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social media: %w", err)
	}
	return links, nil
}

// ListAll returns every link for the admin view.
func (s *Service) ListAll(ctx context.Context) ([]*entity.SocialMedia, error) {
	links, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social media: %w", err)
	}
	return links, nil
}

// Delete deactivates a link.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, false)
}

// Restore reactivates a previously deleted link.
func (s *Service) Restore(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, true)
}

func (s *Service) setActive(ctx context.Context, id int64, active bool) error {
	found, err := s.Repo.SetActive(ctx, id, active)
	if err != nil {
		return fmt.Errorf("set social media active: %w", err)
	}
	if !found {
		return ErrLinkNotFound
	}
	return nil
}
