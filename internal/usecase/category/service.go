package category

import (
	"context"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/pkg/slug"
	"news-portal/internal/repository"
)

// CreateInput represents the input parameters for creating a category.
type CreateInput struct {
	Name        string
	Description string
}

// UpdateInput represents the input parameters for updating a category.
type UpdateInput struct {
	ID          int64
	Name        string
	Description string
}

// Service provides category management use cases.
type Service struct {
	Repo repository.CategoryRepository
}

// Create validates the name, derives the slug and persists a new
// category. Returns ErrCategoryExists when the name or slug is taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	catSlug, err := s.validate(ctx, in.Name, 0)
	if err != nil {
		return 0, err
	}

	id, err := s.Repo.Insert(ctx, &entity.Category{
		Name:        in.Name,
		Slug:        catSlug,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return 0, ErrCategoryExists
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

// Update renames a category, re-deriving its slug.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidCategoryID
	}
	catSlug, err := s.validate(ctx, in.Name, in.ID)
	if err != nil {
		return err
	}

	found, err := s.Repo.Update(ctx, &entity.Category{
		ID:          in.ID,
		Name:        in.Name,
		Slug:        catSlug,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return ErrCategoryExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	if !found {
		return ErrCategoryNotFound
	}
	return nil
}

// validate checks the name, derives the slug and runs both uniqueness
// pre-checks, excluding excludeID.
func (s *Service) validate(ctx context.Context, name string, excludeID int64) (string, error) {
	if name == "" {
		return "", &entity.ValidationError{Field: "name", Message: "is required"}
	}
	catSlug := slug.Make(name)
	if catSlug == "" {
		return "", &entity.ValidationError{Field: "name", Message: "must contain slug-safe characters"}
	}

	nameTaken, err := s.Repo.NameExists(ctx, name, excludeID)
	if err != nil {
		return "", fmt.Errorf("check name: %w", err)
	}
	if nameTaken {
		return "", ErrCategoryExists
	}
	slugTaken, err := s.Repo.SlugExists(ctx, catSlug, excludeID)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if slugTaken {
		return "", ErrCategoryExists
	}
	return catSlug, nil
}

// Delete deactivates a category. Articles keep their reference and stay
// readable.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !found {
		return ErrCategoryNotFound
	}
	return nil
}

// Get fetches an active category by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// GetBySlug fetches an active category by slug.
func (s *Service) GetBySlug(ctx context.Context, catSlug string) (*entity.Category, error) {
	c, err := s.Repo.GetBySlug(ctx, catSlug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// List returns all active categories ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
