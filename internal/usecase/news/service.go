package news

import (
	"context"
	"errors"
	"fmt"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	"news-portal/internal/pkg/markup"
	"news-portal/internal/pkg/slug"
	"news-portal/internal/repository"
)

// CreateInput represents the input parameters for creating an article.
// Status is optional and defaults to draft.
type CreateInput struct {
	Title      string
	Summary    string
	Content    string
	Thumbnail  string
	CategoryID int64
	AdminID    int64
	Status     string
}

// UpdateInput represents the input parameters for updating an article.
// An empty Thumbnail keeps the stored one.
type UpdateInput struct {
	ID         int64
	Title      string
	Summary    string
	Content    string
	Thumbnail  string
	CategoryID int64
}

// Service provides news publishing use cases. It owns slug derivation
// and the draft/published/hidden lifecycle, and delegates persistence
// to the repositories.
type Service struct {
	Repo       repository.NewsRepository
	Categories repository.CategoryRepository
}

// PaginatedResult is one page of articles plus pagination metadata.
type PaginatedResult struct {
	Items      []repository.NewsWithCategory
	Pagination pagination.Metadata
}

// Create validates the input, derives the slug from the title and
// persists a new article. Returns ErrCategoryNotFound when the category
// does not resolve and ErrSlugExists when the derived slug is taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	if in.Title == "" {
		return 0, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Summary == "" {
		return 0, &entity.ValidationError{Field: "summary", Message: "is required"}
	}
	if in.Content == "" {
		return 0, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.CategoryID <= 0 {
		return 0, &entity.ValidationError{Field: "categoryId", Message: "is required"}
	}

	status := entity.StatusDraft
	if in.Status != "" {
		status = entity.Status(in.Status)
		if !status.Valid() {
			return 0, ErrInvalidStatus
		}
	}

	category, err := s.Categories.Get(ctx, in.CategoryID)
	if err != nil {
		return 0, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return 0, ErrCategoryNotFound
	}

	newsSlug := slug.Make(in.Title)
	if newsSlug == "" {
		return 0, &entity.ValidationError{Field: "title", Message: "must contain slug-safe characters"}
	}

	// Fast path only. The UNIQUE constraint still guards the race
	// between this check and the insert.
	taken, err := s.Repo.SlugExists(ctx, newsSlug, 0)
	if err != nil {
		return 0, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return 0, ErrSlugExists
	}

	id, err := s.Repo.Insert(ctx, &entity.News{
		Title:      in.Title,
		Slug:       newsSlug,
		Summary:    in.Summary,
		Content:    in.Content,
		Thumbnail:  in.Thumbnail,
		CategoryID: in.CategoryID,
		AdminID:    in.AdminID,
		Status:     status,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return 0, ErrSlugExists
		}
		return 0, fmt.Errorf("insert news: %w", err)
	}
	return id, nil
}

// Update modifies an existing article. The slug is re-derived from the
// new title, checked against every other article.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidNewsID
	}
	if in.Title == "" {
		return &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Summary == "" {
		return &entity.ValidationError{Field: "summary", Message: "is required"}
	}
	if in.Content == "" {
		return &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.CategoryID <= 0 {
		return &entity.ValidationError{Field: "categoryId", Message: "is required"}
	}

	current, err := s.Repo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get news: %w", err)
	}
	if current == nil {
		return ErrNewsNotFound
	}

	category, err := s.Categories.Get(ctx, in.CategoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	newsSlug := slug.Make(in.Title)
	if newsSlug == "" {
		return &entity.ValidationError{Field: "title", Message: "must contain slug-safe characters"}
	}
	taken, err := s.Repo.SlugExists(ctx, newsSlug, in.ID)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return ErrSlugExists
	}

	thumbnail := in.Thumbnail
	if thumbnail == "" {
		thumbnail = current.News.Thumbnail
	}

	found, err := s.Repo.Update(ctx, &entity.News{
		ID:         in.ID,
		Title:      in.Title,
		Slug:       newsSlug,
		Summary:    in.Summary,
		Content:    in.Content,
		Thumbnail:  thumbnail,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return ErrSlugExists
		}
		return fmt.Errorf("update news: %w", err)
	}
	if !found {
		return ErrNewsNotFound
	}
	return nil
}

// SetStatus moves an article to the given lifecycle status. Transitions
// are flat: any status can move to any other.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return ErrInvalidNewsID
	}
	st := entity.Status(status)
	if !st.Valid() {
		return ErrInvalidStatus
	}

	found, err := s.Repo.SetStatus(ctx, id, st)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if !found {
		return ErrNewsNotFound
	}
	return nil
}

// GetBySlug serves the public article page. Only published articles are
// visible; a successful read increments the view counter exactly once.
// Unpublished and absent articles are both reported as not found.
func (s *Service) GetBySlug(ctx context.Context, newsSlug string) (*repository.NewsWithCategory, error) {
	item, err := s.Repo.GetBySlug(ctx, newsSlug, true)
	if err != nil {
		return nil, fmt.Errorf("get news by slug: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}

	if _, err := s.Repo.IncrementViews(ctx, item.News.ID); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	item.News.Views++

	projectThumbnail(item)
	return item, nil
}

// GetByID serves the admin edit view and returns the article in any
// status.
func (s *Service) GetByID(ctx context.Context, id int64) (*repository.NewsWithCategory, error) {
	if id <= 0 {
		return nil, ErrInvalidNewsID
	}
	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	return item, nil
}

// List returns one page of articles matching the filters. The admin
// listing passes arbitrary filters; public listings pin status to
// published before calling.
func (s *Service) List(ctx context.Context, params pagination.Params, filters repository.NewsFilters) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	items, total, err := s.Repo.ListFiltered(ctx, offset, params.Limit, filters)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	for i := range items {
		projectThumbnail(&items[i])
	}

	return &PaginatedResult{
		Items:      items,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// ListByCategory returns one page of published articles in the category
// identified by its slug.
func (s *Service) ListByCategory(ctx context.Context, categorySlug string, params pagination.Params) (*PaginatedResult, error) {
	category, err := s.Categories.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	items, total, err := s.Repo.ListByCategory(ctx, categorySlug, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list news by category: %w", err)
	}
	for i := range items {
		projectThumbnail(&items[i])
	}

	return &PaginatedResult{
		Items:      items,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// Latest returns the newest published articles for the home page.
func (s *Service) Latest(ctx context.Context, limit int) ([]repository.NewsWithCategory, error) {
	if limit <= 0 {
		limit = 5
	}
	items, err := s.Repo.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("latest news: %w", err)
	}
	for i := range items {
		projectThumbnail(&items[i])
	}
	return items, nil
}

// Breaking returns the single newest published article, or
// ErrNewsNotFound when nothing is published yet.
func (s *Service) Breaking(ctx context.Context) (*repository.NewsWithCategory, error) {
	item, err := s.Repo.Breaking(ctx)
	if err != nil {
		return nil, fmt.Errorf("breaking news: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	projectThumbnail(item)
	return item, nil
}

// Delete removes an article permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidNewsID
	}
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if !found {
		return ErrNewsNotFound
	}
	return nil
}

// Stats returns the dashboard counters.
func (s *Service) Stats(ctx context.Context) (*repository.NewsStats, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("news stats: %w", err)
	}
	return stats, nil
}

// projectThumbnail fills an empty thumbnail from the first image in the
// content. Read-time only; the derived value is never written back.
func projectThumbnail(item *repository.NewsWithCategory) {
	if item.News.Thumbnail == "" {
		item.News.Thumbnail = markup.FirstImageSrc(item.News.Content)
	}
}
