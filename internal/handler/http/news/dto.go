// Package news provides HTTP handlers for the article endpoints: public
// reads restricted to published articles and the authenticated
// editorial CRUD surface.
package news

import (
	"errors"
	"net/http"
	"time"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
	newsUC "news-portal/internal/usecase/news"
)

// CategoryRef is the embedded category block of an article response.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DTO represents the JSON structure for article data transfer. Content
// is included on detail responses only.
type DTO struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Slug      string      `json:"slug"`
	Summary   string      `json:"summary"`
	Content   string      `json:"content,omitempty"`
	Thumbnail string      `json:"thumbnail"`
	Category  CategoryRef `json:"category"`
	Status    string      `json:"status"`
	Views     int64       `json:"views"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toDTO(item *repository.NewsWithCategory, withContent bool) DTO {
	n := item.News
	out := DTO{
		ID:        n.ID,
		Title:     n.Title,
		Slug:      n.Slug,
		Summary:   n.Summary,
		Thumbnail: n.Thumbnail,
		Category: CategoryRef{
			ID:   n.CategoryID,
			Name: item.CategoryName,
			Slug: item.CategorySlug,
		},
		Status:    string(n.Status),
		Views:     n.Views,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if withContent {
		out.Content = n.Content
	}
	return out
}

func toListDTOs(items []repository.NewsWithCategory) []DTO {
	out := make([]DTO, 0, len(items))
	for i := range items {
		out = append(out, toDTO(&items[i], false))
	}
	return out
}

// statusCode maps use case errors onto HTTP status codes. Slug
// conflicts surface as 400, matching the public API contract.
func statusCode(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, newsUC.ErrInvalidNewsID),
		errors.Is(err, newsUC.ErrInvalidStatus),
		errors.Is(err, newsUC.ErrSlugExists):
		return http.StatusBadRequest
	case errors.Is(err, newsUC.ErrNewsNotFound),
		errors.Is(err, newsUC.ErrCategoryNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
