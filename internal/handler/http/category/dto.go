// Package category provides HTTP handlers for category management:
// public listing and lookup, authenticated create, rename and soft
// delete.
package category

import (
	"errors"
	"net/http"
	"time"

	"news-portal/internal/domain/entity"
	catUC "news-portal/internal/usecase/category"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toDTOs(categories []*entity.Category) []DTO {
	out := make([]DTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, toDTO(c))
	}
	return out
}

func statusCode(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, catUC.ErrInvalidCategoryID),
		errors.Is(err, catUC.ErrCategoryExists):
		return http.StatusBadRequest
	case errors.Is(err, catUC.ErrCategoryNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
