// Package contact provides use cases for the public contact form and
// its admin inbox.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// ErrContactNotFound indicates that the message does not exist.
var ErrContactNotFound = errors.New("contact message not found")

// CreateInput represents a submitted contact form.
type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service provides contact message use cases.
type Service struct {
	Repo repository.ContactRepository
}

// PaginatedResult is one page of messages plus pagination metadata.
type PaginatedResult struct {
	Items      []*entity.Contact
	Pagination pagination.Metadata
}

// Create validates and stores a submitted message.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	if in.Name == "" {
		return 0, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.Email == "" {
		return 0, &entity.ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return 0, &entity.ValidationError{Field: "email", Message: "is not a valid address"}
	}
	if in.Message == "" {
		return 0, &entity.ValidationError{Field: "message", Message: "is required"}
	}

	id, err := s.Repo.Insert(ctx, &entity.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	})
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// List returns one page of messages, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)
	items, total, err := s.Repo.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return &PaginatedResult{
		Items:      items,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// Get fetches a single message and marks it read.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	if !c.IsRead {
		if _, err := s.Repo.MarkRead(ctx, id); err != nil {
			return nil, fmt.Errorf("mark contact read: %w", err)
		}
		c.IsRead = true
	}
	return c, nil
}

// MarkRead flags a message as read without fetching it.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	found, err := s.Repo.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark contact read: %w", err)
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}

// Delete removes a message permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}

// UnreadCount returns the number of unread messages for the admin badge.
func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.Repo.UnreadCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}
